package pipeline

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/dossier/internal/cache"
	"github.com/ppiankov/dossier/internal/model"
	"github.com/ppiankov/dossier/internal/textconv"
	"github.com/ppiankov/dossier/internal/util"
	"github.com/ppiankov/dossier/internal/worker"
)

// Document is one raw input before text conversion
type Document struct {
	Ref  string // Path or URL as given
	Data []byte
	Ext  string // Declared extension, lowercase with dot
}

// InputLoader reads a raw input by reference
type InputLoader interface {
	Load(ctx context.Context, ref string) (*Document, error)
}

// Loader reads local files and fetches http(s) URLs.
// Safe for concurrent use; batch runs share one Loader.
type Loader struct {
	fetcher *Fetcher
	cache   *cache.DocumentCache
	limiter *worker.Limiter
	robots  *util.RobotsChecker
	logger  *zap.Logger
}

// NewLoader creates a loader from the HTTP, cache and rate limiting config
func NewLoader(cfg *model.Config, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loader{
		fetcher: NewFetcher(
			cfg.HTTP.Timeout,
			cfg.HTTP.UserAgent,
			cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS,
			cfg.HTTP.HTTPProxy,
			cfg.HTTP.HTTPSProxy,
			cfg.HTTP.NoProxy,
		),
		limiter: worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		logger:  logger,
	}
	if cfg.Cache.Enabled {
		l.cache = cache.NewDocumentCache(cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL))
	}
	if cfg.HTTP.RespectRobots {
		l.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	return l
}

// Load reads ref from disk, or from the network when it is an http(s) URL
func (l *Loader) Load(ctx context.Context, ref string) (*Document, error) {
	if !IsURL(ref) {
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, err
		}
		return &Document{Ref: ref, Data: data, Ext: textconv.NormalizeExt(filepath.Ext(ref))}, nil
	}
	return l.fetch(ctx, ref)
}

func (l *Loader) fetch(ctx context.Context, ref string) (*Document, error) {
	if l.cache != nil {
		if cached, ok := l.cache.Get(ref); ok {
			l.logger.Debug("input cache hit", zap.String("ref", ref))
			return &Document{Ref: ref, Data: cached.Body, Ext: cached.Ext}, nil
		}
	}

	var delay time.Duration
	if l.robots != nil {
		allowed, crawlDelay, err := l.robots.CanFetch(ctx, ref)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("disallowed by robots.txt")
		}
		delay = crawlDelay
	}

	if err := l.limiter.WaitWithDelay(ctx, ref, delay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	result, err := l.fetcher.FetchWithRetry(ctx, ref)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Ref:  ref,
		Data: result.Body,
		Ext:  remoteExt(result.FinalURL, result.ContentType),
	}

	if l.cache != nil {
		err := l.cache.Put(ref, &cache.Document{
			Ext:       doc.Ext,
			FinalURL:  result.FinalURL,
			Body:      doc.Data,
			FetchedAt: time.Now().UTC(),
		})
		if err != nil {
			l.logger.Warn("input cache write failed", zap.String("ref", ref), zap.Error(err))
		}
	}
	return doc, nil
}

// IsURL reports whether ref is an http(s) URL
func IsURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

var contentTypeExt = map[string]string{
	"text/html":       ".html",
	"application/pdf": ".pdf",
	"text/csv":        ".csv",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       ".xlsx",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/msword":       ".doc",
	"application/vnd.ms-excel": ".xls",
}

// remoteExt prefers the URL path extension, then the content type
func remoteExt(rawURL, contentType string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if ext := textconv.NormalizeExt(path.Ext(u.Path)); ext != "" {
			return ext
		}
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if ext, ok := contentTypeExt[mediaType]; ok {
			return ext
		}
	}
	return ".txt"
}
