package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Thresholds   ThresholdConfig    `yaml:"thresholds" mapstructure:"thresholds"`
	Screening    ScreeningConfig    `yaml:"screening" mapstructure:"screening"`
	Store        StoreConfig        `yaml:"store" mapstructure:"store"`
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
}

// ThresholdConfig holds decision thresholds
type ThresholdConfig struct {
	DSCRApprove        float64 `yaml:"dscr_approve" mapstructure:"dscr_approve"`                 // APPROVE above this
	DSCRDecline        float64 `yaml:"dscr_decline" mapstructure:"dscr_decline"`                 // DECLINE below this
	UBOMinPct          float64 `yaml:"ubo_min_pct" mapstructure:"ubo_min_pct"`                   // Owners must exceed this
	LiquidityMinAmount float64 `yaml:"liquidity_min_amount" mapstructure:"liquidity_min_amount"` // |amount| must exceed this
}

// ScreeningConfig holds compliance screening tables
type ScreeningConfig struct {
	Industries []IndustryCategory `yaml:"industries" mapstructure:"industries"` // Checked in order
}

// IndustryCategory is a prohibited industry and its trigger keywords
type IndustryCategory struct {
	Name     string   `yaml:"name" mapstructure:"name"`
	Keywords []string `yaml:"keywords" mapstructure:"keywords"`
}

// StoreConfig selects the dossier store
type StoreConfig struct {
	Backend   string `yaml:"backend" mapstructure:"backend"` // file, redis
	Path      string `yaml:"path" mapstructure:"path"`
	RedisAddr string `yaml:"redis_addr" mapstructure:"redis_addr"`
	RedisKey  string `yaml:"redis_key" mapstructure:"redis_key"`
}

// HTTPConfig applies to inputs given as URLs
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls caching of fetched remote inputs
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RateLimitingConfig limits requests per host for remote inputs
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json, console
}

// OutputConfig controls artifact output
type OutputConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	Verbose     bool   `yaml:"verbose" mapstructure:"verbose"`
	MetricsPath string `yaml:"metrics_path,omitempty" mapstructure:"metrics_path"`
}

// LLMConfig configures the optional memo narrative
type LLMConfig struct {
	Provider      string `yaml:"provider" mapstructure:"provider"` // "", openai, anthropic, ollama
	Model         string `yaml:"model" mapstructure:"model"`
	APIKey        string `yaml:"-" mapstructure:"api_key"` // Never written to disk
	BaseURL       string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout       int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens     int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	StrictFigures bool   `yaml:"strict_figures" mapstructure:"strict_figures"`
}

// DefaultIndustries returns the built-in prohibited industry table
func DefaultIndustries() []IndustryCategory {
	return []IndustryCategory{
		{Name: "cannabis", Keywords: []string{"cannabis", "marijuana", "thc", "weed"}},
		{Name: "weapons_firearms", Keywords: []string{"weapon", "weapons", "firearm", "firearms", "ammo", "ammunition"}},
		{Name: "gambling", Keywords: []string{"gambling", "casino", "sportsbook", "betting"}},
		{Name: "adult_entertainment", Keywords: []string{"adult", "porn", "pornography", "sex", "escort"}},
		{Name: "sanctioned_jurisdictions", Keywords: []string{"sanctioned", "jurisdiction"}},
	}
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Thresholds: ThresholdConfig{
			DSCRApprove:        1.25,
			DSCRDecline:        1.0,
			UBOMinPct:          25,
			LiquidityMinAmount: 1_000_000,
		},
		Screening: ScreeningConfig{
			Industries: DefaultIndustries(),
		},
		Store: StoreConfig{
			Backend:  "file",
			Path:     "company_dossier.json",
			RedisKey: "dossier:v1:default",
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Dossier/0.1 (+https://github.com/ppiankov/dossier)",
			MaxBodyBytes:  10_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".dossier-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Dir: ".",
		},
		LLM: LLMConfig{
			Timeout:       30,
			MaxTokens:     800,
			StrictFigures: true,
		},
	}
}
