package pipeline

import (
	"errors"
	"fmt"
)

// Collaborator failure kinds, matched with errors.Is
var (
	ErrFetch   = errors.New("input load failed")
	ErrExtract = errors.New("text extraction failed")
	ErrStore   = errors.New("dossier store failed")
	ErrRender  = errors.New("artifact write failed")
)

// CollaboratorError is a fatal failure of an external collaborator.
// Extraction misses never produce one.
type CollaboratorError struct {
	Kind error  // One of the Err* sentinels
	Op   string // e.g. "load articles"
	Path string // Input reference or artifact path
	Err  error
}

func (e *CollaboratorError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Is matches the failure kind as well as the wrapped cause
func (e *CollaboratorError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func collaboratorError(kind error, op, path string, err error) error {
	return &CollaboratorError{Kind: kind, Op: op, Path: path, Err: err}
}
