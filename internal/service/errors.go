package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"questshare/internal/model"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthenticated  = errors.New("account required")
	ErrPermissionDenied = errors.New("admin role required")
	ErrAlreadyModerated = errors.New("material already moderated")
	ErrAccountExists    = errors.New("account already registered")
	ErrEmailTaken       = errors.New("email already registered")
)

// ValidationError is a caller-correctable input defect. Fields maps a field
// name to a human-readable message. It is raised before any state change.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// UploadError signals a partial upload: the blob write succeeded but the
// record write failed. ObjectKey identifies the orphaned object so the
// cleanup path can remove it.
type UploadError struct {
	ObjectKey string
	Err       error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload incomplete (object %s): %v", e.ObjectKey, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// GenerationError signals that the external study-guide generator call failed.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("study guide generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// requireAdmin is the single authorization check used at every mutating
// moderation boundary, so the PermissionError contract lives in one place.
func requireAdmin(actor *model.Account) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	return nil
}
