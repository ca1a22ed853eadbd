package mood

import (
	"errors"
	"fmt"
)

// Client-input failures. Callers match them with errors.Is.
var (
	ErrAudioDecode       = errors.New("audio decode failed")
	ErrFeatureExtraction = errors.New("feature extraction failed")
	ErrEmptyInput        = errors.New("text is required")
	ErrEmptyHistory      = errors.New("no check-in data provided")
)

// UpstreamError wraps a failure of an external collaborator
// (transcriber or classifier).
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream wraps err as an UpstreamError for service, or returns nil.
func Upstream(service string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Service: service, Err: err}
}

// IsClientError reports whether err belongs to the client-input taxonomy.
func IsClientError(err error) bool {
	return errors.Is(err, ErrAudioDecode) ||
		errors.Is(err, ErrFeatureExtraction) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrEmptyHistory)
}
