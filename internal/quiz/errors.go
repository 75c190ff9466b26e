package quiz

import (
	"errors"
	"fmt"
)

// ErrUnsupportedConfiguration rejects generation requests with zero question
// kinds or non-positive counts. The caller must fix its configuration.
var ErrUnsupportedConfiguration = errors.New("unsupported quiz configuration")

// ErrEmptyQuiz rejects scoring a quiz with zero questions.
var ErrEmptyQuiz = errors.New("cannot score an empty quiz")

// RemoteGenerationError wraps any failure of the remote generative path:
// missing credentials, transport errors, unusable payloads. It is always
// absorbed by the service, which falls back to local synthesis.
type RemoteGenerationError struct {
	Reason string
	Err    error
}

func (e *RemoteGenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("remote generation failed: %s", e.Reason)
}

func (e *RemoteGenerationError) Unwrap() error { return e.Err }
