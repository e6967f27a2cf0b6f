package tool

import (
	"context"
	"errors"
)

var (
	// ErrInvalidParams reports a structurally invalid call, such as a missing required argument.
	ErrInvalidParams = errors.New("invalid parameters")
	// ErrUnknownTool reports a call to a tool that is not registered.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrCollaborator wraps failures of external collaborators such as the document decoder.
	ErrCollaborator = errors.New("collaborator failure")
)

// Code is the error class used for logs and metrics.
type Code string

// Error codes.
const (
	CodeOK            Code = "ok"
	CodeInvalidParams Code = "invalid_params"
	CodeUnknownTool   Code = "unknown_tool"
	CodeCollaborator  Code = "collaborator"
	CodeCanceled      Code = "canceled"
	CodeInternal      Code = "internal"
)

// Classify maps an error to its Code. A nil error is CodeOK.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCanceled
	case errors.Is(err, ErrInvalidParams):
		return CodeInvalidParams
	case errors.Is(err, ErrUnknownTool):
		return CodeUnknownTool
	case errors.Is(err, ErrCollaborator):
		return CodeCollaborator
	default:
		return CodeInternal
	}
}
