package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPenaltyNotFound = errors.New("penalty not found")
	ErrValidation      = errors.New("validation failed")
)

// AnalysisParseError means the vision model replied with text we could not
// turn into a nutrition record. RawText is for server-side logging only and
// must never be echoed to the client.
type AnalysisParseError struct {
	RawText string
}

func (e *AnalysisParseError) Error() string {
	return "analysis response could not be parsed"
}

// UpstreamError wraps a network/provider failure from an external service.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream error: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
