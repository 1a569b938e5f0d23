package domain

import (
	"errors"
	"fmt"
)

// InvalidRequestError reports bad trip input from the user.
type InvalidRequestError struct {
	Field string
	Msg   string
	Err   error
}

func (e InvalidRequestError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return "invalid request: " + e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid request: invalid %s", e.Field)
	default:
		return "invalid request"
	}
}

func (e InvalidRequestError) Unwrap() error { return e.Err }

// MalformedDraftError reports model output that does not fit the
// day/activity shape or carries unusable costs. Day is 1-based; zero means
// the problem is not tied to a single day.
type MalformedDraftError struct {
	Day      int
	Activity string
	Msg      string
	Err      error
}

func (e MalformedDraftError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unexpected itinerary shape"
	}
	switch {
	case e.Day > 0 && e.Activity != "":
		return fmt.Sprintf("malformed draft: day %d activity %q: %s", e.Day, e.Activity, msg)
	case e.Day > 0:
		return fmt.Sprintf("malformed draft: day %d: %s", e.Day, msg)
	default:
		return "malformed draft: " + msg
	}
}

func (e MalformedDraftError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsInvalidRequest(err error) bool {
	var target InvalidRequestError
	return errors.As(err, &target)
}

func IsMalformedDraft(err error) bool {
	var target MalformedDraftError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
