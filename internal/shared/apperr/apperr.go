// Package apperr carries the HTTP status and user-safe message for failures
// that reach the error handler.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	Invalid      Kind = "invalid"
	NotFound     Kind = "not_found"
	Unauthorized Kind = "unauthorized"
	Forbidden    Kind = "forbidden"
	Unavailable  Kind = "unavailable"
	Internal     Kind = "internal"
)

type kindInfo struct {
	status int
	msg    string
}

var kinds = map[Kind]kindInfo{
	Invalid:      {http.StatusBadRequest, "The request could not be processed."},
	NotFound:     {http.StatusNotFound, "Page not found."},
	Unauthorized: {http.StatusUnauthorized, "Please sign in to continue."},
	Forbidden:    {http.StatusForbidden, "You do not have access to this page."},
	Unavailable:  {http.StatusServiceUnavailable, "The shop is busy right now. Please try again."},
	Internal:     {http.StatusInternalServerError, "An unexpected error occurred."},
}

type AppError struct {
	Kind      Kind
	PublicMsg string            // safe to show to the user
	Fields    map[string]string // per-field validation errors
	Err       error             // logged only
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// New builds an error of kind k. An empty publicMsg falls back to the kind's
// default text.
func New(k Kind, publicMsg string) *AppError {
	return &AppError{Kind: k, PublicMsg: publicMsg}
}

func (e *AppError) WithFields(fields map[string]string) *AppError {
	e.Fields = fields
	return e
}

// Wrap classifies an error from a lower layer. App errors pass through,
// timeouts become Unavailable, and anything else is Internal with the cause
// hidden from the user.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if ae, ok := As(err); ok {
		return ae
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Kind: Unavailable, Err: err}
	}
	return &AppError{Kind: Internal, Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok {
		if info, ok := kinds[ae.Kind]; ok {
			return info.status
		}
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	ae, ok := As(err)
	if !ok {
		return kinds[Internal].msg
	}
	if ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	if info, ok := kinds[ae.Kind]; ok {
		return info.msg
	}
	return kinds[Internal].msg
}
