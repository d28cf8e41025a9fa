package service

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// MsgIncompleteData is reported when a required inquiry field is missing or empty.
	MsgIncompleteData = "Incomplete data provided."
	// MsgSubmitted is reported after an inquiry row has been written.
	MsgSubmitted = "Your inquiry has been submitted successfully!"
	// MsgInternalFallback is used when a persistence failure carries no message.
	MsgInternalFallback = "An internal server error occurred."
)

// ErrExportUnavailable is returned by Export when no object store is configured.
var ErrExportUnavailable = errors.New("inquiry export is not configured")

// ValidationError reports which required fields were absent. It never reaches the repository.
type ValidationError struct {
	// Fields lists the JSON names of the missing fields, in declaration order.
	Fields []string
}

func (e *ValidationError) Error() string {
	return MsgIncompleteData
}

// PersistenceError wraps a connection or statement failure from the repository.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Message()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Message returns the best available diagnostic: the server message of a Postgres error,
// else the error text, else MsgInternalFallback.
func (e *PersistenceError) Message() string {
	if e.Err == nil {
		return MsgInternalFallback
	}
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) && pgErr.Message != "" {
		return pgErr.Message
	}
	if msg := strings.TrimSpace(e.Err.Error()); msg != "" {
		return msg
	}
	return MsgInternalFallback
}

// SQLState returns the Postgres error code when the failure came from the server.
func (e *PersistenceError) SQLState() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
