package client

import (
	"context"
	"errors"
)

// StatusType classifies the banner shown under the form.
type StatusType string

const (
	StatusNone    StatusType = ""
	StatusInfo    StatusType = "info"
	StatusSuccess StatusType = "success"
	StatusError   StatusType = "error"

	msgSubmitting = "Submitting..."
)

// Status is the message displayed after a submission attempt.
type Status struct {
	Message string
	Type    StatusType
}

// Form holds the program search form state for one user.
// It is not safe for concurrent use.
type Form struct {
	FieldOfStudy   string
	Destination    string
	EducationLevel string

	status     Status
	submitting bool
	client     *Client
}

// NewForm returns an empty form bound to c.
func NewForm(c *Client) *Form {
	return &Form{client: c}
}

// Status returns the current banner.
func (f *Form) Status() Status {
	return f.status
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// Submit sends the current values. On success the fields are cleared and the
// server message is shown; on failure the fields are kept and the error is shown.
func (f *Form) Submit(ctx context.Context) Status {
	f.submitting = true
	f.status = Status{Message: msgSubmitting, Type: StatusInfo}
	defer func() { f.submitting = false }()

	resp, err := f.client.Submit(ctx, Inquiry{
		FieldOfStudy:   f.FieldOfStudy,
		Destination:    f.Destination,
		EducationLevel: f.EducationLevel,
	})
	if err != nil {
		msg := err.Error()
		var serr *SubmitError
		if errors.As(err, &serr) {
			msg = serr.Message
		}
		f.status = Status{Message: msg, Type: StatusError}
		return f.status
	}

	f.status = Status{Message: resp.Message, Type: StatusSuccess}
	f.Reset()
	return f.status
}

// Reset clears the field values but keeps the banner.
func (f *Form) Reset() {
	f.FieldOfStudy = ""
	f.Destination = ""
	f.EducationLevel = ""
}

// ClearStatus hides the banner.
func (f *Form) ClearStatus() {
	f.status = Status{}
}
