package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm_SubmitSuccessResets(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"status":"success","message":"Your inquiry has been submitted successfully!"}`)

	f := NewForm(New(srv.URL))
	f.FieldOfStudy = "Engineering"
	f.Destination = "Germany"
	f.EducationLevel = "Doctorate"

	st := f.Submit(context.Background())

	assert.Equal(t, Status{Message: "Your inquiry has been submitted successfully!", Type: StatusSuccess}, st)
	assert.Equal(t, st, f.Status())
	assert.False(t, f.Submitting())
	assert.Empty(t, f.FieldOfStudy)
	assert.Empty(t, f.Destination)
	assert.Empty(t, f.EducationLevel)
	assert.Equal(t, "Engineering", got.FieldOfStudy)
}

func TestForm_SubmitErrorKeepsFields(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, `{"status":"error","message":"connection refused"}`)

	f := NewForm(New(srv.URL))
	f.FieldOfStudy = "Engineering"
	f.Destination = "Germany"
	f.EducationLevel = "Doctorate"

	st := f.Submit(context.Background())

	assert.Equal(t, Status{Message: "connection refused", Type: StatusError}, st)
	assert.Equal(t, "Engineering", f.FieldOfStudy)
	assert.Equal(t, "Germany", f.Destination)
	assert.Equal(t, "Doctorate", f.EducationLevel)

	f.ClearStatus()
	assert.Equal(t, StatusNone, f.Status().Type)
}
