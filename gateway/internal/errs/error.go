package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrSessionNotFound   = errors.New("reservation session not found")
	ErrUnknownFacility   = errors.New("unknown facility type")
	ErrStudentID         = errors.New("studentId is required")
	ErrOperationInFlight = errors.New("another operation is in progress for this reservation")

	ErrInvalidRange        = errors.New("start time must be before end time")
	ErrUnavailableDate     = errors.New("date is not available for reservations")
	ErrInsufficientMembers = errors.New("not enough members for this facility")
	ErrBlankHours          = errors.New("hours are required")
	ErrInvalidHours        = errors.New("hours must contain digits only")
	ErrMissingSchedule     = errors.New("date and time range are required")
	ErrMissingFacility     = errors.New("a facility unit must be selected")
	ErrInvalidFacilityID   = errors.New("facilityId must be positive")
	ErrNotDraft            = errors.New("reservation is no longer a draft")
	ErrNotSubmitted        = errors.New("reservation has not been submitted")
	ErrNotCancellable      = errors.New("reservation can no longer be cancelled")
)

// ValidationError is a locally detected input problem. It never reaches the network.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// RemoteError is any failure talking to the remote API: transport, non-2xx, decoding.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func NewRemoteError(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	if msg == "" {
		msg = "remote service error"
	}
	return &RemoteError{StatusCode: code, Message: msg}
}

// SubmissionError is returned by a failed submit; Message is the remote message verbatim.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HTTPStatus maps an error to the status the gateway answers with.
func HTTPStatus(err error) int {
	var (
		ve *ValidationError
		re *RemoteError
		se *SubmissionError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrOperationInFlight), errors.Is(err, ErrNotDraft), errors.Is(err, ErrNotSubmitted),
		errors.Is(err, ErrNotCancellable):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownFacility), errors.Is(err, ErrStudentID):
		return http.StatusBadRequest
	case errors.As(err, &re):
		if re.StatusCode >= http.StatusBadRequest {
			return re.StatusCode
		}
		return http.StatusBadGateway
	case errors.As(err, &se):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
