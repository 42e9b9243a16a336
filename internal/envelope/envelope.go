// Package envelope builds the two canonical JSON response shapes the API
// returns: a Success envelope carrying data and an Error envelope carrying
// a message and status code.
package envelope

import (
	"encoding/json"
	"net/http"

	"github.com/deppfellow/simple-webapp/internal/errs"
)

// Status is the envelope discriminator.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	// DefaultSuccessMessage is used when Success is called with an empty message.
	DefaultSuccessMessage = "Success"

	// DefaultErrorStatus is used when Error is called with a zero status code.
	DefaultErrorStatus = http.StatusInternalServerError
)

// Envelope is the response wrapper.
//
//	{"status":"success","message":"...","data":{...}}
//	{"status":"error","message":"...","statusCode":400}
//
// A success envelope always carries data, null included. An error
// envelope never does.
type Envelope struct {
	Status     Status            `json:"status"`
	Message    string            `json:"message"`
	Data       any               `json:"data"`
	StatusCode int               `json:"statusCode,omitempty"`
	Code       string            `json:"code,omitempty"`
	Errors     []errs.FieldError `json:"errors,omitempty"`
}

type errorBody struct {
	Status     Status            `json:"status"`
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode,omitempty"`
	Code       string            `json:"code,omitempty"`
	Errors     []errs.FieldError `json:"errors,omitempty"`
}

type successBody struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// MarshalJSON writes the fields of the envelope's variant only.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.IsSuccess() {
		return json.Marshal(successBody{
			Status:  e.Status,
			Message: e.Message,
			Data:    e.Data,
		})
	}
	return json.Marshal(errorBody{
		Status:     e.Status,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Code:       e.Code,
		Errors:     e.Errors,
	})
}

// Success wraps data in a success envelope.
func Success(data any, message string) Envelope {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// Error builds an error envelope. A zero statusCode means 500.
func Error(message string, statusCode int) Envelope {
	if statusCode == 0 {
		statusCode = DefaultErrorStatus
	}
	return Envelope{
		Status:     StatusError,
		Message:    message,
		StatusCode: statusCode,
	}
}

// FromHTTPError converts an application error into an error envelope,
// keeping its machine code and field errors.
func FromHTTPError(e *errs.HTTPError) Envelope {
	if e == nil {
		e = errs.NewInternalServerError()
	}
	env := Error(e.Message, e.Status)
	env.Code = e.Code
	env.Errors = e.Errors
	return env
}

// IsSuccess reports whether the envelope is the success variant.
func (e Envelope) IsSuccess() bool {
	return e.Status == StatusSuccess
}
