package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/errs"
)

type contactPayload struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

func (p *contactPayload) RequiredFields() []string { return []string{"name", "email", "message"} }

func (p *contactPayload) Load(fields map[string]string) {
	p.Name = fields["name"]
	p.Email = fields["email"]
	p.Message = fields["message"]
}

func (p *contactPayload) Validate() error {
	return validator.New().Struct(p)
}

func newContext(body, contentType string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	form := url.Values{"name": {"  Jane "}, "email": {"JANE@X.COM"}, "message": {"hi"}}.Encode()

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     string
		wantFields  int
	}{
		{
			name:        "json",
			body:        `{"name":"  Jane ","email":"JANE@X.COM","message":"hi"}`,
			contentType: echo.MIMEApplicationJSON,
		},
		{
			name:        "json with charset",
			body:        `{"name":"Jane","email":"jane@x.com","message":"hi"}`,
			contentType: echo.MIMEApplicationJSONCharsetUTF8,
		},
		{
			name:        "form",
			body:        form,
			contentType: echo.MIMEApplicationForm,
		},
		{
			name:        "blank field",
			body:        `{"name":"   ","email":"a@b.com","message":"hi"}`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     MissingFieldsMessage,
			wantFields:  1,
		},
		{
			name:        "empty body",
			body:        "",
			contentType: echo.MIMEApplicationJSON,
			wantErr:     MissingFieldsMessage,
			wantFields:  3,
		},
		{
			name:        "unsupported content type",
			body:        "name=Jane",
			contentType: echo.MIMETextPlain,
			wantErr:     MissingFieldsMessage,
			wantFields:  3,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     MissingFieldsMessage,
			wantFields:  3,
		},
		{
			name:        "json array",
			body:        `["Jane"]`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     MissingFieldsMessage,
			wantFields:  3,
		},
		{
			name:        "json string",
			body:        `"hi"`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     MissingFieldsMessage,
			wantFields:  3,
		},
		{
			name:        "json null",
			body:        `null`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     MissingFieldsMessage,
			wantFields:  3,
		},
		{
			name:        "passes presence but fails struct tags",
			body:        `{"name":"Jane","email":"not-an-email","message":"hi"}`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     "Validation failed",
			wantFields:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := &contactPayload{}
			err := BindAndValidate(newContext(tt.body, tt.contentType), payload)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("BindAndValidate() error = %v", err)
				}
				if payload.Name != "Jane" || payload.Email != "jane@x.com" || payload.Message != "hi" {
					t.Errorf("payload not normalized: %+v", payload)
				}
				return
			}

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("error = %v, want *errs.HTTPError", err)
			}
			if httpErr.Status != http.StatusBadRequest {
				t.Errorf("Status = %d, want 400", httpErr.Status)
			}
			if httpErr.Message != tt.wantErr {
				t.Errorf("Message = %q, want %q", httpErr.Message, tt.wantErr)
			}
			if len(httpErr.Errors) != tt.wantFields {
				t.Errorf("len(Errors) = %d, want %d (%v)", len(httpErr.Errors), tt.wantFields, httpErr.Errors)
			}
		})
	}
}

func TestExtractCustomValidationErrors(t *testing.T) {
	msg, fieldErrors := extractValidationError(CustomValidationErrors{
		{Field: "email", Message: "domain not accepted"},
	})

	if msg != "Validation failed" {
		t.Errorf("msg = %q", msg)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "email" || fieldErrors[0].Error != "domain not accepted" {
		t.Errorf("fieldErrors = %v", fieldErrors)
	}
}

func TestExtractUnknownError(t *testing.T) {
	_, fieldErrors := extractValidationError(errors.New("boom"))
	if len(fieldErrors) != 1 || fieldErrors[0].Error != "boom" {
		t.Errorf("fieldErrors = %v", fieldErrors)
	}
}

func TestBindRecordNonObjectBodiesAreEmpty(t *testing.T) {
	for _, body := range []string{`["Jane"]`, `"hi"`, `42`, `null`, `{"name":`} {
		record := BindRecord(newContext(body, echo.MIMEApplicationJSON))
		if len(record) != 0 {
			t.Errorf("BindRecord(%s) = %v, want empty record", body, record)
		}
		if got := Validate(record, []string{"name"}); got.Valid || len(got.Missing) != 1 {
			t.Errorf("Validate(BindRecord(%s)) = %+v, want name missing", body, got)
		}
	}
}
