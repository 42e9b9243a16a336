package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/config"
	"github.com/deppfellow/simple-webapp/internal/errs"
	"github.com/deppfellow/simple-webapp/internal/model"
	"github.com/deppfellow/simple-webapp/internal/server"
	"github.com/deppfellow/simple-webapp/internal/service"
	"github.com/deppfellow/simple-webapp/web"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	s, err := server.New(config.Default(), nil, nil)
	if err != nil {
		t.Fatalf("server.New() error = %v", err)
	}
	return s
}

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/api/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/submit")
	return c, rec
}

func TestHandleEnvelopeWrapsResult(t *testing.T) {
	s := newTestServer(t)
	h := NewHandler(s)

	fn := func(c echo.Context, req *model.SubmitRequest) (model.Submission, error) {
		return req.Submission(), nil
	}
	endpoint := HandleEnvelope(h, fn, http.StatusOK, service.SubmissionMessage, NewSubmitRequest)

	c, rec := newContext(http.MethodPost, `{"name":" Ann ","email":"ANN@X.IO","message":"hey"}`)
	if err := endpoint(c); err != nil {
		t.Fatalf("endpoint error = %v", err)
	}

	var body struct {
		Status  string           `json:"status"`
		Message string           `json:"message"`
		Data    model.Submission `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	want := model.Submission{Name: "Ann", Email: "ann@x.io", Message: "hey"}
	if body.Status != "success" || body.Message != service.SubmissionMessage || body.Data != want {
		t.Errorf("body = %+v, want data %+v", body, want)
	}
}

func TestHandleAllocatesRequestPerCall(t *testing.T) {
	s := newTestServer(t)
	h := NewHandler(s)

	var seen []*model.SubmitRequest
	fn := func(c echo.Context, req *model.SubmitRequest) (string, error) {
		seen = append(seen, req)
		return req.Name, nil
	}
	endpoint := Handle(h, fn, http.StatusOK, NewSubmitRequest)

	for _, name := range []string{"first", "second"} {
		c, rec := newContext(http.MethodPost, `{"name":"`+name+`","email":"a@b.c","message":"m"}`)
		if err := endpoint(c); err != nil {
			t.Fatalf("endpoint error = %v", err)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != `"`+name+`"` {
			t.Errorf("body = %s, want %q", got, name)
		}
	}

	if len(seen) != 2 || seen[0] == seen[1] {
		t.Fatal("payload was shared between requests")
	}
	if seen[0].Name != "first" {
		t.Errorf("first payload mutated to %q", seen[0].Name)
	}
}

func TestHandleValidationFailure(t *testing.T) {
	s := newTestServer(t)
	h := NewHandler(s)

	called := false
	fn := func(c echo.Context, req *model.SubmitRequest) (model.Submission, error) {
		called = true
		return model.Submission{}, nil
	}
	endpoint := HandleEnvelope(h, fn, http.StatusOK, "", NewSubmitRequest)

	c, _ := newContext(http.MethodPost, `{"name":"   ","email":"a@b.c"}`)
	err := endpoint(c)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if called {
		t.Error("handler ran despite invalid payload")
	}

	scrape := httptest.NewRecorder()
	s.Metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `webapp_validations_total{result="invalid",route="/api/submit"} 1`
	if !strings.Contains(scrape.Body.String(), want) {
		t.Errorf("metrics missing %q", want)
	}
}

func TestHandlePropagatesHandlerError(t *testing.T) {
	s := newTestServer(t)
	h := NewHandler(s)

	boom := errors.New("boom")
	fn := func(c echo.Context, req *model.SubmitRequest) (model.Submission, error) {
		return model.Submission{}, boom
	}
	endpoint := HandleEnvelope(h, fn, http.StatusOK, "", NewSubmitRequest)

	c, rec := newContext(http.MethodPost, `{"name":"a","email":"a@b.c","message":"m"}`)
	if err := endpoint(c); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("response written on error: %s", rec.Body.String())
	}
}

func TestHealthReport(t *testing.T) {
	s := newTestServer(t)
	h := NewHealthHandler(s)

	first := h.Report()
	time.Sleep(time.Millisecond)
	second := h.Report()

	if first.Status != StatusHealthy {
		t.Errorf("status = %q", first.Status)
	}
	if first.Version != s.Config.Primary.Version {
		t.Errorf("version = %q, want %q", first.Version, s.Config.Primary.Version)
	}
	if second.Uptime < first.Uptime {
		t.Errorf("uptime decreased: %v then %v", first.Uptime, second.Uptime)
	}
	if first.Timestamp.Location() != time.UTC {
		t.Errorf("timestamp not in UTC: %v", first.Timestamp)
	}
}

func TestPagesHandler(t *testing.T) {
	s := newTestServer(t)
	h := NewPagesHandler(s)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/about", nil), rec)

	if err := h.Page(web.PageAbout)(c); err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q", got)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())
	if err := h.Page("missing")(c); err == nil {
		t.Error("missing page served without error")
	}
}
