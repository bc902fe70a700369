package echoapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gmarcondes/prioriza/core"
	logsvc "github.com/gmarcondes/prioriza/services/logger"
)

func newErrorHandler(t *testing.T, signalShutdown func()) echo.HTTPErrorHandler {
	t.Helper()

	_en := en.New()
	translator, found := ut.New(_en, _en).GetTranslator("en")
	if !found {
		t.Fatal("newErrorHandler(): \"en\" translator not found")
	}
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
	return newAppHTTPErrorHandler(logger, translator, signalShutdown)
}

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func Test_appHTTPErrorHandler_validationError(t *testing.T) {
	handler := newErrorHandler(t, func() { t.Error("unexpected shutdown signal") })
	ctx, rec := newErrorContext()

	vErr := core.NewValidationError(
		errors.New("invalid order"),
		core.FieldError{Field: "name", Error: "this field is required"},
	)
	handler(errors.Wrap(vErr, "creating order"), ctx)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %v, want %v", rec.Code, http.StatusBadRequest)
	}
	var fields map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if fields["name"] != "this field is required" {
		t.Errorf("fields = %v, want a name error", fields)
	}
}

func Test_appHTTPErrorHandler_shutdownError(t *testing.T) {
	var signalled bool
	handler := newErrorHandler(t, func() { signalled = true })
	ctx, rec := newErrorContext()

	handler(errors.Wrap(core.NewShutdownError("order table corrupted"), "creating order"), ctx)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %v, want %v", rec.Code, http.StatusInternalServerError)
	}
	if !signalled {
		t.Error("shutdown was not signalled")
	}
}
