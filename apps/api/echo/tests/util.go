package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	. "github.com/gmarcondes/prioriza/apps/api/echo"
	"github.com/gmarcondes/prioriza/core"
	"github.com/gmarcondes/prioriza/core/access"
	"github.com/gmarcondes/prioriza/core/order"
	exportsvc "github.com/gmarcondes/prioriza/services/export"
	logsvc "github.com/gmarcondes/prioriza/services/logger"
	"github.com/gmarcondes/prioriza/storage/database/inmem"
	testutil "github.com/gmarcondes/prioriza/tests"
)

var (
	conf      = testutil.NewConfig()
	orderRepo order.Repository

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func setup(t *testing.T) Server {
	t.Helper()

	// set up store & repos
	db, err := inmem.Open()
	if err != nil {
		t.Fatalf("inmem.Open(): %v", err)
	}
	orderRepo = inmem.NewOrderRepository(db)

	// set up services
	accessSvc, err := access.NewService(testutil.Directory())
	if err != nil {
		t.Fatalf("access.NewService(): %v", err)
	}
	orderSvc := order.NewService(orderRepo)
	pdfSvc := exportsvc.NewPDFService()

	validate := validator.New()
	translator := newTranslator(t)
	core.InitValidators(validate, translator)

	logger := logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))

	// set up server
	return NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     logger,
			AccessSvc:  accessSvc,
			OrderSvc:   orderSvc,
			Exporter:   pdfSvc,
			Validate:   validate,
			Translator: translator,
		},
	)
}

func newTranslator(t *testing.T) ut.Translator {
	t.Helper()

	_en := en.New()
	translator, found := ut.New(_en, _en).GetTranslator("en")
	if !found {
		t.Fatal("newTranslator(): \"en\" not found")
	}
	return translator
}

// setNow freezes the clock the API reads for access checks and dashboard
// dates. Tokens are unaffected; getToken signs against the real clock.
func setNow(t *testing.T, now time.Time) {
	t.Helper()

	orig := NowFunc
	NowFunc = func() time.Time { return now }
	t.Cleanup(func() { NowFunc = orig })
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// getToken signs a session token directly, bypassing the login handler.
// The expiry uses the real clock so the JWT middleware accepts it even when
// the API clock is frozen elsewhere.
func getToken(t *testing.T, uname string) string {
	t.Helper()

	now := time.Now()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    conf.AppName,
			Subject:   uname,
			ExpiresAt: now.Add(time.Hour).Unix(),
			IssuedAt:  now.Unix(),
		},
		Username: uname,
	}
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
