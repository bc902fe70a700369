package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	echoapi "github.com/gmarcondes/prioriza/apps/api/echo"
)

func Test_authApi_login(t *testing.T) {
	app := setup(t)

	// well within both access windows
	setNow(t, time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC))

	tests := []httpTest{
		{
			name: "required fields", wantCode: http.StatusBadRequest,
			body: []byte("{}"),
			wantData: marchallObj(t, map[string]string{
				"username": "this field is required",
				"password": "this field is required",
			}),
		},
		{
			name: "unknown user", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, echoapi.LoginRequest{Username: "ghost", Password: "1234"}),
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "wrong password", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, echoapi.LoginRequest{Username: "admin", Password: "nope"}),
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "login ok", wantCode: http.StatusOK,
			body: marchallObj(t, echoapi.LoginRequest{Username: "admin", Password: "1234"}),
		},
		{
			name: "username is cleaned", wantCode: http.StatusOK,
			body: marchallObj(t, echoapi.LoginRequest{Username: "  Admin ", Password: "1234"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/auth/login"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			// cannot guess the token.. just check that it's not empty
			if tt.wantCode == http.StatusOK {
				if rec.Code != tt.wantCode {
					t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var respData echoapi.LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Errorf("json.Unmarshal() failed! err %v", err)
				}
				if respData.Token == "" {
					t.Error("failed! empty token")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_authApi_login_accessExpired(t *testing.T) {
	app := setup(t)

	// past both access windows; the password is still checked first
	setNow(t, time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC))

	tests := []httpTest{
		{
			name: "expired access", wantCode: http.StatusForbidden,
			body:     marchallObj(t, echoapi.LoginRequest{Username: "usuario1", Password: "abcd"}),
			wantData: marchallObj(t, httpErr{Error: "access expired"}),
		},
		{
			name: "wrong password wins over expiry", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, echoapi.LoginRequest{Username: "usuario1", Password: "nope"}),
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/auth/login"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
