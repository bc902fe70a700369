package access

import (
	"sort"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/gmarcondes/prioriza/core"
)

func newValidator() *validator.Validate {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func TestNewCredential_Validate(t *testing.T) {
	validate := newValidator()

	// deterministic common-passwords list for this test
	commonPasswords = []string{"password", "qwerty123"}
	sort.Strings(commonPasswords)
	defer func() { commonPasswords = nil }()

	tests := []struct {
		name     string
		username string
		password string
		wantTag  string
	}{
		{name: "ok", username: "operador", password: "Str0ng!pass"},
		{name: "missing username", username: "", password: "Str0ng!pass", wantTag: "required"},
		{name: "missing password", username: "operador", password: "", wantTag: "required"},
		{name: "too short", username: "operador", password: "Ab1!", wantTag: pwdMinLenTag},
		{name: "whitespace", username: "operador", password: "Ab1! Ab1!", wantTag: pwdNoSpaceTag},
		{name: "all numeric", username: "operador", password: "12345678", wantTag: pwdNotAllNumTag},
		{name: "no special char", username: "operador", password: "Abcd1234", wantTag: pwdComplexityTag},
		{name: "no uppercase", username: "operador", password: "abcd123!", wantTag: pwdComplexityTag},
		{name: "similar to username", username: "operador1", password: "Operador1!", wantTag: pwdAttrSimTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := NewCredential{Username: tt.username, Password: tt.password}
			err := cred.Validate(validate)
			if tt.wantTag == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("Validate() error = %v, want validation errors", err)
			}
			for _, vErr := range vErrs {
				if vErr.Tag() == tt.wantTag {
					return
				}
			}
			t.Errorf("Validate() errors %v do not include tag %q", vErrs, tt.wantTag)
		})
	}
}

func TestNewCredential_Validate_commonPassword(t *testing.T) {
	validate := newValidator()

	commonPasswords = []string{"c0mmon!pwd"}
	defer func() { commonPasswords = nil }()

	cred := NewCredential{Username: "operador", Password: "C0mmon!pwd"}
	err := cred.Validate(validate)
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("Validate() error = %v, want validation errors", err)
	}
	if vErrs[0].Tag() != pwdNoCommonTag {
		t.Errorf("tag = %q, want %q", vErrs[0].Tag(), pwdNoCommonTag)
	}
}
