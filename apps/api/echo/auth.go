package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/gmarcondes/prioriza/core"
	"github.com/gmarcondes/prioriza/core/access"
)

var (
	contextClaimsKey = "accessToken"

	NowFunc = time.Now // mockable
)

// Claims represents the session claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextClaimsKey,
		Claims:        new(Claims),
	}
}

// GetEntryClaims builds session claims for an authenticated directory entry.
// The token never outlives the entry's access window.
func GetEntryClaims(conf *core.Config, entry access.Entry) *Claims {
	now := NowFunc()
	exp := now.Add(conf.Server.JWTExpirationDelta)
	if accessEnd := entry.ExpiresAt.AddDate(0, 0, 1); accessEnd.Before(exp) {
		exp = accessEnd
	}
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    conf.AppName,
			Subject:   entry.Username,
			ExpiresAt: exp.Unix(),
			IssuedAt:  now.Unix(),
		},
		Username: entry.Username,
	}
}

// authenticate runs the access gate. The returned error distinguishes an
// expired access window from plain bad credentials; unknown users and wrong
// passwords are deliberately indistinguishable.
func authenticate(uname, pwd string, svc *access.Service) (access.Entry, error) {
	entry, err := svc.Authenticate(uname, pwd, NowFunc())
	if err != nil {
		switch err {
		case access.ErrNotFound, access.ErrInvalidPassword:
			return access.Entry{}, errAuthenticationFailed
		case access.ErrAccessExpired:
			return access.Entry{}, errAccessExpired
		}
		return access.Entry{}, errors.Wrap(err, "authenticating")
	}
	return entry, nil
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextClaimsKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// Auth handlers

type authApi struct {
	conf     *core.Config
	svc      *access.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, deps ServerDeps) {
	api := authApi{
		conf:     deps.Conf,
		svc:      deps.AccessSvc,
		validate: deps.Validate,
	}

	ag := g.Group("/auth")
	// no lockout and no retry limiting: failures only deny this attempt
	ag.POST("/login", api.login)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	entry, err := authenticate(data.Username, data.Password, api.svc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.conf, GetEntryClaims(api.conf, entry))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return validate.Struct(lr)
}
