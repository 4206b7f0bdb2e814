package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	principal *service.Principal
	err       error
}

func (s *stubTokenService) GenerateTokens(*entity.User) (string, string, error) {
	return "", "", nil
}

func (s *stubTokenService) ValidateAccessToken(string) (*service.Principal, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.principal, nil
}

func (s *stubTokenService) ValidateRefreshToken(string) (int64, error) { return 0, s.err }

func (s *stubTokenService) RefreshTokenDuration() time.Duration { return time.Hour }

func runAuth(t *testing.T, tokenService service.TokenService, authHeader string) (error, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokenService)
	next := func(c echo.Context) error { return nil }

	return mw.Authenticate(next)(c), c
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	err, _ := runAuth(t, &stubTokenService{}, "")
	assert.ErrorIs(t, err, domainerrors.ErrAuthMissingToken)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	err, _ := runAuth(t, &stubTokenService{}, "Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, domainerrors.ErrAuthMalformedToken)
}

func TestAuthenticate_EmptyBearer(t *testing.T) {
	err, _ := runAuth(t, &stubTokenService{}, "Bearer ")
	assert.ErrorIs(t, err, domainerrors.ErrAuthMalformedToken)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	svc := &stubTokenService{err: service.ErrTokenExpired}
	err, _ := runAuth(t, svc, "Bearer stale-token")
	assert.ErrorIs(t, err, domainerrors.ErrAuthTokenExpired)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	svc := &stubTokenService{err: service.ErrTokenInvalid}
	err, _ := runAuth(t, svc, "Bearer garbage")
	assert.ErrorIs(t, err, domainerrors.ErrAuthTokenInvalid)
}

func TestAuthenticate_SetsPrincipal(t *testing.T) {
	svc := &stubTokenService{principal: &service.Principal{UserID: 7, Email: "driver@example.com"}}
	err, c := runAuth(t, svc, "Bearer good-token")
	require.NoError(t, err)

	principal, ok := CurrentPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, "driver@example.com", principal.Email)
}

func TestCurrentPrincipal_AbsentWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := CurrentPrincipal(c)
	assert.False(t, ok)
}
