package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "laborders/internal/adapters/in/http"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID kernel.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func invokeMiddleware(t *testing.T, middleware echo.MiddlewareFunc, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	reached := false
	next := func(echo.Context) error {
		reached = true
		return ctx.NoContent(http.StatusOK)
	}

	require.NoError(t, middleware(next)(ctx))
	return rec, reached
}

func TestAuthMiddleware_MissingToken_Returns401(t *testing.T) {
	middleware := httpadapter.NewAuthMiddleware(new(MockTokenIssuer), new(MockUserRepository))

	rec, reached := invokeMiddleware(t, middleware, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_NotBearerScheme_Returns401(t *testing.T) {
	middleware := httpadapter.NewAuthMiddleware(new(MockTokenIssuer), new(MockUserRepository))

	rec, reached := invokeMiddleware(t, middleware, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_ExpiredToken_Returns403(t *testing.T) {
	tokens := new(MockTokenIssuer)
	tokens.On("Verify", "expired.jwt").Return(kernel.UUID{}, jwt.ErrTokenExpired).Once()

	middleware := httpadapter.NewAuthMiddleware(tokens, new(MockUserRepository))

	rec, reached := invokeMiddleware(t, middleware, "Bearer expired.jwt")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
	tokens.AssertExpectations(t)
}

func TestAuthMiddleware_InvalidToken_Returns401(t *testing.T) {
	tokens := new(MockTokenIssuer)
	tokens.On("Verify", "garbage").Return(kernel.UUID{}, jwt.ErrTokenMalformed).Once()

	middleware := httpadapter.NewAuthMiddleware(tokens, new(MockUserRepository))

	rec, reached := invokeMiddleware(t, middleware, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_UnknownUser_Returns401(t *testing.T) {
	userID := kernel.NewUUID()

	tokens := new(MockTokenIssuer)
	tokens.On("Verify", "valid.jwt").Return(userID, nil).Once()

	users := new(MockUserRepository)
	users.On("Get", mock.Anything, userID).
		Return(nil, errs.NewObjectNotFoundError("userId", userID.String())).Once()

	middleware := httpadapter.NewAuthMiddleware(tokens, users)

	rec, reached := invokeMiddleware(t, middleware, "Bearer valid.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_ValidToken_CallsNext(t *testing.T) {
	userID := kernel.NewUUID()
	account, err := user.NewUser(userID, "jane@example.com", "hashed:s3cret")
	require.NoError(t, err)

	tokens := new(MockTokenIssuer)
	tokens.On("Verify", "valid.jwt").Return(userID, nil).Once()

	users := new(MockUserRepository)
	users.On("Get", mock.Anything, userID).Return(account, nil).Once()

	middleware := httpadapter.NewAuthMiddleware(tokens, users)

	rec, reached := invokeMiddleware(t, middleware, "Bearer valid.jwt")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	tokens.AssertExpectations(t)
	users.AssertExpectations(t)
}
