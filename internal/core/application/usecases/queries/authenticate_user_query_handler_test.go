package queries_test

import (
	"context"
	"errors"
	"testing"

	"laborders/internal/core/application/usecases/queries"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthUserRepository struct{ mock.Mock }

func (m *MockAuthUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockAuthUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockAuthPasswordHasher struct{ mock.Mock }

func (m *MockAuthPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthPasswordHasher) Compare(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID kernel.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func TestNewAuthenticateUserQuery_ValidInput(t *testing.T) {
	query, err := queries.NewAuthenticateUserQuery("jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", query.Email())
	assert.Equal(t, "s3cret", query.Password())
}

func TestNewAuthenticateUserQuery_MissingFields(t *testing.T) {
	_, err := queries.NewAuthenticateUserQuery("", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAuthenticateUserQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewAuthenticateUserQuery("jane@example.com", "s3cret")

	userID := kernel.NewUUID()
	account, err := user.NewUser(userID, "jane@example.com", "$2a$10$hash")
	require.NoError(t, err)

	users := new(MockAuthUserRepository)
	hasher := new(MockAuthPasswordHasher)
	tokens := new(MockTokenIssuer)

	mock.InOrder(
		users.On("GetByEmail", ctx, "jane@example.com").Return(account, nil).Once(),
		hasher.On("Compare", "$2a$10$hash", "s3cret").Return(true).Once(),
		tokens.On("Issue", userID).Return("signed.jwt.token", nil).Once(),
	)

	h := queries.NewAuthenticateUserQueryHandler(users, hasher, tokens)
	result, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.Token)
	assert.Equal(t, userID, result.User.ID)
	assert.Equal(t, "jane@example.com", result.User.Email)
	users.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestAuthenticateUserQueryHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewAuthenticateUserQuery("nobody@example.com", "s3cret")

	users := new(MockAuthUserRepository)
	hasher := new(MockAuthPasswordHasher)
	tokens := new(MockTokenIssuer)

	users.On("GetByEmail", ctx, "nobody@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).
		Once()

	h := queries.NewAuthenticateUserQueryHandler(users, hasher, tokens)
	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthenticateUserQueryHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewAuthenticateUserQuery("jane@example.com", "wrong")

	account, err := user.NewUser(kernel.NewUUID(), "jane@example.com", "$2a$10$hash")
	require.NoError(t, err)

	users := new(MockAuthUserRepository)
	hasher := new(MockAuthPasswordHasher)
	tokens := new(MockTokenIssuer)

	mock.InOrder(
		users.On("GetByEmail", ctx, "jane@example.com").Return(account, nil).Once(),
		hasher.On("Compare", "$2a$10$hash", "wrong").Return(false).Once(),
	)

	h := queries.NewAuthenticateUserQueryHandler(users, hasher, tokens)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthenticateUserQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewAuthenticateUserQuery("jane@example.com", "s3cret")

	users := new(MockAuthUserRepository)
	users.On("GetByEmail", ctx, "jane@example.com").Return(nil, errors.New("database error")).Once()

	h := queries.NewAuthenticateUserQueryHandler(users, new(MockAuthPasswordHasher), new(MockTokenIssuer))
	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	require.EqualError(t, err, "database error")
	require.NotErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestAuthenticateUserQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	query := queries.AuthenticateUserQuery{} // not constructed properly

	users := new(MockAuthUserRepository)
	h := queries.NewAuthenticateUserQueryHandler(users, new(MockAuthPasswordHasher), new(MockTokenIssuer))
	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrAuthenticateUserQueryIsNotConstructed)
	users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}
