package queries

import (
	"context"
	"errors"

	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"
)

// AuthenticateUserQueryHandler checks credentials against stored accounts.
// Unknown emails and wrong passwords are indistinguishable to the caller:
// both come back as errs.InvalidCredentialsError.
type AuthenticateUserQueryHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

// NewAuthenticateUserQueryHandler creates a handler for credential checks.
func NewAuthenticateUserQueryHandler(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Handle verifies the credentials and issues an access token on success.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	account, err := h.users.GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthenticateUserQueryResponse{}, errs.NewInvalidCredentialsError()
		}
		return AuthenticateUserQueryResponse{}, err
	}

	if !h.hasher.Compare(account.PasswordHash(), query.Password()) {
		return AuthenticateUserQueryResponse{}, errs.NewInvalidCredentialsError()
	}

	token, err := h.tokens.Issue(account.ID())
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		Token: token,
		User: AuthenticatedUserResponse{
			ID:    account.ID(),
			Email: account.Email(),
		},
	}, nil
}
