package commands

import (
	"context"
	"errors"

	"laborders/internal/core/domain/model/user"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for user registration.
// Rejects duplicate emails and stores only the password hash.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration operations.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Returns errs.ObjectAlreadyExistsError when the email is already taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Email(), passwordHash)
	if err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
