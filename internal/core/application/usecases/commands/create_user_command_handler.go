package commands

import (
	"context"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
)

// CreateUserCommandHandler handles user registration.
// Rejects duplicate usernames before persisting the new aggregate.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user creation command.
// Persists the new user within a transaction, failing if the username is
// already taken.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
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

	userRepo := uow.UserRepository()
	existing, err := userRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, u := range existing {
		if u.Username() == cmd.Username() {
			return errs.NewValueIsInvalidError("username is already taken")
		}
	}

	userEntity, err := user.NewUser(cmd.UserID(), cmd.Username())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, userEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
