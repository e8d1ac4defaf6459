package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new user.
// A unique user ID is generated by the constructor; username length limits
// are enforced by the user aggregate when the handler builds it.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user.
// Automatically generates a unique ID for the user.
func NewCreateUserCommand(username string) (CreateUserCommand, error) {
	command := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(kernel.NewUUID()),
		command.setUsername(username),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the generated user ID.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the username from the command.
func (c CreateUserCommand) Username() string {
	return c.username
}

func (c *CreateUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}
