package domain

import (
	"strings"
	"time"
)

type User struct {
	Base
	Name  string
	Email string
}

type CreateUserInput struct {
	Name  string
	Email string
}

func (in CreateUserInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name", "required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return NewValidationError("email", "required")
	}
	return nil
}

func NewUser(in CreateUserInput, now time.Time) User {
	return User{
		Base:  NewBase(now),
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
	}
}

// UpdateUserInput has no IsActive: the flag is not writable through the API.
type UpdateUserInput struct {
	Name  Optional[string]
	Email Optional[string]
}

func (in UpdateUserInput) Validate() error {
	if name, ok := in.Name.Get(); ok && strings.TrimSpace(name) == "" {
		return NewValidationError("name", "required")
	}
	if email, ok := in.Email.Get(); ok && strings.TrimSpace(email) == "" {
		return NewValidationError("email", "required")
	}
	return nil
}

func (u *User) Apply(in UpdateUserInput, now time.Time) {
	if name, ok := in.Name.Get(); ok {
		u.Name = strings.TrimSpace(name)
	}
	if email, ok := in.Email.Get(); ok {
		u.Email = strings.TrimSpace(email)
	}
	u.Touch(now)
}
