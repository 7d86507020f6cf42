package users

import (
	"strings"

	"pet-wellness/internal/domain/validate"
)

// User es la identidad pública que ve el cliente.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account es lo que se persiste; el hash nunca sale por HTTP.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

func (a Account) RecordID() string    { return a.ID }
func (a Account) RecordScope() string { return NormalizeEmail(a.Email) }

func (a Account) User() User {
	return User{ID: a.ID, Name: a.Name, Email: a.Email}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

const minPasswordLen = 8

func (in RegisterInput) Validate() error {
	if err := validate.First(
		validate.Required("name", in.Name),
		validate.Required("email", in.Email),
		validate.Required("password", in.Password),
	); err != nil {
		return err
	}
	if !strings.Contains(in.Email, "@") {
		return validate.Invalid("email is not valid")
	}
	if len(in.Password) < minPasswordLen {
		return validate.Invalid("password must be at least %d characters", minPasswordLen)
	}
	if in.PasswordConfirmation != "" && in.PasswordConfirmation != in.Password {
		return validate.Invalid("password confirmation does not match")
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse es el cuerpo de login/register: {user, token}.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
