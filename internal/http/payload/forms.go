package payload

import (
	"msgboard/internal/core"
	"strings"

	"github.com/jellydator/validation"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var (
	errPasswordMismatch = validation.NewError("validation_password_mismatch", "passwords need to match")
	errPasswordTooLong  = validation.NewError("validation_password_too_long", "the length must be no more than 72 bytes")
)

func passwordBytes(value interface{}) error {
	if len(value.(string)) > maxPasswordBytes {
		return errPasswordTooLong
	}
	return nil
}

type LoginForm struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
}

func (f *LoginForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

func (f LoginForm) ToAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: f.Username,
		Password: f.Password,
	}
}

type RegisterForm struct {
	Username         string `schema:"username"`
	Email            string `schema:"email"`
	Password         string `schema:"password"`
	ApprovedPassword string `schema:"approved_password"`
}

func (f *RegisterForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required, validation.Length(0, 20)),
		validation.Field(&f.Email, validation.Required, validation.Length(0, 120)),
		validation.Field(&f.Password, validation.Required, validation.By(passwordBytes)),
		validation.Field(&f.ApprovedPassword, validation.By(func(value interface{}) error {
			if value.(string) != f.Password {
				return errPasswordMismatch
			}
			return nil
		})),
	)
}

func (f RegisterForm) ToRegisterMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username:        f.Username,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ApprovedPassword,
	}
}

type MessageForm struct {
	Title    string `schema:"title"`
	Message  string `schema:"message"`
	Category string `schema:"category"`
}

func (f *MessageForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Message = strings.TrimSpace(f.Message)
	f.Category = strings.TrimSpace(f.Category)
}

func (f MessageForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(0, 50)),
		validation.Field(&f.Message, validation.Required, validation.Length(0, 500)),
		validation.Field(&f.Category, validation.Required, validation.Length(0, 500)),
	)
}

func (f MessageForm) ToSubmission() core.MessageSubmission {
	return core.MessageSubmission{
		Title:    f.Title,
		Message:  f.Message,
		Category: f.Category,
	}
}
