package dto

import (
	"net/http"

	"github.com/asaskevich/govalidator"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Bind implements render.Binder.
func (l *LoginRequest) Bind(r *http.Request) error {
	if l.Username == "" || l.Password == "" {
		return gerr.InvalidRequest("username and password are required")
	}
	return nil
}

type CreateAdminRequest struct {
	MasterPassword string `json:"master_password"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

// Bind implements render.Binder.
func (c *CreateAdminRequest) Bind(r *http.Request) error {
	if c.Username == "" || c.Password == "" {
		return gerr.InvalidRequest("username and password are required")
	}
	if c.Email != "" && !govalidator.IsEmail(c.Email) {
		return gerr.InvalidRequest("invalid email %q", c.Email)
	}
	return nil
}

type TokenResponse struct {
	Token string `json:"token"`
}
