package api

import (
	"context"
	"net/http"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. Invalid credentials come
// back as *Error, not a transport failure.
func (c *Client) Login(ctx context.Context, username, password string) (domain.LoginResult, error) {
	var res domain.LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		loginRequest{Username: username, Password: password}, &res)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return res, nil
}

// RegisterRequest creates a new account. Role defaults to Customer on the
// backend when left empty.
type RegisterRequest struct {
	UserName    string `json:"userName"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, nil)
}
