package marketapi

import (
	"context"
	"net/http"
)

// Login POST /login
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, call{op: "Login", method: http.MethodPost, path: "/login", body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register POST /register
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, call{op: "Register", method: http.MethodPost, path: "/register", body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout POST /logout
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, call{op: "Logout", method: http.MethodPost, path: "/logout", token: token}, nil)
}

// ValidateUser GET /validate-user
func (c *Client) ValidateUser(ctx context.Context, token string) (*ValidateUserResponse, error) {
	var resp ValidateUserResponse
	if err := c.do(ctx, call{op: "ValidateUser", method: http.MethodGet, path: "/validate-user", token: token}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
