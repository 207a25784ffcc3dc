package marketapi

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// GetProfile GET /profile
func (c *Client) GetProfile(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, call{op: "GetProfile", method: http.MethodGet, path: "/profile", token: token}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile PUT /profile
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, call{op: "UpdateProfile", method: http.MethodPut, path: "/profile", token: token, body: req}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword PUT /profile/password
func (c *Client) ChangePassword(ctx context.Context, token string, req ChangePasswordRequest) error {
	return c.do(ctx, call{op: "ChangePassword", method: http.MethodPut, path: "/profile/password", token: token, body: req}, nil)
}
