package api

import (
	"context"
	"net/url"
)

// Profile holds the learner profile fields stored by the backend.
type Profile struct {
	Name       string   `json:"name,omitempty"`
	Grade      string   `json:"grade,omitempty"`
	Subjects   []string `json:"subjects,omitempty"`
	Curriculum string   `json:"curriculum,omitempty"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates the given credentials. A non-2xx response surfaces
// as *Error with the server's detail message.
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.post(ctx, "/auth/login/", nil, credentials{Username: username, Password: password}, nil)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.post(ctx, "/auth/register/", nil, credentials{Username: username, Password: password}, nil)
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	body := struct {
		Username    string `json:"username"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}{username, oldPassword, newPassword}
	return c.post(ctx, "/auth/change-password/", nil, body, nil)
}

// GetProfile fetches the stored profile for a user.
func (c *Client) GetProfile(ctx context.Context, username string) (*Profile, error) {
	q := url.Values{"username": {username}}
	var p Profile
	if err := c.get(ctx, "/user/profile", q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile sends changed profile fields to the backend. Only the
// fields set in p are transmitted.
func (c *Client) UpdateProfile(ctx context.Context, username string, p Profile) error {
	q := url.Values{"username": {username}}
	return c.post(ctx, "/user/update", q, p, nil)
}

// UpdateCurriculum sets the user's curriculum.
func (c *Client) UpdateCurriculum(ctx context.Context, username, curriculum string) error {
	q := url.Values{"username": {username}}
	body := struct {
		Curriculum string `json:"curriculum"`
	}{curriculum}
	return c.post(ctx, "/user/update-curriculum", q, body, nil)
}
