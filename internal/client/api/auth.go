package api

import (
	"context"
	"net/url"

	"github.com/rosdobro/dobrodela-cli/internal/client/models"
)

// Login exchanges credentials for a token. The backend expects form fields
// named username and password, per its OAuth2 password flow.
func (c *HTTPClient) Login(ctx context.Context, login, password string) (*models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", login)
	form.Set("password", password)

	var resp models.TokenResponse
	if err := c.postForm(ctx, loginEndpoint, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. It does not establish a session; callers log
// in separately afterwards.
func (c *HTTPClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.postJSON(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout notifies the backend that the session is over. Callers treat the
// call as best-effort.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout")
}

// CurrentUser fetches the identity behind the stored credential.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, meEndpoint, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
