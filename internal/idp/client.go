// Package idp is a client for the external identity provider, a
// GoTrue-compatible auth service. The provider owns principals, sessions
// and the account-linking protocol; this package only issues requests
// against its HTTP surface.
package idp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrUnauthorized is returned when the provider rejects a session token.
var ErrUnauthorized = errors.New("unauthorized")

// User is the provider's view of an authenticated principal.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

type UserMetadata struct {
	// UserName carries the linked GitHub login for OAuth principals.
	UserName string `json:"user_name"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// GitHubUsername returns the linked GitHub login, if any.
func (u *User) GitHubUsername() string {
	return u.UserMetadata.UserName
}

func (u *User) DisplayName() string {
	if u.UserMetadata.Name != "" {
		return u.UserMetadata.Name
	}
	return u.UserMetadata.FullName
}

type Client struct {
	client     *resty.Client
	serviceKey string
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		client:     resty.New().SetBaseURL(baseURL),
		serviceKey: serviceKey,
	}
}

// GetUser retrieves the principal behind a session token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", accessToken)).
		SetResult(&User{}).
		Get("/user")
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Result().(*User), nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("unexpected status code: %d %s", resp.StatusCode(), string(resp.Body()))
	}
}

// AdminDeleteUser removes the principal from the provider. Requires the
// service key.
func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.serviceKey)).
		Delete(fmt.Sprintf("/admin/users/%s", userID))
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}

// SendMagicLink triggers a passwordless sign-in email for the address.
func (c *Client) SendMagicLink(ctx context.Context, email, redirectTo string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"email": email,
		}).
		SetQueryParam("redirect_to", redirectTo).
		Post("/magiclink")
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}

// Session is the token pair issued by a password grant.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// PasswordSignIn exchanges email/password credentials for a session.
func (c *Client) PasswordSignIn(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{
			"email":    email,
			"password": password,
		}).
		SetResult(&Session{}).
		Post("/token")
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Result().(*Session), nil
	case http.StatusBadRequest, http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("unexpected status code: %d %s", resp.StatusCode(), string(resp.Body()))
	}
}
