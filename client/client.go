// Package client is a small Go SDK for the quizhub API. It implements the
// client half of session resolution: it keeps the bearer token of a
// rememberMe=false login in memory, lets the cookie jar carry the session of a
// rememberMe=true login, and resolves the current identity by trying the
// bearer carrier first and the ambient cookie second.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
)

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsTeacher bool   `json:"isTeacher"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token string
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("client: create cookie jar: %w", err)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
	}, nil
}

// Token returns the locally held bearer token, if any. Useful for persisting
// it across client instances.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// SetToken seeds the local bearer token, e.g. one restored from storage.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

type RegisterParams struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsTeacher bool   `json:"isTeacher"`
}

func (c *Client) Register(ctx context.Context, params RegisterParams) (*User, error) {
	var user User
	if err := c.post(ctx, "/api/v1/auth/register", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and persists whichever carrier the server chose: a
// returned token is stored locally, a session cookie lands in the jar.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (*User, error) {
	// Drop any stale bearer token before a fresh login decision.
	c.SetToken("")

	body := map[string]any{"email": email, "password": password, "rememberMe": rememberMe}
	var resp struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/api/v1/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		c.SetToken(resp.Token)
	}
	return resp.User, nil
}

// Logout clears both local carriers regardless of the server outcome: the
// token is dropped and the server's expiring Set-Cookie (when the call
// succeeds) clears the jar entry.
func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, "/api/v1/auth/logout", struct{}{}, nil)
	c.SetToken("")
	return err
}

// CurrentUser resolves the current identity. The held bearer token is tried
// first, skipping the literal "undefined"/"null" artifacts storage layers
// produce; if the server does not recognize it, the token is discarded and
// resolution falls through to the ambient cookie. An identity that resolves
// to nobody returns (nil, nil).
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	token := c.Token()
	if token != "" && token != "undefined" && token != "null" {
		user, err := c.autologin(ctx, token)
		if err == nil && user != nil {
			return user, nil
		}
		// Defensive discard: the token bought nothing, stop replaying it.
		c.mu.Lock()
		if c.token == token {
			c.token = ""
		}
		c.mu.Unlock()
	}

	return c.autologin(ctx, "")
}

func (c *Client) autologin(ctx context.Context, bearer string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/auth/autologin", nil)
	if err != nil {
		return nil, err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("client: autologin returned status %d", res.StatusCode)
	}

	var payload struct {
		User *User `json:"user"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(res.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("client: %s (status %d)", apiErr.Error, res.StatusCode)
		}
		return fmt.Errorf("client: request failed with status %d", res.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
