// Package api implements the HTTP client for the storefront service:
// authentication, product listing and user registration.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/avdeenkov/shopview/internal/models"
)

const (
	pathLogin    = "/auth/login"
	pathProducts = "/products"
	pathRegister = "/users/add"
)

// Client talks to the storefront REST endpoints.
type Client struct {
	http    *http.Client
	baseURL string
	log     *zap.Logger
}

// New returns a Client for the service at baseURL. A nil httpClient falls
// back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{http: httpClient, baseURL: baseURL, log: log}
}

// loginResponse is the subset of the login payload the client consumes.
// Any extra fields in the response are ignored.
type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. Any non-2xx status or
// transport failure is an error; the caller maps all of them to a single
// invalid-credentials result.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathLogin, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return lr.Token, nil
}

// productsEnvelope is the wrapped listing shape.
type productsEnvelope struct {
	Products []models.Product `json:"products"`
}

// FetchProducts retrieves the full catalog. The endpoint may answer with a
// bare array of products or with a {"products": [...]} envelope; both are
// accepted, anything else is ErrInvalidResponseShape.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathProducts, nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("products request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("products request failed: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read products response: %w", err)
	}

	var bare []models.Product
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var env productsEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Products != nil {
		return env.Products, nil
	}

	c.log.Error("products response matches no known shape",
		zap.Int("bytes", len(raw)))
	return nil, ErrInvalidResponseShape
}

// Register submits the registration form. The response body is not used
// beyond the status check; registration never logs the user in.
func (c *Client) Register(ctx context.Context, form models.RegistrationForm) error {
	body, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("encode registration request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathRegister, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("registration request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("registration failed: status %d", resp.StatusCode)
	}
	return nil
}
