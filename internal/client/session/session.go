// Package session owns the client's authentication state and drives catalog
// retrieval on login and session restore.
package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avdeenkov/shopview/internal/client/catalog"
	"github.com/avdeenkov/shopview/internal/models"
)

var (
	// ErrInvalidCredentials is returned when login fails. Bad credentials
	// and transport failure map to the same error; the user sees one
	// generic message for both.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrRegistrationFailed is returned when the registration endpoint
	// answers with anything but success.
	ErrRegistrationFailed = errors.New("registration failed")
	// ErrMissingFields is returned when the registration form has an empty
	// required field.
	ErrMissingFields = errors.New("all registration fields are required")
)

// State is the authentication state of the client.
type State int

const (
	// Anonymous means no session token is held.
	Anonymous State = iota
	// Authenticated means a session token was obtained or restored.
	Authenticated
)

// API is the remote-service surface the controller depends on.
type API interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, username, password string) (string, error)
	// FetchProducts retrieves the full catalog.
	FetchProducts(ctx context.Context) ([]models.Product, error)
	// Register submits a registration form.
	Register(ctx context.Context, form models.RegistrationForm) error
}

// Controller is the single mutator of session state and of the catalog view's
// item set. It transitions between Anonymous and Authenticated and triggers
// a catalog fetch when a session begins.
type Controller struct {
	api    API
	tokens TokenStore
	view   *catalog.View
	log    *zap.Logger
	state  State
}

// NewController wires the controller to its API client, token store and the
// view it fills. A nil logger is replaced with a no-op.
func NewController(api API, tokens TokenStore, view *catalog.View, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		api:    api,
		tokens: tokens,
		view:   view,
		log:    log,
		state:  Anonymous,
	}
}

// State returns the current authentication state.
func (c *Controller) State() State {
	return c.state
}

// Login exchanges the credentials for a session token, persists it,
// transitions to Authenticated and fetches the catalog. Any failure leaves
// the state untouched and reports ErrInvalidCredentials regardless of cause.
func (c *Controller) Login(ctx context.Context, username, secret string) error {
	token, err := c.api.Login(ctx, username, secret)
	if err != nil {
		c.log.Info("login rejected", zap.String("username", username), zap.Error(err))
		return ErrInvalidCredentials
	}

	if err := c.tokens.Save(token); err != nil {
		// Session still works for this run; only restore is affected.
		c.log.Warn("failed to persist session token", zap.Error(err))
	}
	c.state = Authenticated
	c.fetchCatalog(ctx)
	return nil
}

// Restore reads the persisted token at startup. A present token flips the
// state to Authenticated and triggers a catalog fetch; the token itself is
// never validated against the server.
func (c *Controller) Restore(ctx context.Context) State {
	token, err := c.tokens.Load()
	if err != nil {
		c.log.Warn("failed to read session token", zap.Error(err))
		return c.state
	}
	if token == "" {
		return c.state
	}
	c.state = Authenticated
	c.fetchCatalog(ctx)
	return c.state
}

// Logout clears the persisted token, empties the catalog view and returns
// to Anonymous.
func (c *Controller) Logout() {
	if err := c.tokens.Clear(); err != nil {
		c.log.Warn("failed to clear session token", zap.Error(err))
	}
	c.state = Anonymous
	c.view.SetCatalog(nil)
}

// Register submits the form after a presence-only check of its fields.
// Success does not log the user in; registration and login are independent
// flows.
func (c *Controller) Register(ctx context.Context, form models.RegistrationForm) error {
	if err := checkPresence(form); err != nil {
		return err
	}
	if err := c.api.Register(ctx, form); err != nil {
		c.log.Info("registration rejected", zap.String("username", form.Username), zap.Error(err))
		return ErrRegistrationFailed
	}
	return nil
}

// checkPresence verifies every registration field is set.
func checkPresence(form models.RegistrationForm) error {
	switch {
	case form.FirstName == "", form.LastName == "", form.Gender == "",
		form.Email == "", form.Phone == "", form.Username == "",
		form.Password == "", form.BirthDate == "", form.Age <= 0:
		return ErrMissingFields
	}
	return nil
}

// fetchCatalog pulls the product list into the view. Failures are logged and
// leave the previously loaded catalog untouched; the user is not notified.
func (c *Controller) fetchCatalog(ctx context.Context) {
	products, err := c.api.FetchProducts(ctx)
	if err != nil {
		c.log.Error("failed to fetch products", zap.Error(err))
		return
	}
	c.view.SetCatalog(products)
	c.log.Debug("catalog loaded", zap.Int("products", len(products)))
}

// String makes log output of states readable.
func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}
