package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/avdeenkov/shopview/internal/client/catalog"
	"github.com/avdeenkov/shopview/internal/models"
)

// fakeAPI implements API for testing.
type fakeAPI struct {
	LoginFunc         func(ctx context.Context, username, password string) (string, error)
	FetchProductsFunc func(ctx context.Context) ([]models.Product, error)
	RegisterFunc      func(ctx context.Context, form models.RegistrationForm) error

	fetchCalls int
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	return f.LoginFunc(ctx, username, password)
}

func (f *fakeAPI) FetchProducts(ctx context.Context) ([]models.Product, error) {
	f.fetchCalls++
	if f.FetchProductsFunc == nil {
		return nil, nil
	}
	return f.FetchProductsFunc(ctx)
}

func (f *fakeAPI) Register(ctx context.Context, form models.RegistrationForm) error {
	return f.RegisterFunc(ctx, form)
}

func newTestController(t *testing.T, api *fakeAPI) (*Controller, *catalog.View, *FileTokenStore) {
	t.Helper()
	store := &FileTokenStore{Path: filepath.Join(t.TempDir(), "session.json")}
	view := catalog.New(catalog.DefaultPageSize)
	return NewController(api, store, view, nil), view, store
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Phone", Price: 500},
		{ID: 2, Title: "Case", Price: 10},
	}
}

func TestLogin_Success(t *testing.T) {
	api := &fakeAPI{
		LoginFunc: func(ctx context.Context, username, password string) (string, error) {
			if username != "emily" || password != "pass" {
				t.Errorf("Login received (%q, %q)", username, password)
			}
			return "tok-1", nil
		},
		FetchProductsFunc: func(ctx context.Context) ([]models.Product, error) {
			return sampleProducts(), nil
		},
	}
	c, view, store := newTestController(t, api)

	if err := c.Login(context.Background(), "emily", "pass"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if c.State() != Authenticated {
		t.Errorf("state = %v; want authenticated", c.State())
	}
	token, _ := store.Load()
	if token != "tok-1" {
		t.Errorf("persisted token = %q; want %q", token, "tok-1")
	}
	if got := len(view.ComputeView()); got != 2 {
		t.Errorf("view has %d products; want 2", got)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	api := &fakeAPI{
		LoginFunc: func(ctx context.Context, username, password string) (string, error) {
			return "", errors.New("status 400")
		},
	}
	c, _, store := newTestController(t, api)

	err := c.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v; want ErrInvalidCredentials", err)
	}
	if c.State() != Anonymous {
		t.Errorf("state = %v; want anonymous", c.State())
	}
	token, _ := store.Load()
	if token != "" {
		t.Errorf("token persisted on failed login: %q", token)
	}
	if api.fetchCalls != 0 {
		t.Errorf("catalog fetched %d times after failed login", api.fetchCalls)
	}
}

func TestLogin_NetworkFailureMapsToInvalidCredentials(t *testing.T) {
	api := &fakeAPI{
		LoginFunc: func(ctx context.Context, username, password string) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		},
	}
	c, _, _ := newTestController(t, api)

	if err := c.Login(context.Background(), "emily", "pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v; want ErrInvalidCredentials", err)
	}
}

func TestRestore_TokenPresent(t *testing.T) {
	api := &fakeAPI{
		FetchProductsFunc: func(ctx context.Context) ([]models.Product, error) {
			return sampleProducts(), nil
		},
	}
	c, view, store := newTestController(t, api)
	if err := store.Save("stale-but-present"); err != nil {
		t.Fatal(err)
	}

	if got := c.Restore(context.Background()); got != Authenticated {
		t.Fatalf("Restore = %v; want authenticated", got)
	}
	if api.fetchCalls != 1 {
		t.Errorf("catalog fetched %d times; want 1", api.fetchCalls)
	}
	if len(view.ComputeView()) == 0 {
		t.Error("view empty after restore")
	}
}

func TestRestore_NoToken(t *testing.T) {
	api := &fakeAPI{}
	c, _, _ := newTestController(t, api)

	if got := c.Restore(context.Background()); got != Anonymous {
		t.Errorf("Restore = %v; want anonymous", got)
	}
	if api.fetchCalls != 0 {
		t.Errorf("catalog fetched %d times without token", api.fetchCalls)
	}
}

func TestLogout_ClearsTokenAndCatalog(t *testing.T) {
	api := &fakeAPI{
		LoginFunc: func(ctx context.Context, username, password string) (string, error) {
			return "tok", nil
		},
		FetchProductsFunc: func(ctx context.Context) ([]models.Product, error) {
			return sampleProducts(), nil
		},
	}
	c, view, store := newTestController(t, api)
	if err := c.Login(context.Background(), "emily", "pass"); err != nil {
		t.Fatal(err)
	}

	c.Logout()

	if c.State() != Anonymous {
		t.Errorf("state = %v; want anonymous", c.State())
	}
	if token, _ := store.Load(); token != "" {
		t.Errorf("token still persisted after logout: %q", token)
	}
	if got := view.PageCount(); got != 0 {
		t.Errorf("PageCount = %d after logout; want 0", got)
	}
}

func TestFetchFailure_LeavesCatalogUnchanged(t *testing.T) {
	fetchErr := errors.New("boom")
	api := &fakeAPI{
		LoginFunc: func(ctx context.Context, username, password string) (string, error) {
			return "tok", nil
		},
		FetchProductsFunc: func(ctx context.Context) ([]models.Product, error) {
			return sampleProducts(), nil
		},
	}
	c, view, _ := newTestController(t, api)
	if err := c.Login(context.Background(), "emily", "pass"); err != nil {
		t.Fatal(err)
	}

	// Second fetch fails; the loaded catalog must survive.
	api.FetchProductsFunc = func(ctx context.Context) ([]models.Product, error) {
		return nil, fetchErr
	}
	if got := c.Restore(context.Background()); got != Authenticated {
		t.Fatalf("Restore = %v; want authenticated", got)
	}
	if got := len(view.ComputeView()); got != 2 {
		t.Errorf("view has %d products after failed fetch; want 2", got)
	}
}

func TestRegister_Success(t *testing.T) {
	called := false
	api := &fakeAPI{
		RegisterFunc: func(ctx context.Context, form models.RegistrationForm) error {
			called = true
			return nil
		},
	}
	c, _, store := newTestController(t, api)

	form := validForm()
	if err := c.Register(context.Background(), form); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !called {
		t.Fatal("expected Register to reach the API")
	}
	// Registration never logs the user in.
	if c.State() != Anonymous {
		t.Errorf("state = %v after registration; want anonymous", c.State())
	}
	if token, _ := store.Load(); token != "" {
		t.Errorf("token persisted by registration: %q", token)
	}
}

func TestRegister_MissingField(t *testing.T) {
	api := &fakeAPI{
		RegisterFunc: func(ctx context.Context, form models.RegistrationForm) error {
			t.Fatal("API must not be called with missing fields")
			return nil
		},
	}
	c, _, _ := newTestController(t, api)

	form := validForm()
	form.Email = ""
	if err := c.Register(context.Background(), form); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("Register error = %v; want ErrMissingFields", err)
	}
}

func TestRegister_RequestFailed(t *testing.T) {
	api := &fakeAPI{
		RegisterFunc: func(ctx context.Context, form models.RegistrationForm) error {
			return errors.New("status 500")
		},
	}
	c, _, _ := newTestController(t, api)

	if err := c.Register(context.Background(), validForm()); !errors.Is(err, ErrRegistrationFailed) {
		t.Fatalf("Register error = %v; want ErrRegistrationFailed", err)
	}
}

func validForm() models.RegistrationForm {
	return models.RegistrationForm{
		FirstName: "Emily",
		LastName:  "Johnson",
		Age:       28,
		Gender:    "female",
		Email:     "emily@example.com",
		Phone:     "+1 555 0100",
		Username:  "emily",
		Password:  "pass",
		BirthDate: "1996-05-30",
	}
}
