package httptransport_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
	"github.com/JiyaDuseja/inventory-management/internal/identity"
	"github.com/JiyaDuseja/inventory-management/internal/repository"
	httptransport "github.com/JiyaDuseja/inventory-management/internal/transport/http"
	"github.com/JiyaDuseja/inventory-management/internal/transport/http/handler"
	"github.com/JiyaDuseja/inventory-management/internal/usecase"
	"github.com/gin-gonic/gin"
)

const testJWTKey = "router-test-secret-at-least-32ch!!"

func init() {
	gin.SetMode(gin.TestMode)
}

// ---- in-memory collaborators ----

// memProvider stands in for the identity provider. Credential storage is
// opaque to the rest of the system, so plaintext is fine in a test double.
type memProvider struct {
	mu    sync.Mutex
	creds map[string]string // email -> password
	ids   map[string]string // email -> id
	next  int
}

func newMemProvider() *memProvider {
	return &memProvider{creds: make(map[string]string), ids: make(map[string]string)}
}

func (p *memProvider) CreateIdentity(_ context.Context, email, password string) (*identity.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.creds[email]; exists {
		return nil, domain.ErrEmailTaken
	}
	p.next++
	id := fmt.Sprintf("id-%d", p.next)
	p.creds[email] = password
	p.ids[email] = id
	return &identity.Identity{ID: id, Email: email}, nil
}

func (p *memProvider) VerifyPassword(_ context.Context, email, password string) (*identity.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	stored, exists := p.creds[email]
	if !exists || stored != password {
		return nil, domain.ErrInvalidCredentials
	}
	return &identity.Identity{ID: p.ids[email], Email: email}, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, id, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := &domain.User{ID: id, Email: email}
	r.users[id] = u
	return u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memProductRepo struct {
	mu       sync.Mutex
	order    []string
	products map[string]*domain.Product
	next     int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*domain.Product)}
}

func (r *memProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	stored := *product
	stored.ID = fmt.Sprintf("p-%d", r.next)
	r.products[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *memProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Product
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *memProductRepo) Update(_ context.Context, id string, patch repository.ProductPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// ---- harness ----

func newTestRouter() *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	authUsecase := usecase.NewAuthUsecase(newMemProvider(), newMemUserRepo(), []byte(testJWTKey))
	productUsecase := usecase.NewProductUsecase(newMemProductRepo())

	return httptransport.NewRouter(
		logger,
		handler.NewAuthHandler(authUsecase, logger),
		handler.NewProductHandler(productUsecase, logger),
		[]byte(testJWTKey),
	)
}

func do(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// ---- tests ----

func TestRoot_IsOpen(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestProducts_RequireToken(t *testing.T) {
	r := newTestRouter()
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/products"},
		{http.MethodGet, "/products"},
		{http.MethodPut, "/products/p-1"},
		{http.MethodDelete, "/products/p-1"},
	} {
		w := do(t, r, tc.method, tc.path, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestCORSHeaders_Present(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "PUT") {
		t.Errorf("Allow-Methods = %q, want PUT included", got)
	}
}

// Full lifecycle: signup, login, create, list, partial update, delete.
func TestSignupLoginAndProductLifecycle(t *testing.T) {
	r := newTestRouter()

	// signup
	w := do(t, r, http.MethodPost, "/signup", `{"email":"a@x.com","password":"pw123"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body %s", w.Code, w.Body.String())
	}
	var signupResp struct {
		UserID string `json:"userId"`
	}
	decode(t, w, &signupResp)
	if signupResp.UserID == "" {
		t.Fatal("signup returned no userId")
	}

	// duplicate signup
	w = do(t, r, http.MethodPost, "/signup", `{"email":"a@x.com","password":"other"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup status = %d, want 400", w.Code)
	}

	// login, wrong password first
	w = do(t, r, http.MethodPost, "/login", `{"email":"a@x.com","password":"nope"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad login status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodPost, "/login", `{"email":"a@x.com","password":"pw123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	decode(t, w, &loginResp)
	if loginResp.Token == "" {
		t.Fatal("login returned no token")
	}
	token := loginResp.Token

	// create
	w = do(t, r, http.MethodPost, "/products", `{"name":"Widget","quantity":5,"price":9.99}`, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var createResp struct {
		ID string `json:"id"`
	}
	decode(t, w, &createResp)

	// list contains the product, stamped with the creator
	w = do(t, r, http.MethodGet, "/products", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listResp []struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Quantity  int64   `json:"quantity"`
		Price     float64 `json:"price"`
		CreatedBy string  `json:"createdBy"`
	}
	decode(t, w, &listResp)
	if len(listResp) != 1 {
		t.Fatalf("list has %d items, want 1", len(listResp))
	}
	got := listResp[0]
	if got.ID != createResp.ID || got.Name != "Widget" || got.Quantity != 5 || got.Price != 9.99 {
		t.Errorf("listed product = %+v", got)
	}
	if got.CreatedBy != signupResp.UserID {
		t.Errorf("createdBy = %q, want %q", got.CreatedBy, signupResp.UserID)
	}

	// partial update changes only quantity
	w = do(t, r, http.MethodPut, "/products/"+createResp.ID, `{"quantity":10}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/products", "", token)
	decode(t, w, &listResp)
	if listResp[0].Quantity != 10 {
		t.Errorf("quantity = %d, want 10", listResp[0].Quantity)
	}
	if listResp[0].Name != "Widget" || listResp[0].Price != 9.99 {
		t.Errorf("untouched fields changed: %+v", listResp[0])
	}

	// update a missing id
	w = do(t, r, http.MethodPut, "/products/missing", `{"quantity":1}`, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update missing status = %d, want 404", w.Code)
	}

	// delete, then the list no longer contains it
	w = do(t, r, http.MethodDelete, "/products/"+createResp.ID, "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = do(t, r, http.MethodDelete, "/products/"+createResp.ID, "", token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
	w = do(t, r, http.MethodGet, "/products", "", token)
	var after []json.RawMessage
	decode(t, w, &after)
	if len(after) != 0 {
		t.Errorf("list after delete has %d items, want 0", len(after))
	}
}
