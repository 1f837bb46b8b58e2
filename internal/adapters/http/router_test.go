package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	adapthttp "github.com/jsamuelsen11/todo-api/internal/adapters/http"
	"github.com/jsamuelsen11/todo-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// routerTodoService implements ports.TodoService with canned responses.
type routerTodoService struct {
	todos []domain.Todo
}

func (s *routerTodoService) ListTodos(context.Context) ([]domain.Todo, error) {
	return s.todos, nil
}

func (s *routerTodoService) CreateTodo(_ context.Context, td *domain.Todo) (*domain.Todo, error) {
	created := *td
	created.ID = 1
	return &created, nil
}

func (s *routerTodoService) SetTodoCompleted(context.Context, int64, bool) error {
	return nil
}

func (s *routerTodoService) DeleteTodo(context.Context, int64) error {
	return nil
}

// routerMetadataService implements ports.MetadataService with placeholders.
type routerMetadataService struct{}

func (routerMetadataService) InstanceMetadata(context.Context) domain.InstanceMetadata {
	return domain.UnavailableInstanceMetadata()
}

// routerHealthRegistry implements ports.HealthRegistry with no checkers.
type routerHealthRegistry struct{}

func (routerHealthRegistry) Register(ports.HealthChecker) {}

func (routerHealthRegistry) CheckAll(context.Context) map[string]error {
	return map[string]error{}
}

func newTestRouter(middlewares ...func(http.Handler) http.Handler) http.Handler {
	th := handlers.NewTodoHandler(&routerTodoService{})
	mh := handlers.NewMetadataHandler(routerMetadataService{})
	hh := handlers.NewHealthHandler(routerHealthRegistry{})

	return adapthttp.NewRouter(th, mh, hh, middlewares...)
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/dbactive"},
		{http.MethodGet, "/api/todos"},
		{http.MethodPost, "/api/todos"},
		{http.MethodPut, "/api/todos/{id}"},
		{http.MethodDelete, "/api/todos/{id}"},
		{http.MethodGet, "/api/metadata"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := newTestRouter(testMW)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListTodos(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty array", body)
	}
}

func TestRouter_IntegrationUpdateByPath(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/todos/7", strings.NewReader(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/todos", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
