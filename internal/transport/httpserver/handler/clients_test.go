package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	clientsdomain "law-office-go/internal/domain/clients"
	"law-office-go/pkg/logger"
)

type fakeClientRepo struct {
	clients map[uint]*clientsdomain.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uint]*clientsdomain.Client), nextID: 1}
}

func (r *fakeClientRepo) Transaction(ctx context.Context, fn func(clientsdomain.Repository) error) error {
	return fn(r)
}

func (r *fakeClientRepo) List(ctx context.Context, filter clientsdomain.ListFilter) ([]clientsdomain.Client, int64, error) {
	matched := make([]clientsdomain.Client, 0)
	for _, client := range r.clients {
		if filter.Search != "" && !strings.Contains(strings.ToLower(client.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *client)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return []clientsdomain.Client{}, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id uint) (*clientsdomain.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, clientsdomain.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientRepo) Create(ctx context.Context, client *clientsdomain.Client) error {
	client.ID = r.nextID
	r.nextID++
	stored := *client
	r.clients[client.ID] = &stored
	return nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *clientsdomain.Client) (bool, error) {
	if _, ok := r.clients[client.ID]; !ok {
		return false, nil
	}
	stored := *client
	r.clients[client.ID] = &stored
	return true, nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

func (r *fakeClientRepo) CountByCPF(ctx context.Context, cpf string, excludeID uint) (int64, error) {
	var count int64
	for _, client := range r.clients {
		if client.CPF == cpf && client.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (r *fakeClientRepo) CountProcesses(ctx context.Context, clientID uint) (int64, error) {
	return 0, nil
}

func newClientsRouter(repo *fakeClientRepo) http.Handler {
	log := logger.New(io.Discard, slog.LevelError, "text")
	handlers := New(Config{
		Clients: clientsdomain.NewService(repo, nil, log),
		Log:     log,
	})

	r := chi.NewRouter()
	r.Get("/api/clients", handlers.ListClients)
	r.Post("/api/clients", handlers.CreateClient)
	r.Get("/api/clients/{id}", handlers.GetClient)
	r.Delete("/api/clients/{id}", handlers.DeleteClient)
	return r
}

type clientListBody struct {
	Clients    []clientsdomain.Client `json:"clients"`
	Pagination pagination             `json:"pagination"`
}

func TestListClientsPagination(t *testing.T) {
	repo := newFakeClientRepo()
	for i := 1; i <= 5; i++ {
		repo.clients[uint(i)] = &clientsdomain.Client{ID: uint(i), Name: fmt.Sprintf("Client %d", i)}
	}
	repo.nextID = 6

	router := newClientsRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/clients?page=2&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body clientListBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(body.Clients))
	}
	if body.Clients[0].ID != 3 || body.Clients[1].ID != 4 {
		t.Fatalf("expected clients 3 and 4, got %v", body.Clients)
	}
	if body.Pagination.Page != 2 || body.Pagination.Limit != 2 || body.Pagination.Total != 5 || body.Pagination.Pages != 3 {
		t.Fatalf("unexpected pagination %+v", body.Pagination)
	}
}

func TestListClientsSearch(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients[1] = &clientsdomain.Client{ID: 1, Name: "Maria Silva"}
	repo.clients[2] = &clientsdomain.Client{ID: 2, Name: "João Souza"}
	repo.nextID = 3

	router := newClientsRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/clients?search=maria", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body clientListBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Clients) != 1 || body.Clients[0].Name != "Maria Silva" {
		t.Fatalf("expected only Maria, got %v", body.Clients)
	}
	if body.Pagination.Total != 1 {
		t.Fatalf("expected total 1, got %d", body.Pagination.Total)
	}
}

func TestListClientsInvalidPage(t *testing.T) {
	router := newClientsRouter(newFakeClientRepo())
	req := httptest.NewRequest(http.MethodGet, "/api/clients?page=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateClientConflictEnvelope(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients[1] = &clientsdomain.Client{ID: 1, Name: "Existing", CPF: "12345678901"}
	repo.nextID = 2

	router := newClientsRouter(repo)
	payload := `{"name":"New Client","cpf":"12345678901"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Error.Code != "conflict" {
		t.Fatalf("expected conflict code, got %q", envelope.Error.Code)
	}
}

func TestGetClientNotFound(t *testing.T) {
	router := newClientsRouter(newFakeClientRepo())
	req := httptest.NewRequest(http.MethodGet, "/api/clients/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
