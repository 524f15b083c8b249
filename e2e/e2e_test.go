//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"law-office-go/internal/config"
	"law-office-go/internal/db"
	"law-office-go/internal/domain/appointments"
	"law-office-go/internal/domain/auth"
	"law-office-go/internal/domain/clients"
	"law-office-go/internal/domain/gallery"
	"law-office-go/internal/domain/hearings"
	"law-office-go/internal/domain/payments"
	"law-office-go/internal/domain/processes"
	"law-office-go/internal/domain/stats"
	appointmentsrepo "law-office-go/internal/repository/postgres/appointments"
	authrepo "law-office-go/internal/repository/postgres/auth"
	clientsrepo "law-office-go/internal/repository/postgres/clients"
	hearingsrepo "law-office-go/internal/repository/postgres/hearings"
	paymentsrepo "law-office-go/internal/repository/postgres/payments"
	processesrepo "law-office-go/internal/repository/postgres/processes"
	statsrepo "law-office-go/internal/repository/postgres/stats"
	"law-office-go/internal/storage"
	"law-office-go/internal/transport/httpserver"
	"law-office-go/internal/transport/httpserver/handler"
	"law-office-go/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	token  string
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.New(io.Discard, slog.LevelError, "text")

	cfg := config.Config{
		DB:   config.DBConfig{DSN: dsn},
		Auth: config.AuthConfig{JWTSecret: "e2e-secret", TokenExpiry: time.Hour},
		Gallery: config.GalleryConfig{
			Dir:          t.TempDir(),
			MaxUploadMiB: 5,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}
	if err := db.SeedAdmin(dbConn, log); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	store, err := storage.NewDiskStore(cfg.Gallery.Dir)
	if err != nil {
		t.Fatalf("disk store: %v", err)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	authService := auth.NewService(authrepo.NewPostgres(dbConn), tokens)
	appointmentsService := appointments.NewService(appointmentsrepo.NewPostgres(dbConn))
	clientsService := clients.NewService(clientsrepo.NewPostgres(dbConn), appointmentsService, log)
	processesService := processes.NewService(processesrepo.NewPostgres(dbConn))
	hearingsService := hearings.NewService(hearingsrepo.NewPostgres(dbConn))
	paymentsService := payments.NewService(paymentsrepo.NewPostgres(dbConn))
	statsService := stats.NewService(statsrepo.NewPostgres(dbConn), stats.NewNoopCache(), 0)
	galleryService := gallery.NewService(store)

	handlers := handler.New(handler.Config{
		Auth:         authService,
		Clients:      clientsService,
		Processes:    processesService,
		Hearings:     hearingsService,
		Appointments: appointmentsService,
		Payments:     paymentsService,
		Stats:        statsService,
		Gallery:      galleryService,
		Log:          log,
	})

	router := httpserver.NewRouter(cfg, handlers, authService, store.Dir(), log)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	t.Cleanup(func() {
		if sqlDB, err := dbConn.DB(); err == nil {
			sqlDB.Close()
		}
	})

	env := &testEnv{server: server, db: dbConn}
	env.token = env.login(t, "admin", "admin")
	return env
}

func cleanDB(dbConn *gorm.DB) error {
	tables := []string{"payments", "hearings", "processes", "inss_appointments", "clients", "users"}
	for _, table := range tables {
		if err := dbConn.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	status, body := e.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", status, body)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("login: decode: %v", err)
	}
	return payload.Token
}

func (e *testEnv) request(t *testing.T, method, path, token string, payload interface{}) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, e.server.URL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, data
}

func TestAuthGate(t *testing.T) {
	env := setupE2E(t)

	status, _ := env.request(t, http.MethodGet, "/api/clients", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	status, _ = env.request(t, http.MethodGet, "/api/clients", "garbage-token", nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 with bad token, got %d", status)
	}

	status, _ = env.request(t, http.MethodGet, "/api/clients", env.token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", status)
	}
}

func TestClientLifecycleWithProtocol(t *testing.T) {
	env := setupE2E(t)

	status, body := env.request(t, http.MethodPost, "/api/clients", env.token, map[string]interface{}{
		"name":            "Maria Silva",
		"cpf":             "12345678901",
		"protocol_number": "PROTO-42",
	})
	if status != http.StatusCreated {
		t.Fatalf("create client: expected 201, got %d: %s", status, body)
	}

	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode client: %v", err)
	}

	// The protocol number must have produced exactly one INSS appointment.
	status, body = env.request(t, http.MethodGet, "/api/agendamentos-inss", env.token, nil)
	if status != http.StatusOK {
		t.Fatalf("list appointments: expected 200, got %d: %s", status, body)
	}
	var listing struct {
		Appointments []struct {
			ClientID        *uint  `json:"client_id"`
			AppointmentType string `json:"appointment_type"`
			Status          string `json:"status"`
		} `json:"appointments"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		t.Fatalf("decode appointments: %v", err)
	}
	if len(listing.Appointments) != 1 {
		t.Fatalf("expected one auto appointment, got %d", len(listing.Appointments))
	}
	if got := listing.Appointments[0]; got.ClientID == nil || *got.ClientID != created.ID || got.AppointmentType != "INSS" || got.Status != "scheduled" {
		t.Fatalf("unexpected auto appointment %+v", got)
	}

	// Re-saving the same protocol must not add a second appointment.
	status, body = env.request(t, http.MethodPut, fmt.Sprintf("/api/clients/%d", created.ID), env.token, map[string]interface{}{
		"name":            "Maria Silva",
		"cpf":             "12345678901",
		"protocol_number": "PROTO-42",
	})
	if status != http.StatusOK {
		t.Fatalf("update client: expected 200, got %d: %s", status, body)
	}
	status, body = env.request(t, http.MethodGet, "/api/agendamentos-inss", env.token, nil)
	if err := json.Unmarshal(body, &listing); err != nil {
		t.Fatalf("decode appointments: %v", err)
	}
	if len(listing.Appointments) != 1 {
		t.Fatalf("expected still one appointment, got %d", len(listing.Appointments))
	}

	// Duplicate CPF is rejected.
	status, _ = env.request(t, http.MethodPost, "/api/clients", env.token, map[string]interface{}{
		"name": "Impostor",
		"cpf":  "12345678901",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate cpf: expected 400, got %d", status)
	}
}

func TestProcessAndHearingDeleteOrder(t *testing.T) {
	env := setupE2E(t)

	_, body := env.request(t, http.MethodPost, "/api/clients", env.token, map[string]interface{}{"name": "Cliente Teste"})
	var client struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body, &client); err != nil {
		t.Fatalf("decode client: %v", err)
	}

	status, body := env.request(t, http.MethodPost, "/api/processes", env.token, map[string]interface{}{
		"client_id":    client.ID,
		"process_type": "aposentadoria",
	})
	if status != http.StatusCreated {
		t.Fatalf("create process: expected 201, got %d: %s", status, body)
	}
	var process struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body, &process); err != nil {
		t.Fatalf("decode process: %v", err)
	}

	status, body = env.request(t, http.MethodPost, "/api/hearings", env.token, map[string]interface{}{
		"process_id": process.ID,
		"date":       "2026-09-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("create hearing: expected 201, got %d: %s", status, body)
	}
	var hearing struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body, &hearing); err != nil {
		t.Fatalf("decode hearing: %v", err)
	}

	// Client and process deletes are blocked while children exist.
	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/clients/%d", client.ID), env.token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("delete client with process: expected 400, got %d", status)
	}
	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/processes/%d", process.ID), env.token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("delete process with hearing: expected 400, got %d", status)
	}

	// Bottom-up deletion succeeds.
	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/hearings/%d", hearing.ID), env.token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete hearing: expected 200, got %d", status)
	}
	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/processes/%d", process.ID), env.token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete process: expected 200, got %d", status)
	}
	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/clients/%d", client.ID), env.token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete client: expected 200, got %d", status)
	}
}

func TestPaymentsAndDashboard(t *testing.T) {
	env := setupE2E(t)

	_, body := env.request(t, http.MethodPost, "/api/clients", env.token, map[string]interface{}{"name": "Cliente Pagante"})
	var client struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body, &client); err != nil {
		t.Fatalf("decode client: %v", err)
	}

	status, body := env.request(t, http.MethodPost, "/api/payments", env.token, map[string]interface{}{
		"client_id":    client.ID,
		"payment_date": "2026-08-01",
		"amount_cents": 25000,
		"client_name":  "Name From Body Must Be Ignored",
	})
	if status != http.StatusCreated {
		t.Fatalf("create payment: expected 201, got %d: %s", status, body)
	}
	var payment struct {
		ID          uint   `json:"id"`
		ClientName  string `json:"client_name"`
		AmountCents int64  `json:"amount_cents"`
	}
	if err := json.Unmarshal(body, &payment); err != nil {
		t.Fatalf("decode payment: %v", err)
	}
	if payment.ClientName != "Cliente Pagante" {
		t.Fatalf("expected name from clients table, got %q", payment.ClientName)
	}
	if payment.AmountCents != 25000 {
		t.Fatalf("expected amount in cents, got %d", payment.AmountCents)
	}

	// Renaming the client must show through on existing payments.
	status, body = env.request(t, http.MethodPut, fmt.Sprintf("/api/clients/%d", client.ID), env.token, map[string]interface{}{
		"name": "Cliente Renomeado",
	})
	if status != http.StatusOK {
		t.Fatalf("rename client: expected 200, got %d: %s", status, body)
	}
	status, body = env.request(t, http.MethodGet, fmt.Sprintf("/api/payments/%d", payment.ID), env.token, nil)
	if status != http.StatusOK {
		t.Fatalf("get payment: expected 200, got %d: %s", status, body)
	}
	var reread struct {
		ClientName string `json:"client_name"`
	}
	if err := json.Unmarshal(body, &reread); err != nil {
		t.Fatalf("decode payment: %v", err)
	}
	if reread.ClientName != "Cliente Renomeado" {
		t.Fatalf("expected renamed client on payment read, got %q", reread.ClientName)
	}

	status, body = env.request(t, http.MethodGet, "/api/stats/dashboard", env.token, nil)
	if status != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d: %s", status, body)
	}
	var dashboard struct {
		TotalClients int64 `json:"totalClients"`
	}
	if err := json.Unmarshal(body, &dashboard); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dashboard.TotalClients != 1 {
		t.Fatalf("expected one client counted, got %d", dashboard.TotalClients)
	}
}
