package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/notes/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/notes/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/notes/internal/core/services"
)

const testPassword = "abcdef12"

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	userRepo := repo.NewUserRepository(db)
	noteRepo := repo.NewNoteRepository(db)

	tokenSvc := services.NewTokenService([]byte("test-secret"))
	authSvc := services.NewAuthService(userRepo, tokenSvc)
	userSvc := services.NewUserService(userRepo)
	noteSvc := services.NewNoteService(noteRepo)

	authHandler := handler.NewAuthHandler(authSvc, tokenSvc)
	noteHandler := handler.NewNoteHandler(noteSvc)
	router := handler.NewHandler(authHandler, noteHandler, tokenSvc, userSvc)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// do sends a JSON request with an optional bearer token and returns the
// response. Callers own the response body.
func (app *TestApp) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

// registerUser creates a user through the API with a unique email and returns
// its id and credentials.
func (app *TestApp) registerUser(t *testing.T) (int64, string) {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.New())
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, testPassword)

	resp := app.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, resp, &created)
	return created.ID, email
}

// login exchanges credentials for an access and a refresh token.
func (app *TestApp) login(t *testing.T, email string) (string, string) {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, testPassword)
	resp := app.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeBody(t, resp, &tokens)
	return tokens.AccessToken, tokens.RefreshToken
}
