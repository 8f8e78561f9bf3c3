package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/db"
)

const testSecretKey = "test-secret-key-0123456789abcdef0123"

func newTestApp(t *testing.T, now time.Time) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "vitalis.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	handler, err := NewHandler(database, testSecretKey, time.UTC, false, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	handler.now = func() time.Time { return now }

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, body string, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("decode %s %s body %q: %v", method, path, string(raw), err)
		}
	}
	return response, payload
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body := `{"email":"` + email + `","password":"StrongPass1","display_name":"Test"}`
	response, payload := doJSON(t, app, http.MethodPost, "/api/auth/register", body, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, payload %v", response.StatusCode, payload)
	}
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("register returned no token: %v", payload)
	}
	return token
}

func numberField(t *testing.T, payload map[string]any, key string) float64 {
	t.Helper()

	value, ok := payload[key].(float64)
	if !ok {
		t.Fatalf("expected numeric %q in %v", key, payload)
	}
	return value
}
