package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/db"
)

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

const (
	testSecretKey      = "test-secret-key"
	testRegisterSecret = "test-register-secret"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "stride-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, testSecretKey, testRegisterSecret)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, target string, token string, payload any) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", token)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d", request.Method, request.URL.Path, wantStatus, response.StatusCode)
	}
	if response.StatusCode == http.StatusNoContent {
		return nil
	}

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode %s %s response: %v", request.Method, request.URL.Path, err)
	}
	return decoded
}

func doJSONList(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) []map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d", request.Method, request.URL.Path, wantStatus, response.StatusCode)
	}

	decoded := make([]map[string]any, 0)
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode %s %s response: %v", request.Method, request.URL.Path, err)
	}
	return decoded
}

func registerTestUser(t *testing.T, app *fiber.App, name string, email string, password string) {
	t.Helper()

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/users/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
		"secret":   testRegisterSecret,
	}), http.StatusCreated)
}

func loginTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	payload := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    email,
		"password": password,
	}), http.StatusOK)

	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatal("login response is missing the token")
	}
	return token
}

func createTestActivity(t *testing.T, app *fiber.App, token string, name string) uint {
	t.Helper()

	payload := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/activities", token, fiber.Map{
		"name":   name,
		"points": 1,
		"unit":   "reps",
	}), http.StatusCreated)

	id, ok := payload["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("activity response is missing an id: %v", payload)
	}
	return uint(id)
}
