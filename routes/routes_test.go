package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mailscout/config"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	if err := config.LoadConfig(); err != nil {
		t.Fatalf("load config: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	SetupRoutes(app, logger)
	return app
}

func TestHealthCheck(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Status    string `json:"status"`
		Version   string `json:"version"`
		Timestamp string `json:"timestamp"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	if body.Status != "healthy" {
		t.Errorf("status = %q, want healthy", body.Status)
	}
	if body.Version != config.Version {
		t.Errorf("version = %q, want %q", body.Version, config.Version)
	}
	if body.Timestamp == "" {
		t.Error("timestamp missing")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestNotFoundHandler(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
