package main

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksend/quicksend/pkg/config"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080", CORSOrigins: "*"},
		Mailer: config.MailerConfig{Provider: "console"},
		OpenAI: config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", Temperature: 0.3},
	}
	return newApp(NewContainer(cfg))
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestWrongMethodAnswers405(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/send"},
		{"PUT", "/api/send"},
		{"GET", "/api/generate-notes"},
		{"DELETE", "/api/generate-notes"},
		{"POST", "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

			body := decodeBody(t, resp.Body)
			assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"])
			assert.Equal(t, tt.path, body["path"])
		})
	}
}

func TestPreflightAnsweredWithNoBody(t *testing.T) {
	app := testApp(t)

	for _, path := range []string{"/api/send", "/api/generate-notes"} {
		req := httptest.NewRequest("OPTIONS", path, nil)
		req.Header.Set("Origin", "https://tools.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, raw)
	}
}

func TestUnknownRouteAnswers404(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "/nope", body["path"])
}

func TestHealthEndpoint(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "console", body["mailer_provider"])
}
