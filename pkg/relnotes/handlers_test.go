package relnotes_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksend/quicksend/pkg/errx"
	"github.com/quicksend/quicksend/pkg/relnotes"
)

func newTestApp(model *mockModel) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *errx.Error
			if errx.As(err, &e) {
				return c.Status(e.HTTPStatus).JSON(fiber.Map{"error": e.Message, "code": e.Code})
			}
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	svc := relnotes.NewService(model, openAIConfig(), "")
	relnotes.NewHandlers(svc).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestHandleGenerate_Success(t *testing.T) {
	model := &mockModel{content: `{"notes": [{"platform": "all", "content": "Faster sync"}]}`}
	app := newTestApp(model)

	status, body := postJSON(t, app, "/api/generate-notes", `{"rawNotes": "- sync speedups"}`)

	assert.Equal(t, 200, status)

	notes, ok := body["notes"].([]interface{})
	require.True(t, ok)
	require.Len(t, notes, 1)

	note := notes[0].(map[string]interface{})
	assert.Equal(t, "all", note["platform"])
	assert.Equal(t, "📍", note["emoji"])
	assert.Equal(t, "All Platforms", note["label"])
	assert.Equal(t, "Faster sync", note["content"])

	html, ok := body["html"].(string)
	require.True(t, ok)
	assert.Contains(t, html, "Faster sync")
}

func TestHandleGenerate_MissingRawNotes(t *testing.T) {
	app := newTestApp(&mockModel{content: `{"notes": []}`})

	status, body := postJSON(t, app, "/api/generate-notes", `{"rawNotes": "  "}`)

	assert.Equal(t, 400, status)
	assert.Equal(t, "NOTES_MISSING_RAW_NOTES", body["code"])
}

func TestHandleGenerate_MalformedJSON(t *testing.T) {
	app := newTestApp(&mockModel{content: `{"notes": []}`})

	status, body := postJSON(t, app, "/api/generate-notes", `{"rawNotes":`)

	assert.Equal(t, 400, status)
	assert.Equal(t, "NOTES_INVALID_BODY", body["code"])
}

func TestHandleGenerate_WrongMethod(t *testing.T) {
	model := &mockModel{content: `{"notes": []}`}
	app := newTestApp(model)

	for _, method := range []string{"GET", "PUT", "DELETE"} {
		resp, err := app.Test(httptest.NewRequest(method, "/api/generate-notes", nil))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode, "method %s", method)
	}
	assert.Zero(t, model.calls)
}

func TestHandleGenerate_ExtractionFailure(t *testing.T) {
	model := &mockModel{err: assert.AnError}
	app := newTestApp(model)

	status, body := postJSON(t, app, "/api/generate-notes", `{"rawNotes": "changes"}`)

	assert.Equal(t, 502, status)
	assert.Equal(t, "NOTES_EXTRACTION_FAILED", body["code"])
}
