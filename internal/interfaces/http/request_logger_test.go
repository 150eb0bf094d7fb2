package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Estacionamientos-api/internal/interfaces/http"
	"github.com/jhoicas/Estacionamientos-api/pkg/logger"
)

func TestRequestLogger_NivelSegunStatus(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.NewWithWriter(&buf, "info")))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/malo", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })

	for _, path := range []string{"/ok", "/malo"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "/ok", first["path"])
	assert.Equal(t, "warn", second["level"])
	assert.EqualValues(t, 400, second["status"])
}
