package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, pterm.LogLevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, pterm.LogLevelWarn, parseLevel("warning"))
	assert.Equal(t, pterm.LogLevelInfo, parseLevel(""))
	assert.Equal(t, pterm.LogLevelInfo, parseLevel("unknown"))
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json"}, &buf)

	log.Debug("hidden")
	log.Info("visible", log.Args("key", "value"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json"}, &buf)

	r := gin.New()
	r.Use(GinLogger(log))
	r.GET("/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?query=ventas", nil))

	out := buf.String()
	assert.Contains(t, out, `"path":"/jobs?query=ventas"`)
	assert.Contains(t, out, `"method":"GET"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("ignored", Nop().Args("k", 1))
	})
}
