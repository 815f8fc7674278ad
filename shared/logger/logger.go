// структурное логирование сервиса на базе pterm
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"
)

// конфиг логгера
type Config struct {
	Level  string // trace | debug | info | warn | error
	Format string // text | json
}

// конфиг логгера из переменных окружения LOG_LEVEL и LOG_FORMAT
func ConfigFromEnv() Config {
	return Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}
}

// создание логгера, вывод в w (nil -> stderr)
func New(cfg Config, w io.Writer) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}

	l := pterm.DefaultLogger.
		WithLevel(parseLevel(cfg.Level)).
		WithWriter(w).
		WithTime(true).
		WithTimeFormat(time.RFC3339)

	if strings.EqualFold(cfg.Format, "json") {
		l = l.WithFormatter(pterm.LogFormatterJSON)
	}

	return l
}

// логгер, который ничего не пишет (для тестов и значений по умолчанию)
func Nop() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}

func parseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// middleware логирования запросов: одна строка на запрос
func GinLogger(log *pterm.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		args := log.Args(
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString("request_id"),
		)

		switch {
		case status >= 500:
			log.Error("request", args)
		case status >= 400:
			log.Warn("request", args)
		default:
			log.Info("request", args)
		}
	}
}
