package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader cabecera usada para correlacionar peticiones.
const RequestIDHeader = "X-Request-ID"

const requestIDLocal = "request_id"

// RequestLogger middleware de Fiber: asigna un request id (o respeta el recibido),
// lo devuelve en la respuesta y registra método, ruta, status y latencia.
func RequestLogger(l *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(requestIDLocal, reqID)
		c.Set(RequestIDHeader, reqID)

		chainErr := c.Next()
		if chainErr != nil {
			// Deja que el ErrorHandler escriba la respuesta antes de leer el status.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := l.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = l.Error()
		case status >= fiber.StatusBadRequest:
			evt = l.Warn()
		}
		evt.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}

// RequestID devuelve el request id asignado por RequestLogger ("" si no hay).
func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(requestIDLocal).(string); ok {
		return v
	}
	return ""
}
