package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// requestRecorder lo implementa *metrics.Metrics.
type requestRecorder interface {
	RecordRequest(method, endpoint string, statusCode int, duration time.Duration)
}

// MetricsMiddleware registra método, ruta (el patrón, no la URL: /api/charts/:name) y
// status de cada petición.
func MetricsMiddleware(rec requestRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		rec.RecordRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
