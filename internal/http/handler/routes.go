package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"inquiryapi/internal/catalog"
	"inquiryapi/internal/service"
)

// MsgInvalidBody is returned when the submission body is not a JSON object of strings.
const MsgInvalidBody = "Invalid request body."

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.InquiryService) {
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", docsPage)

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/submit-form", SubmitInquiry(svc))
	api.Get("/form-options", FormOptions())
	api.Get("/inquiries", ListInquiries(svc))
	api.Post("/inquiries/export", ExportInquiries(svc))
}

// RegisterMetrics exposes the gatherer in Prometheus text format at /metrics.
func RegisterMetrics(app *fiber.App, g prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}

// HealthCheck reports 200 when the database answers a ping.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// SubmitInquiry handles the program search form.
//
// 200 {"status":"success"} after one row is written, 400 when the body is malformed or a
// field is missing (no database call), 500 with the database diagnostic otherwise.
func SubmitInquiry(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SubmitInput
		if err := c.App().Config().JSONDecoder(c.Body(), &in); err != nil {
			return writeStatus(c, fiber.StatusBadRequest, statusError, MsgInvalidBody)
		}

		if _, err := svc.Submit(c.UserContext(), in); err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return writeStatus(c, fiber.StatusBadRequest, statusError, verr.Error())
			}

			msg := service.MsgInternalFallback
			var perr *service.PersistenceError
			if errors.As(err, &perr) {
				msg = perr.Message()
			}
			zerolog.Ctx(c.UserContext()).Error().
				Err(err).
				Str("sqlstate", sqlState(perr)).
				Msg("database error")
			return writeStatus(c, fiber.StatusInternalServerError, statusError, msg)
		}

		return writeStatus(c, fiber.StatusOK, statusSuccess, service.MsgSubmitted)
	}
}

func sqlState(perr *service.PersistenceError) string {
	if perr == nil {
		return ""
	}
	return perr.SQLState()
}

// FormOptions serves the select options of the program search form.
func FormOptions() fiber.Handler {
	opts := catalog.Options()
	return func(c *fiber.Ctx) error {
		return c.JSON(opts)
	}
}

// ListInquiries returns inquiries newest first with limit & offset.
func ListInquiries(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("list inquiries failed")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ExportInquiries writes a CSV snapshot to object storage and returns its presigned URL.
func ExportInquiries(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrExportUnavailable) {
				return writeError(c, fiber.StatusServiceUnavailable, "EXPORT_UNAVAILABLE", "export storage is not configured")
			}
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("export inquiries failed")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func docsPage(c *fiber.Ctx) error {
	const html = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Inquiry API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
	return c.Type("html").SendString(html)
}
