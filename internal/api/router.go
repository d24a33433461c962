package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pillbox-tracker/records-api/docs"
	"github.com/pillbox-tracker/records-api/internal/api/handler"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Doctors   ports.DoctorService
	Patients  ports.PatientService
	Pillboxes ports.PillboxService

	// PillboxBatchMax bounds how_many on bulk pillbox creation.
	PillboxBatchMax int
	// Probes are checked by the readiness endpoint.
	Probes []handler.Probe

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// HTTP metrics live in a per-router registry; /metrics serves it together
	// with the default registry that holds the record counters.
	httpMetrics := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: httpMetrics,
	}))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, httpMetrics},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Probes...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/", handler.Root)

	// --- Doctors ---
	doctors := handler.NewDoctorHandler(deps.Doctors)
	dg := e.Group("/doctors")
	dg.POST("/create", doctors.Create)
	dg.GET("/read/all", doctors.List)
	dg.GET("/read/:id", doctors.Get)
	dg.DELETE("/delete/:id", doctors.Delete)
	dg.PUT("/updated/:id", doctors.Update)

	// --- Patients ---
	patients := handler.NewPatientHandler(deps.Patients)
	pg := e.Group("/patients")
	pg.POST("/create", patients.Create)
	pg.GET("/read/all", patients.List)
	pg.GET("/read/:id", patients.Get)
	pg.DELETE("/delete/:id", patients.Delete)
	pg.PUT("/updated/:id", patients.Update)

	// --- Pillboxes ---
	pillboxes := handler.NewPillboxHandler(deps.Pillboxes, deps.PillboxBatchMax)
	bg := e.Group("/pillboxes")
	bg.POST("/create/:how_many", pillboxes.Create)
	bg.GET("/read/all", pillboxes.List)
	bg.GET("/read/:id", pillboxes.Get)
	bg.DELETE("/delete/:id", pillboxes.Delete)
	bg.PUT("/updated/:id", pillboxes.Update)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
