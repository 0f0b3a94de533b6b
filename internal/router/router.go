package router

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/citymed/frontdesk-api/internal/config"
	"github.com/citymed/frontdesk-api/internal/handler"
	appointmentHandler "github.com/citymed/frontdesk-api/internal/handler/appointment"
	loginHandler "github.com/citymed/frontdesk-api/internal/handler/login"
	queueHandler "github.com/citymed/frontdesk-api/internal/handler/queue"
	"github.com/citymed/frontdesk-api/internal/middleware"
)

// staticPages maps page routes to the files under the static directory.
var staticPages = map[string]string{
	"/":             "hospital-promo.html",
	"/departments":  "dept.html",
	"/appointments": "appointment.html",
	"/queue":        "app.html",
	"/login":        "login.html",
	"/contact":      "contact.html",
}

type Router struct {
	engine       *gin.Engine
	appointmentH *appointmentHandler.Handler
	queueH       *queueHandler.Handler
	loginH       *loginHandler.Handler
	h            *handler.Handler
	metrics      *routerMetrics
	staticDir    string
}

func NewRouter(
	cfg *config.Config,
	appointmentH *appointmentHandler.Handler,
	queueH *queueHandler.Handler,
	loginH *loginHandler.Handler,
	h *handler.Handler,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	metrics := initRouterMetrics("frontdesk")

	r := &Router{
		engine:       engine,
		appointmentH: appointmentH,
		queueH:       queueH,
		loginH:       loginH,
		h:            h,
		metrics:      metrics,
		staticDir:    cfg.Server.StaticDir,
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
	)

	engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			Burst: cfg.RateLimit.Burst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	r.setupHealthCheck()
	r.setupStaticPages()

	// GET /login serves the page; POST /login and the role-specific login
	// endpoints live on the same paths.
	r.loginH.RegisterRoutes(&r.engine.RouterGroup)

	api := r.engine.Group("/api")
	r.appointmentH.RegisterRoutes(api)
	r.queueH.RegisterRoutes(api)
}

func (r *Router) setupHealthCheck() {
	health := r.engine.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.metrics.registry, promhttp.HandlerOpts{})))
	}
}

func (r *Router) setupStaticPages() {
	for route, page := range staticPages {
		r.engine.GET(route, r.servePage(page))
	}
	r.engine.Static("/public", r.staticDir)
}

func (r *Router) servePage(page string) gin.HandlerFunc {
	file := filepath.Join(r.staticDir, page)
	return func(c *gin.Context) {
		c.File(file)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

type routerMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	m.registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
