package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/bloodbank-api/internal/handler/health"
	"github.com/jwalitptl/bloodbank-api/internal/middleware"
	"github.com/jwalitptl/bloodbank-api/pkg/metrics"
)

// Handler registers a group of related routes under /api.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type RouterConfig struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	healthH  *health.Handler
	handlers []Handler
}

// NewRouter assembles the engine with the shared middleware chain. Handlers
// are registered in the order given.
func NewRouter(healthH *health.Handler, m *metrics.Metrics, config RouterConfig, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		middleware.Metrics(m),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return &Router{
		engine:   engine,
		healthH:  healthH,
		handlers: handlers,
	}
}

func (r *Router) Setup() {
	r.engine.GET("/", r.healthH.Root)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api")
	r.healthH.RegisterRoutes(api)
	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
