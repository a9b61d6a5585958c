package handler

import (
	"webhook-dispatcher/internal/adapter/http/middleware"
	"webhook-dispatcher/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AdminSvc       ports.WebhookAdminService
	DispatcherSvc  ports.DispatcherService
	TokenSvc       ports.TokenService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	webhookHandler := NewWebhookHandler(deps.AdminSvc, deps.DispatcherSvc)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("", rl("management"), webhookHandler.Create)
		webhooks.GET("", rl("management"), webhookHandler.List)
		webhooks.GET("/:id", rl("management"), webhookHandler.Get)
		webhooks.POST("/:id/test", rl("test_event"), webhookHandler.SendTest)
		webhooks.POST("/:id/activate", rl("management"), webhookHandler.Activate)
		webhooks.POST("/:id/disable", rl("management"), webhookHandler.Disable)
		webhooks.POST("/:id/rotate-secret", rl("management"), webhookHandler.RotateSecret)
		webhooks.GET("/:id/calls", rl("management"), webhookHandler.ListCalls)
	}

	callHandler := NewCallHandler(deps.DispatcherSvc)
	calls := v1.Group("/calls")
	{
		calls.GET("/:id", rl("management"), callHandler.Get)
		calls.POST("/:id/retry", rl("retry"), callHandler.Retry)
	}

	eventHandler := NewEventHandler(deps.DispatcherSvc)
	v1.POST("/events", rl("emit"), eventHandler.Emit)

	return r
}
