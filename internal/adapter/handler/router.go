package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prepwise-app/prepwise-api/internal/infrastructure/http/middleware"
	"github.com/prepwise-app/prepwise-api/pkg/config"
	"github.com/prepwise-app/prepwise-api/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	jwtManager       *jwt.Manager
	authHandler      *Auth
	interviewHandler *Interview
	feedbackHandler  *Feedback
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, jwtManager *jwt.Manager, authHandler *Auth, interviewHandler *Interview, feedbackHandler *Feedback) *Router {
	return &Router{
		cfg:              cfg,
		jwtManager:       jwtManager,
		authHandler:      authHandler,
		interviewHandler: interviewHandler,
		feedbackHandler:  feedbackHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupInterviewRoutes(v1)
	rt.setupFeedbackRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/sign-up", rt.authHandler.SignUp)
	authGroup.POST("/sign-in", rt.authHandler.SignIn)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, middleware.EchoAuth(rt.jwtManager))
}

// setupInterviewRoutes configures interview routes
func (rt *Router) setupInterviewRoutes(g *echo.Group) {
	interviewGroup := g.Group("/interviews", middleware.EchoAuth(rt.jwtManager))

	interviewGroup.POST("", rt.interviewHandler.Create)
	interviewGroup.GET("", rt.interviewHandler.ListMine)
	interviewGroup.GET("/latest", rt.interviewHandler.ListLatest)
	interviewGroup.GET("/:id", rt.interviewHandler.GetByID)
	interviewGroup.POST("/:id/cover", rt.interviewHandler.UploadCover)
	interviewGroup.GET("/:id/feedback", rt.feedbackHandler.GetByInterview)
}

// setupFeedbackRoutes configures feedback routes
func (rt *Router) setupFeedbackRoutes(g *echo.Group) {
	feedbackGroup := g.Group("/feedback", middleware.EchoAuth(rt.jwtManager))

	feedbackGroup.POST("", rt.feedbackHandler.Create)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
