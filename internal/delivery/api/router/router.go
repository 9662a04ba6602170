// Package router wires the voting API routes.
package router

import (
	"votegate/internal/delivery/api/middleware"
	"votegate/internal/delivery/api/router/handler"
	"votegate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	FaceHandler         *handler.FaceHandler
	VoteHandler         *handler.VoteHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
	faceHandler *handler.FaceHandler
	voteHandler *handler.VoteHandler
	auth        *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
		faceHandler: params.FaceHandler,
		voteHandler: params.VoteHandler,
		auth:        params.AuthMiddleware,
		rateLimit:   params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Registration and step 1/2 of the login flow
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimit.Limit)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP, r.rateLimit.Limit)
		authGroup.POST("/resend-otp", r.authHandler.ResendOTP, r.rateLimit.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimit.Limit)
		authGroup.GET("/status", r.authHandler.Status, r.auth.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.auth.Authenticate)
	}

	// Enrollment is keyed by voter id; recognition is step 3 of a session
	faceGroup := e.Group("/face")
	{
		faceGroup.POST("/detect", r.faceHandler.Detect)
		faceGroup.POST("/capture", r.faceHandler.Capture, r.rateLimit.Limit)
		faceGroup.POST("/train", r.faceHandler.Train)
		faceGroup.GET("/status", r.faceHandler.Status)
		faceGroup.POST("/recognize", r.faceHandler.Recognize,
			r.rateLimit.Limit,
			r.auth.Authenticate,
			r.auth.RequireState(entity.SessionStateOTPVerified),
		)
	}

	// Eligibility and submit need all three factors
	ballot := []echo.MiddlewareFunc{r.auth.Authenticate, r.auth.RequireState(entity.SessionStateFaceVerified)}

	voteGroup := e.Group("/vote")
	{
		voteGroup.GET("/candidates", r.voteHandler.Candidates)
		voteGroup.GET("/results", r.voteHandler.Results)
		voteGroup.GET("/stats", r.voteHandler.Stats)
		voteGroup.GET("/eligibility", r.voteHandler.Eligibility, ballot...)
		voteGroup.POST("/submit", r.voteHandler.Submit, ballot...)
	}
}
