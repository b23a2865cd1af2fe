package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/auth-service/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/auth-service/internal/middleware" // import middleware for JWT authentication
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication‑related routes and applies the
// necessary middleware.  Register, login and forgot-password are open;
// reset-password requires a reset token and getuser a session token.  The
// two protected routes use different middleware because the token variants
// carry the user ID under different claims and must not be interchangeable.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Open endpoints: anyone may register, log in, or start a password reset.
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
	e.POST("/forgot-password", a.ForgotPassword)

	// Reset-password is guarded by ResetAuth: only the short-lived token
	// minted by /forgot-password authorizes a password change.
	reset := e.Group("/reset-password")
	reset.Use(middleware.ResetAuth(jwtSecret))
	reset.POST("", a.ResetPassword)

	// Getuser is guarded by SessionAuth: a regular session token from /login.
	user := e.Group("/getuser")
	user.Use(middleware.SessionAuth(jwtSecret))
	user.GET("", a.GetUser)
}
