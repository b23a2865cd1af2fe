package handler

import (
	"context"      // context with cancellation for DB calls
	"database/sql" // sql.ErrNoRows distinguishes absence from infrastructure failure
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities
	"time"         // timeouts for DB calls and event timestamps

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/auth-service/internal/cache"      // redis profile cache
	"github.com/iliyamo/auth-service/internal/config"     // app configuration
	"github.com/iliyamo/auth-service/internal/middleware" // authenticated identity helper
	"github.com/iliyamo/auth-service/internal/queue"      // auth event payloads
	"github.com/iliyamo/auth-service/internal/repository" // user directory
	queue_publisher "github.com/iliyamo/auth-service/internal/service"
	"github.com/iliyamo/auth-service/internal/utils" // validators, hashing, token issuing
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users repository.UserStore
	Cache *cache.UserCache
}

func NewAuthHandler(cfg config.Config, u repository.UserStore, uc *cache.UserCache) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Cache: uc}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type forgotReq struct {
	Email string `json:"email"`
}
type resetReq struct {
	Password string `json:"password"`
}

type statusResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
type loginResp struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}
type forgotResp struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
type userResp struct {
	Username string `json:"username"`
}

// fail writes the standard failure body.  Validation failures carry a
// field-specific message; infrastructure failures carry a generic one and
// the underlying error stays on the server side.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "message": msg})
}

// Register: validate name/email/password, insert the user and confirm.
// Checks run in a fixed order and the first failure wins.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "All fields are required")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "All fields are required")
	}
	if !utils.ValidUsername(req.Name) {
		return fail(c, http.StatusBadRequest, "Name must only contain alphabets and spaces")
	}
	if !utils.ValidEmail(req.Email) {
		return fail(c, http.StatusBadRequest, "Invalid email format")
	}
	if !utils.ValidPassword(req.Password) {
		return fail(c, http.StatusBadRequest, "Password must be at least 6 characters")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.Users.GetByEmail(ctx, email)
	if err == nil {
		return fail(c, http.StatusBadRequest, "User already exists")
	}
	if err != sql.ErrNoRows {
		return fail(c, http.StatusInternalServerError, "Error during register")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error during register")
	}

	uid, err := h.Users.Create(ctx, req.Name, email, hash)
	if err != nil {
		// The unique index closes the check-then-insert race: a concurrent
		// registration with the same email surfaces here.
		if err == repository.ErrEmailExists {
			return fail(c, http.StatusBadRequest, "User already exists")
		}
		return fail(c, http.StatusInternalServerError, "Error during register")
	}

	h.publish(queue.AuthEvent{
		Type:       queue.EventUserRegistered,
		UserID:     uid,
		Name:       req.Name,
		Email:      email,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, statusResp{Success: true, Message: "Registered Successfully"})
}

// Login: verify credentials and return a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "Email and password are required")
	}
	if !utils.ValidEmail(req.Email) {
		return fail(c, http.StatusBadRequest, "Invalid email format")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return fail(c, http.StatusBadRequest, "User not found")
		}
		return fail(c, http.StatusInternalServerError, "Error during login")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusBadRequest, "Invalid password")
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.SessionTTLHours)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error during login")
	}

	return c.JSON(http.StatusOK, loginResp{Token: tok.Token, Message: "Successfully logged in", Success: true})
}

// ForgotPassword: issue a short-lived reset token for a known email.  Only
// the email's shape is validated; a missing field is an empty string after
// binding and fails the same check.  The token is returned in the response
// body; out-of-band delivery would hook into the auth.events queue instead.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid email format")
	}
	if !utils.ValidEmail(req.Email) {
		return fail(c, http.StatusBadRequest, "Invalid email format")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return fail(c, http.StatusBadRequest, "Email not found")
		}
		return fail(c, http.StatusInternalServerError, "Server error")
	}

	tok, err := utils.NewResetToken(h.Cfg.JWTSecret, u.ID, h.Cfg.ResetTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, forgotResp{Success: true, Token: tok.Token})
}

// ResetPassword: change the password of the identity carried by the reset
// token.  ResetAuth middleware verified the token and stored the user ID in
// the context before this handler runs.  A no-op reset (same password) is
// rejected so the flow always ends with a fresh hash.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Password must be at least 6 characters")
	}
	if !utils.ValidPassword(req.Password) {
		return fail(c, http.StatusBadRequest, "Password must be at least 6 characters")
	}

	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return fail(c, http.StatusBadRequest, "User not found")
		}
		return fail(c, http.StatusInternalServerError, "Error updating password")
	}

	if utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusBadRequest, "New password must be different from the old one")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error updating password")
	}
	if err := h.Users.UpdatePassword(ctx, uid, hash); err != nil {
		return fail(c, http.StatusInternalServerError, "Error updating password")
	}

	h.publish(queue.AuthEvent{
		Type:       queue.EventPasswordChanged,
		UserID:     u.ID,
		Email:      u.Email,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, statusResp{Success: true, Message: "Password updated successfully"})
}

// GetUser: return the display name of the authenticated user.  The redis
// cache is consulted first; on a miss the database is read and the cache
// refreshed.  Only the name is exposed, never email or hash.
func (h *AuthHandler) GetUser(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if name, hit := h.Cache.GetName(ctx, uid); hit {
		return c.JSON(http.StatusOK, userResp{Username: name})
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return fail(c, http.StatusInternalServerError, "Error fetching user")
	}
	h.Cache.SetName(ctx, uid, u.Name)

	return c.JSON(http.StatusOK, userResp{Username: u.Name})
}

// publish sends an auth event in the background.  Publishing is best effort:
// the broker being down never fails the request, the publisher already logs
// its own errors.
func (h *AuthHandler) publish(ev queue.AuthEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishAuthEvent(ctx, ev)
	}()
}
