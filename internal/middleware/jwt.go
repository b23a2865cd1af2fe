package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/auth-service/internal/utils" // token parsing helpers
)

// SessionAuth returns an Echo middleware that validates a Bearer session
// token and injects the token's subject into the request context.  The
// provided secret must match the one used when issuing tokens.  This
// middleware wraps protected routes so handlers can read the authenticated
// user via `c.Get("user_id")`.
func SessionAuth(secret string) echo.MiddlewareFunc {
    return requireClaim(secret, utils.ClaimSubject)
}

// ResetAuth validates a Bearer password-reset token.  It accepts only
// tokens carrying the reset claim, so a regular session token cannot be
// used to change a password.
func ResetAuth(secret string) echo.MiddlewareFunc {
    return requireClaim(secret, utils.ClaimResetUID)
}

// requireClaim builds the actual middleware.  The token must parse and
// verify against the secret, and must carry a numeric user ID under the
// given claim key.  On success the ID is stored in the context as
// "user_id"; on any failure the request is rejected with 401 before the
// handler runs.
func requireClaim(secret, claimKey string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header starts with
            // "Bearer " followed by the JWT.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Verify signature and expiry.  ParseClaims enforces the HMAC
            // signing method, so tokens signed with other algorithms are
            // rejected here.
            claims, err := utils.ParseClaims(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // The token must identify a user under the expected claim.  A
            // reset token hitting a session route (or vice versa) fails
            // this check even though its signature is valid.
            uid, ok := utils.UserIDClaim(claims, claimKey)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            // Store the user ID in the context for handlers downstream.
            c.Set("user_id", uid)
            return next(c)
        }
    }
}
