package middleware

// identity.go defines helpers shared by middleware and handlers.  It provides
// a UserID extraction function that pulls the identifier stored in the Echo
// context by SessionAuth or ResetAuth.

import "github.com/labstack/echo/v4"

// UserID returns the authenticated user's identifier from the context.  The
// second return value is false when no auth middleware ran for this request
// or the stored value has an unexpected type.
func UserID(c echo.Context) (uint64, bool) {
    v := c.Get("user_id")
    if v == nil {
        return 0, false
    }
    uid, ok := v.(uint64)
    return uid, ok
}
