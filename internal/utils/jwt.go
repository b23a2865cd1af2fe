package utils // package utils provides helper functions for token creation and verification

import (
    "errors"  // sentinel error for failed verification
    "strconv" // parsing string-encoded numeric claims
    "time"    // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Claim keys used by the two token variants.  A session token carries the
// user ID in the standard subject claim; a reset token carries it under a
// distinct key so one variant can never be presented where the other is
// expected.
const (
    ClaimSubject  = "sub"
    ClaimResetUID = "reset_uid"
)

// ErrInvalidToken is returned when a token fails signature, structure or
// expiry checks.  The middleware converts it into a 401 response.
var ErrInvalidToken = errors.New("invalid token")

// SignedToken represents a signed JWT along with its expiry.  The Token
// field contains the serialized JWT string.  Exp stores the expiration
// timestamp as a UTC time.Time.
type SignedToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT authorizing general
// authenticated requests.  The JWT includes the subject (sub), expiration
// (exp) and issued at (iat) claims.  Session tokens are encoded in the
// Authorization header when calling protected endpoints.
func NewSessionToken(secret string, userID uint64, ttlHours int) (SignedToken, error) {
    return issue(secret, ClaimSubject, userID, time.Duration(ttlHours)*time.Hour)
}

// NewResetToken builds and signs a short-lived HS256 JWT that authorizes
// exactly one operation: changing the account password.  The user ID is
// stored under reset_uid rather than sub, so a reset token presented to a
// session-protected endpoint is rejected.
func NewResetToken(secret string, userID uint64, ttlMin int) (SignedToken, error) {
    return issue(secret, ClaimResetUID, userID, time.Duration(ttlMin)*time.Minute)
}

func issue(secret, idClaim string, userID uint64, ttl time.Duration) (SignedToken, error) {
    exp := time.Now().UTC().Add(ttl)
    claims := jwt.MapClaims{
        idClaim: userID,
        "exp":   exp.Unix(),
        "iat":   time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SignedToken{}, err
    }
    return SignedToken{Token: signed, Exp: exp}, nil
}

// ParseClaims verifies the signature and expiry of a serialized token and
// returns its claims.  Only HMAC signing methods are accepted; a token
// signed with a different algorithm fails verification regardless of its
// payload.  Any failure is reported as ErrInvalidToken.
func ParseClaims(secret, raw string) (jwt.MapClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return nil, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return nil, ErrInvalidToken
    }
    return claims, nil
}

// UserIDClaim extracts a numeric user ID stored under key.  JWT numeric
// values decode as float64; string-encoded numbers are parsed as a
// fallback since some token libraries encode numerics that way.
func UserIDClaim(claims jwt.MapClaims, key string) (uint64, bool) {
    switch v := claims[key].(type) {
    case float64:
        return uint64(v), true
    case string:
        if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
            return parsed, true
        }
    }
    return 0, false
}
