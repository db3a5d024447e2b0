package auth

import (
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// SessionTokenVar is the variable holding the bearer token in the
// session file and the environment.
const SessionTokenVar = "LEXCAL_SESSION_TOKEN"

// TokenSource supplies the bearer credential for store requests. The
// client treats an empty token as "not signed in" and fails before
// issuing any request.
type TokenSource interface {
	Token() (string, error)
}

// SessionFile reads the token from a .env-style session file, falling
// back to the process environment when the file is missing.
type SessionFile struct {
	Path string
}

// Token returns the stored session token, or "" when none is found.
func (s *SessionFile) Token() (string, error) {
	if s.Path != "" {
		vars, err := godotenv.Read(s.Path)
		if err == nil {
			if tok := strings.TrimSpace(vars[SessionTokenVar]); tok != "" {
				return tok, nil
			}
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}
	return strings.TrimSpace(os.Getenv(SessionTokenVar)), nil
}

// Static is a fixed token source, used by tests and headless commands.
type Static string

// Token returns the fixed token.
func (s Static) Token() (string, error) {
	return string(s), nil
}

// UserName extracts a display name from the session token's claims
// without verifying the signature. The backend already validated the
// token when it issued it; this is display-only. Returns "" when the
// token is not a parseable JWT.
func UserName(token string) string {
	if token == "" {
		return ""
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	if name, ok := claims["name"].(string); ok && name != "" {
		return name
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

// UserID extracts the numeric user id claim, for defaulting the
// "my events" filter. Returns 0 when absent.
func UserID(token string) int {
	if token == "" {
		return 0
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0
	}

	// JSON numbers decode as float64
	if id, ok := claims["user_id"].(float64); ok {
		return int(id)
	}
	return 0
}
