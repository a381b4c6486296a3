// Package auth issues and verifies admin tokens.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/resto-manager/internal/auth/jwt"
	"github.com/jekabolt/resto-manager/internal/dependency"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	MasterPassword string `mapstructure:"master_password"`
	JWTTTL         string `mapstructure:"jwt_ttl"`
	BcryptCost     int    `mapstructure:"bcrypt_cost"`
}

type ctxKey struct{}

// Server issues tokens for admins and guards admin routes.
type Server struct {
	adminRepository dependency.Admin
	JwtAuth         *jwtauth.JWTAuth
	jwtTTL          time.Duration
	cost            int
	masterHash      []byte
}

// New creates a new auth server.
func New(c *Config, ar dependency.Admin) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	if c.MasterPassword == "" {
		return nil, fmt.Errorf("master password is empty")
	}
	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("bad jwt ttl %q: %w", c.JWTTTL, err)
	}
	cost := c.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.MasterPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("can't hash master password: %w", err)
	}
	return &Server{
		adminRepository: ar,
		JwtAuth:         jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:          ttl,
		cost:            cost,
		masterHash:      hash,
	}, nil
}

// Login returns a token for a valid username and password pair.
func (s *Server) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(username)

	pwHash, err := s.adminRepository.PasswordHashByUsername(ctx, username)
	if gerr.IsNotFound(err) {
		return "", gerr.ErrUnauthenticated
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pwHash), []byte(password)); err != nil {
		return "", gerr.ErrUnauthenticated
	}
	return jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
}

// CreateAdmin adds an admin when masterPassword matches and returns a token for it.
func (s *Server) CreateAdmin(ctx context.Context, masterPassword, username, email, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.masterHash, []byte(masterPassword)); err != nil {
		return "", gerr.ErrUnauthenticated
	}
	username = strings.ToLower(username)

	pwHash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("can't hash password: %w", err)
	}
	if _, err := s.adminRepository.AddAdmin(ctx, username, email, string(pwHash)); err != nil {
		return "", err
	}
	slog.Default().InfoContext(ctx, "admin created", slog.String("username", username))
	return jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
}

// WithAuth rejects requests without a valid bearer token.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := jwtauth.TokenFromHeader(r)
		username, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprintf(w, `{"error":%q}`, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Username returns the admin username stored by WithAuth.
func Username(ctx context.Context) string {
	un, _ := ctx.Value(ctxKey{}).(string)
	return un
}
