package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

type claims struct {
	Username   string      `json:"username"`
	Role       domain.Role `json:"role"`
	CustomerID string      `json:"customerId,omitempty"`
	jwt.RegisteredClaims
}

type contextKey string

const claimsKey contextKey = "auth_claims"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string      `json:"token"`
	Role       domain.Role `json:"role"`
	Username   string      `json:"username"`
	CustomerID string      `json:"customerId,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}

	s.mu.RLock()
	u, ok := s.users[req.Username]
	s.mu.RUnlock()
	if !ok || u.Password != req.Password {
		respondError(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
		return
	}

	token, err := s.issueToken(u)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "TOKEN_ERROR", "could not issue token")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Token:      token,
		Role:       u.Role,
		Username:   u.Username,
		CustomerID: u.CustomerID,
	})
}

func (s *Server) issueToken(u user) (string, error) {
	c := &claims{
		Username:   u.Username,
		Role:       u.Role,
		CustomerID: u.CustomerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "storefront-mockapi",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

type registerRequest struct {
	UserName    string `json:"userName"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}
	if req.UserName == "" || req.Password == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "userName and password are required")
		return
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		respondError(w, r, http.StatusBadRequest, "INVALID_ROLE", "unknown role "+req.Role)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.UserName]; exists {
		respondError(w, r, http.StatusConflict, "USER_ALREADY_EXISTS", "username already registered")
		return
	}

	u := user{
		Username: req.UserName,
		Password: req.Password,
		Role:     role,
	}
	if role == domain.RoleCustomer {
		u.CustomerID = uuid.NewString()
	}
	s.users[req.UserName] = u

	respondJSON(w, http.StatusCreated, map[string]string{"userName": u.Username})
}

// requireAuth validates the bearer token and attaches claims to the
// request context. The 401 body uses the same envelope as every other
// error, because the real backend does.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			respondError(w, r, http.StatusUnauthorized, "MISSING_TOKEN", "missing authorization header")
			return
		}
		parts := strings.Fields(auth)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			respondError(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "invalid authorization header")
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &claims{}, func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			respondError(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token")
			return
		}
		c, ok := token.Claims.(*claims)
		if !ok {
			respondError(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "invalid token claims")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := claimsFrom(r.Context())
		if c == nil || c.Role != domain.RoleAdministrator {
			respondError(w, r, http.StatusForbidden, "FORBIDDEN", "administrator role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFrom(ctx context.Context) *claims {
	c, _ := ctx.Value(claimsKey).(*claims)
	return c
}
