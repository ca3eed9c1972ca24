package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"taskmanager/models"
	"taskmanager/utilities"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const callerContextKey = contextKey("caller")

func jwtKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// Claims carried inside the bearer token.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// HashPassword derives a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against its stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues a token valid for 24 hours.
func GenerateToken(user *models.User) (string, error) {
	expiration := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// AuthMiddleware validates "Authorization: Bearer <token>" and threads
// the caller identity through the request context.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondMessage(w, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondMessage(w, http.StatusUnauthorized, "Invalid Authorization format")
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		caller := models.Caller{ID: claims.UserID, Username: claims.Username}
		ctx := context.WithValue(r.Context(), callerContextKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// CallerFromContext returns the authenticated caller placed by
// AuthMiddleware.
func CallerFromContext(r *http.Request) (models.Caller, error) {
	caller, ok := r.Context().Value(callerContextKey).(models.Caller)
	if !ok {
		return models.Caller{}, errors.New("no caller in context")
	}
	return caller, nil
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler exchanges username/password for a bearer token.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	defer r.Body.Close()

	user, err := users.GetUserByUsername(input.Username)
	if err != nil || !CheckPasswordHash(input.Password, user.PasswordHash) {
		utilities.LogError(fmt.Errorf("login failed for %q", input.Username), "Authentication")
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(user)
	if err != nil {
		utilities.LogError(err, "Failed to sign token")
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	utilities.LogInfo("User %s logged in", user.Username)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// CurrentUserHandler returns the caller's own record.
func CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := users.GetUserByID(caller.ID)
	if err != nil {
		respondStoreError(w, err, "Failed to load current user", "User not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// ListUsersHandler lists all users for assignment pickers.
func ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := users.ListUsers()
	if err != nil {
		respondStoreError(w, err, "Failed to list users", "")
		return
	}
	out := make([]models.UserRef, 0, len(list))
	for _, u := range list {
		out = append(out, models.UserRef{ID: u.ID, Username: u.Username})
	}
	respondJSON(w, http.StatusOK, out)
}
