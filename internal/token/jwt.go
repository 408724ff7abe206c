package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// Claims represents identity token claims issued by the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JWT resolves bearer tokens signed with symmetric HMAC into user
// identities. The stable user identifier is the subject claim, falling back
// to the email claim when no subject is set.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT identity resolver with the provided secret key.
func NewJWT(secretKey string) model.IdentityResolver {
	return &JWT{secretKey: secretKey}
}

// Resolve validates the token and extracts the caller identity.
func (j *JWT) Resolve(tokenString string) (model.UserIdentity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.UserIdentity{}, fmt.Errorf("failed to parse identity token: %w", err)
	}
	if !token.Valid {
		return model.UserIdentity{}, fmt.Errorf("identity token is invalid")
	}

	userID := claims.Subject
	if userID == "" {
		userID = claims.Email
	}
	if userID == "" {
		return model.UserIdentity{}, fmt.Errorf("identity token carries no subject or email")
	}

	return model.UserIdentity{
		ID:          userID,
		DisplayName: claims.Name,
		Email:       claims.Email,
	}, nil
}

// GenerateIdentityToken signs an identity token for the given identity.
// Used by local tooling and tests; production tokens come from the identity
// provider.
func GenerateIdentityToken(secretKey string, identity model.UserIdentity, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  identity.DisplayName,
		Email: identity.Email,
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign identity token: %w", err)
	}

	return tokenString, nil
}
