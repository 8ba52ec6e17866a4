package middleware

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	game_constants "pictocat/constants/game"
	"pictocat/config"
	"pictocat/services/apperr"
	"pictocat/services/profile"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const identityKey = "identity"

var ErrUnauthenticated = errors.New("unauthenticated")

// Claims are the identity provider token claims we rely on.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks identity tokens signed with an HS256 secret or an RS256 public key.
type Verifier struct {
	secret    []byte
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewVerifier(settings config.Settings) (*Verifier, error) {
	v := &Verifier{}
	methods := []string{}
	if settings.JWTPublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(settings.JWTPublicKey))
		if err != nil {
			return nil, fmt.Errorf("parsing JWT_PUBLIC_KEY: %w", err)
		}
		v.publicKey = key
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}
	if settings.JWTSecret != "" {
		v.secret = []byte(settings.JWTSecret)
		methods = append(methods, jwt.SigningMethodHS256.Alg())
	}
	if len(methods) == 0 {
		return nil, errors.New("either JWT_SECRET or JWT_PUBLIC_KEY must be set")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods(methods), jwt.WithExpirationRequired()}
	if settings.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(settings.JWTIssuer))
	}
	if settings.JWTAudience != "" {
		opts = append(opts, jwt.WithAudience(settings.JWTAudience))
	}
	v.parser = jwt.NewParser(opts...)
	return v, nil
}

// Verify validates raw (with or without the "Bearer " prefix) and returns the caller identity.
func (v *Verifier) Verify(raw string) (profile.Identity, error) {
	token := strings.TrimSpace(raw)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return profile.Identity{}, ErrUnauthenticated
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		switch t.Method.(type) {
		case *jwt.SigningMethodRSA:
			return v.publicKey, nil
		case *jwt.SigningMethodHMAC:
			return v.secret, nil
		}
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	})
	if err != nil {
		return profile.Identity{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return profile.Identity{}, fmt.Errorf("%w: token has no subject", ErrUnauthenticated)
	}
	return profile.Identity{Subject: claims.Subject, Email: claims.Email}, nil
}

// AuthRequired rejects requests without a valid bearer token and stores the identity.
func AuthRequired(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Verify(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuth stores the identity when a valid token is present and never rejects.
func OptionalAuth(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if identity, err := verifier.Verify(header); err == nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// Identity returns the identity stored by AuthRequired.
func Identity(c *gin.Context) profile.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(profile.Identity); ok {
			return identity
		}
	}
	return profile.Identity{}
}

// Subject returns the caller's subject.
func Subject(c *gin.Context) string {
	return Identity(c).Subject
}

// AdminRequired only lets admins through. It must run after AuthRequired.
func AdminRequired(profiles *profile.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		player, err := profiles.Player(c.Request.Context(), Subject(c))
		if err != nil && !apperr.Is(err, apperr.NotFound) {
			log.Error("loading admin candidate failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		if err != nil || player.Role != game_constants.ROLE_ADMIN {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admins only."})
			return
		}
		c.Next()
	}
}
