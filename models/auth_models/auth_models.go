package auth_models

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joy095/cardoctor/logger"
	"github.com/joy095/cardoctor/utils"
)

// TokenCookieName is the cookie carrying the access token.
const TokenCookieName = "token"

// TokenExpiry is the fixed lifetime of an issued access token.
const TokenExpiry = time.Hour

// contextUserKey is where the auth middleware stores the verified claims.
const contextUserKey = "auth_user"

// AuthClaims is the verified identity attached to a request by the auth
// middleware.
type AuthClaims struct {
	Email  string
	Claims jwt.MapClaims
}

// GenerateToken signs the caller-supplied identity payload as JWT claims.
// The payload must include an email; everything else is embedded as-is.
func GenerateToken(identity map[string]any) (string, error) {
	email, _ := identity["email"].(string)
	if email == "" {
		return "", fmt.Errorf("identity payload must include an email")
	}

	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	// Reserved claims are server-controlled; a caller-supplied exp or iat
	// must not survive into the signed token.
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TokenExpiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(utils.GetJWTSecret())
	if err != nil {
		logger.ErrorLogger.Errorf("failed to sign access token: %v", err)
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken validates the signature and expiry of a token and returns its
// claims. Tampering, a wrong key and expiry all surface as the same error.
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return utils.GetJWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// SetAuthUser stores verified claims in the gin context for downstream
// handlers.
func SetAuthUser(c *gin.Context, claims jwt.MapClaims) {
	email, _ := claims["email"].(string)
	c.Set(contextUserKey, &AuthClaims{Email: email, Claims: claims})
}

// GetAuthUser returns the verified claims attached by the auth middleware.
func GetAuthUser(c *gin.Context) (*AuthClaims, error) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, fmt.Errorf("authentication required: no verified user in context")
	}
	user, ok := v.(*AuthClaims)
	if !ok {
		return nil, fmt.Errorf("invalid auth claims type in context: %T", v)
	}
	return user, nil
}

// SetJWTCookie writes the token cookie. Production deployments need
// SameSite=None with Secure for cross-site delivery; everywhere else the
// cookie stays Strict and non-secure so local HTTP keeps working.
func SetJWTCookie(c *gin.Context, value string) {
	secure := shouldUseSecureCookies()

	sameSite := http.SameSiteStrictMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     TokenCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(TokenExpiry),
		MaxAge:   int(TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}

// RemoveJWTCookie expires the token cookie with the same attribute split.
func RemoveJWTCookie(c *gin.Context) {
	secure := shouldUseSecureCookies()

	sameSite := http.SameSiteStrictMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}

func shouldUseSecureCookies() bool {
	if secure := os.Getenv("COOKIE_SECURE"); secure != "" {
		return strings.EqualFold(secure, "true")
	}
	env := strings.ToLower(os.Getenv("ENV"))
	return env == "production" || env == "prod"
}
