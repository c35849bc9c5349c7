package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joy095/cardoctor/logger"
	"github.com/joy095/cardoctor/models/auth_models"
	"github.com/joy095/cardoctor/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLoggers()
	os.Exit(m.Run())
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		user, err := auth_models.GetAuthUser(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

func TestAuthRequiredWithoutCookie(t *testing.T) {
	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"not authorized"}`, w.Body.String())
}

func TestAuthRequiredWithGarbageToken(t *testing.T) {
	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth_models.TokenCookieName, Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())
}

func TestAuthRequiredWithExpiredToken(t *testing.T) {
	r := protectedRouter()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   now.Add(-time.Minute).Unix(),
	})
	tokenString, err := token.SignedString(utils.GetJWTSecret())
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth_models.TokenCookieName, Value: tokenString})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWithValidToken(t *testing.T) {
	r := protectedRouter()

	tokenString, err := auth_models.GenerateToken(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth_models.TokenCookieName, Value: tokenString})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
}
