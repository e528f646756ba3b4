package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizhub/internal/common/security"
	"quizhub/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookieFrom(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == security.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestBearerCarrier_Deliver(t *testing.T) {
	setupJWT(t, 30*24*time.Hour)

	carrier := security.BearerCarrier("the-token")
	rr := httptest.NewRecorder()

	token := carrier.Deliver(rr)

	assert.Equal(t, "the-token", token)
	assert.Nil(t, sessionCookieFrom(t, rr), "bearer carrier must not set a cookie")
}

func TestCookieCarrier_Deliver(t *testing.T) {
	setupJWT(t, 30*24*time.Hour)

	carrier := security.CookieCarrier("the-token")
	rr := httptest.NewRecorder()

	token := carrier.Deliver(rr)

	assert.Empty(t, token, "cookie carrier must not expose the token in the body")

	cookie := sessionCookieFrom(t, rr)
	require.NotNil(t, cookie)
	assert.Equal(t, "the-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	// Development defaults: no TLS requirement, Lax.
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCookieCarrier_ProductionAttributes(t *testing.T) {
	setupJWT(t, time.Hour)
	config.AppConfig.Env = config.EnvProduction

	rr := httptest.NewRecorder()
	security.CookieCarrier("the-token").Deliver(rr)

	cookie := sessionCookieFrom(t, rr)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestClearSessionCookie(t *testing.T) {
	setupJWT(t, time.Hour)

	rr := httptest.NewRecorder()
	security.ClearSessionCookie(rr)

	cookie := sessionCookieFrom(t, rr)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.Expires.Before(time.Now()))
	assert.True(t, cookie.HttpOnly)
}
