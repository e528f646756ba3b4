package security

import (
	"net/http"
	"time"

	"quizhub/internal/platform/config"
)

// SessionCookieName must stay "jwt": jwtauth.TokenFromCookie reads that name.
const SessionCookieName = "jwt"

type CarrierKind int

const (
	CarrierBearer CarrierKind = iota + 1
	CarrierCookie
)

// Carrier is the transport for a freshly issued session token, decided once at
// login time. The cookie carrier keeps the token out of reach of client script;
// the bearer carrier hands it to the client to manage explicitly. A login never
// activates both.
type Carrier struct {
	kind  CarrierKind
	token string
}

func BearerCarrier(token string) Carrier { return Carrier{kind: CarrierBearer, token: token} }
func CookieCarrier(token string) Carrier { return Carrier{kind: CarrierCookie, token: token} }

func (c Carrier) Kind() CarrierKind { return c.kind }

// Deliver writes the token to its transport. The cookie carrier sets the
// session cookie and returns ""; the bearer carrier returns the token for the
// response body and sets no cookie.
func (c Carrier) Deliver(w http.ResponseWriter) string {
	if c.kind == CarrierCookie {
		http.SetCookie(w, sessionCookie(c.token, int(config.AppConfig.JWTExp.Seconds())))
		return ""
	}
	return c.token
}

// ClearSessionCookie expires the cookie carrier. It cannot invalidate an
// outstanding bearer token; those remain valid until natural expiry.
func ClearSessionCookie(w http.ResponseWriter) {
	cookie := sessionCookie("", -1)
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

func sessionCookie(value string, maxAge int) *http.Cookie {
	// SameSite=None is required for the cross-site deployment in production;
	// Lax keeps local development working without TLS.
	sameSite := http.SameSiteLaxMode
	if config.AppConfig.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   config.AppConfig.IsProduction(),
		SameSite: sameSite,
	}
}
