package httpclient

import (
	"net/http"
	"strings"
)

// AuthConfig attaches credentials to an outgoing request. A nil *AuthConfig
// leaves the request as built; NoAuth strips the client default for one call.
type AuthConfig struct {
	header string
	value  string
	hook   func(*http.Request)
	strip  bool
}

// BearerAuth sends token as "Authorization: Bearer <token>", the scheme the
// Late API expects for API keys.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{header: "Authorization", value: "Bearer " + token}
}

// HeaderAuth sends value verbatim in the named header.
func HeaderAuth(name, value string) *AuthConfig {
	return &AuthConfig{header: http.CanonicalHeaderKey(name), value: value}
}

// RequestAuth hands the request to fn just before it is sent.
func RequestAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{hook: fn}
}

// NoAuth sends the request without an Authorization header, even one set
// through default headers. Presigned storage URLs reject a bearer token
// they did not issue.
func NoAuth() *AuthConfig {
	return &AuthConfig{strip: true}
}

// Scheme names the credential kind for logs, never the secret itself.
func (a *AuthConfig) Scheme() string {
	switch {
	case a == nil || (a.header == "" && a.hook == nil):
		return "none"
	case a.hook != nil:
		return "custom"
	case strings.HasPrefix(a.value, "Bearer "):
		return "bearer"
	default:
		return "header"
	}
}

func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	if a.strip {
		req.Header.Del("Authorization")
	}
	if a.header != "" {
		req.Header.Set(a.header, a.value)
	}
	if a.hook != nil {
		a.hook(req)
	}
}
