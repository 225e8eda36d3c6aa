// Package remote decides which endpoint and credential a client should use
// for each logical notebook service, and rewrites server-relative resource
// references into absolute URLs on the resolved endpoint. It configures the
// HTTP and WebSocket transports of an embedding application, but does not
// perform any network calls itself.
package remote

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/nbforge/goremote/event"
	"github.com/nbforge/goremote/status"
)

var log = event.Log

// tokenParam is the query parameter name the remote server expects when a
// token is carried inside a URL.
const tokenParam = "token"

// ResolvedSettings is the outcome of one settings resolution. BaseURL is
// always a well-formed absolute URL; the resolver falls back to the hosting
// application's own origin rather than producing an empty endpoint.
type ResolvedSettings struct {
	Service     ServiceType `json:"service"`
	BaseURL     string      `json:"baseUrl"`
	Token       string      `json:"token"`
	AppendToken bool        `json:"appendToken"`
	WsURL       string      `json:"wsUrl"`
}

// RequestHeaders returns the headers an HTTP request against the resolved
// endpoint must carry. The token travels in the Authorization header, which
// is the channel used whenever it is not appended to streaming URLs.
func (s ResolvedSettings) RequestHeaders() http.Header {
	header := http.Header{}
	if s.Token != "" {
		header.Set("Authorization", "token "+s.Token)
	}
	return header
}

// Resolver resolves per-service connection settings against a configuration
// snapshot. It is a pure function of the snapshot and the injected hosting
// application origin, so a single instance may be shared by concurrently
// initializing service factories.
type Resolver struct {
	cfg       *Config
	appOrigin *url.URL
}

// NewResolver creates a resolver for the given configuration snapshot. The
// origin of the hosting application must be an absolute URL; it is the final
// fallback of the base URL chain and the reference point of the append-token
// auto-detection.
func NewResolver(cfg *Config, appOrigin string) (*Resolver, *status.Status) {
	u, err := url.Parse(appOrigin)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, status.NewStatus(nil, http.StatusInternalServerError, "Application origin "+appOrigin+" is not an absolute URL")
	}
	return &Resolver{cfg: cfg, appOrigin: u}, nil
}

// Resolve returns the connection settings for the given service. Each of the
// base URL and token is resolved through its own fallback chain: the
// per-service override first, then the default tier, then the application
// origin (base URL) or no token at all. Missing configuration is never an
// error; a base URL which cannot be parsed is.
func (r *Resolver) Resolve(service ServiceType) (ResolvedSettings, *status.Status) {

	base := r.cfg.value(service.baseURLKey())
	if base == "" {
		base = r.cfg.value(KeyBaseURL)
	}
	if base == "" {
		base = r.appOrigin.String()
	}

	token := r.cfg.value(service.tokenKey())
	if token == "" {
		token = r.cfg.value(KeyToken)
	}

	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() || baseURL.Host == "" {
		log.WithFields(event.Fields{
			"service": service,
			"baseUrl": base,
		}).Error("Configured base URL is not an absolute URL")
		return ResolvedSettings{}, status.NewStatus(nil, http.StatusInternalServerError, "Base URL "+base+" for service "+string(service)+" is not an absolute URL")
	}

	appendToken, explicit := r.cfg.AppendToken()
	if !explicit {
		// A same-origin server receives the token through cookies or
		// headers. Only a cross-origin WebSocket handshake, which cannot
		// carry custom headers in a browser, needs the token in the URL.
		appendToken = origin(baseURL) != origin(r.appOrigin)
	}

	wsURL, st := webSocketURL(baseURL, token, appendToken)
	if st != nil {
		return ResolvedSettings{}, st
	}

	resolved := ResolvedSettings{
		Service:     service,
		BaseURL:     baseURL.String(),
		Token:       token,
		AppendToken: appendToken,
		WsURL:       wsURL,
	}

	log.WithFields(event.Fields{
		"service":     service,
		"baseUrl":     resolved.BaseURL,
		"appendToken": resolved.AppendToken,
		"hasToken":    resolved.Token != "",
	}).Debug("Resolved service connection settings")

	return resolved, nil
}

// AppOrigin returns the injected origin of the hosting application.
func (r *Resolver) AppOrigin() string {
	return r.appOrigin.String()
}

// origin reduces a URL to its scheme+host+port identity. Two endpoints with
// equal origins are reachable with the same ambient browser credentials.
func origin(u *url.URL) string {
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
}
