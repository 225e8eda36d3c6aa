package remote

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// redacted replaces credential material in diagnostic output.
const redacted = "*****"

// RequireToken aborts requests which do not carry an authorization token.
// The token itself is opaque here; it is validated by the remote server.
func RequireToken(c *gin.Context) {

	token := c.GetHeader("authorization")
	if token == "" {
		log.Error("Missing authorization token in header")
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	c.Next()
}

// SettingsHandler returns a handler which renders the resolution outcome for
// every service, with credentials redacted. Misconfigured endpoints surface
// here at a glance instead of as a failed network call somewhere downstream.
func SettingsHandler(resolver *Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {

		resolutions := make([]ResolvedSettings, 0, len(Services))
		for _, service := range Services {
			settings, st := resolver.Resolve(service)
			if st != nil {
				st.Send(c)
				return
			}
			if settings.Token != "" {
				settings.Token = redacted
			}
			settings.WsURL = redactedWsURL(settings.WsURL)
			resolutions = append(resolutions, settings)
		}
		c.JSON(http.StatusOK, resolutions)
	}
}

// redactedWsURL blanks the token query parameter of a streaming URL.
func redactedWsURL(wsURL string) string {

	u, err := url.Parse(wsURL)
	if err != nil {
		return wsURL
	}
	query := u.Query()
	if query.Get(tokenParam) != "" {
		query.Set(tokenParam, redacted)
		u.RawQuery = query.Encode()
	}
	return u.String()
}
