package remote

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nbforge/goremote/status"
)

// webSocketURL derives the streaming endpoint from a resolved base URL by
// switching the scheme, and appends the token as a query parameter when the
// append-token policy requires it.
func webSocketURL(base *url.URL, token string, appendToken bool) (string, *status.Status) {

	ws := *base
	switch ws.Scheme {
	case "http":
		ws.Scheme = "ws"
	case "https":
		ws.Scheme = "wss"
	case "ws", "wss":
		// already a streaming scheme
	default:
		return "", status.NewStatus(nil, http.StatusInternalServerError, "Base URL scheme "+ws.Scheme+" has no WebSocket equivalent")
	}

	if appendToken && token != "" {
		query := ws.Query()
		query.Set(tokenParam, token)
		ws.RawQuery = query.Encode()
	}

	return ws.String(), nil
}

// WebSocketDialer returns a dialer and the handshake headers for the
// resolved settings. When the token is not appended to the URL it travels in
// the Authorization header instead, which works for same-origin handshakes.
// The caller owns the actual connection.
func WebSocketDialer(settings ResolvedSettings) (*websocket.Dialer, http.Header) {

	header := http.Header{}
	if settings.Token != "" && !settings.AppendToken {
		header.Set("Authorization", "token "+settings.Token)
	}

	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 45 * time.Second,
	}
	return dialer, header
}
