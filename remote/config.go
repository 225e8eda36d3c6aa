package remote

import (
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/nbforge/goremote/event"
	"github.com/nbforge/goremote/status"
)

const (
	// KeyBaseURL is the default tier base URL key
	KeyBaseURL = "remoteBaseUrl"
	// KeyToken is the default tier token key
	KeyToken = "remoteToken"
	// KeyAppendToken is the default tier append-token policy key. There is
	// deliberately no per-service variant: token exposure policy is decided
	// once, or auto-detected per resolved base URL.
	KeyAppendToken = "appendToken"
	// KeyAppURL is the mount path of the hosting application
	KeyAppURL = "appUrl"
)

// Config is an immutable snapshot of the connection configuration. It is
// created once at process start and read concurrently by every service
// factory afterwards.
type Config struct {
	values      map[string]string
	appendToken *bool
}

// recognizedKeys returns all string-valued configuration keys read by the
// resolver. KeyAppendToken is handled separately since it is a boolean.
func recognizedKeys() []string {
	keys := []string{KeyBaseURL, KeyToken, KeyAppURL}
	for _, service := range Services {
		keys = append(keys, service.baseURLKey(), service.tokenKey())
	}
	return keys
}

// FromMap creates a configuration snapshot from a flat key/value map.
// Unrecognized keys and empty values are dropped. The map is copied, so the
// caller may keep mutating its own copy without affecting the snapshot.
func FromMap(values map[string]string) *Config {
	cfg := &Config{values: make(map[string]string)}
	for _, key := range recognizedKeys() {
		if v, ok := values[key]; ok && v != "" {
			cfg.values[key] = v
		}
	}
	if v, ok := values[KeyAppendToken]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.appendToken = &b
		} else {
			log.WithFields(event.Fields{
				"key":   KeyAppendToken,
				"value": v,
			}).Warn("Ignoring append token setting which is not a boolean")
		}
	}
	return cfg
}

// FromJSON creates a configuration snapshot from a JSON document, typically
// the page config block emitted by the hosting application. Keys not
// recognized by the resolver are ignored. The append-token flag may be a
// native boolean or the strings "true"/"false".
func FromJSON(data []byte) (*Config, *status.Status) {
	if !gjson.ValidBytes(data) {
		return nil, status.NewStatus(nil, http.StatusBadRequest, "Configuration document is not valid JSON")
	}
	cfg := &Config{values: make(map[string]string)}
	for _, key := range recognizedKeys() {
		if res := gjson.GetBytes(data, key); res.Exists() && res.String() != "" {
			cfg.values[key] = res.String()
		}
	}
	if res := gjson.GetBytes(data, KeyAppendToken); res.Exists() {
		switch res.Type {
		case gjson.True, gjson.False:
			b := res.Bool()
			cfg.appendToken = &b
		case gjson.String:
			if b, err := strconv.ParseBool(res.String()); err == nil {
				cfg.appendToken = &b
			} else {
				return nil, status.NewStatus(nil, http.StatusBadRequest, "Append token setting "+res.String()+" is not a boolean")
			}
		default:
			return nil, status.NewStatus(nil, http.StatusBadRequest, "Append token setting must be a boolean")
		}
	}
	return cfg, nil
}

// value returns the configured value for the given key, or the empty string.
func (c *Config) value(key string) string {
	if c == nil || c.values == nil {
		return ""
	}
	return c.values[key]
}

// AppendToken returns the explicit append-token policy of the default tier.
// ok is false when the policy is absent and must be auto-detected.
func (c *Config) AppendToken() (value, ok bool) {
	if c == nil || c.appendToken == nil {
		return false, false
	}
	return *c.appendToken, true
}

// AppURL returns the configured mount path of the hosting application.
func (c *Config) AppURL() string {
	return c.value(KeyAppURL)
}
