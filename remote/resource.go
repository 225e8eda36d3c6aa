package remote

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/nbforge/goremote/status"
)

// RewriteResource turns a resource reference returned by the remote server
// into an absolute URL a browser client can fetch. An empty reference stays
// empty, an already fully qualified reference is returned untouched (the
// server pointed elsewhere intentionally, e.g. a CDN), and everything else
// is treated as rooted at the server's document root: it is joined to the
// scheme+host+port of baseURL with exactly one separating slash, keeping any
// query string or fragment of the reference.
func RewriteResource(resourcePath, baseURL string) (string, *status.Status) {

	if resourcePath == "" {
		return "", nil
	}

	ref, err := url.Parse(resourcePath)
	if err != nil {
		return "", status.NewStatus(nil, http.StatusInternalServerError, "Resource path "+resourcePath+" can not be parsed")
	}

	if ref.IsAbs() {
		return resourcePath, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return "", status.NewStatus(nil, http.StatusInternalServerError, "Base URL "+baseURL+" is not an absolute URL")
	}

	// A protocol-relative reference already names its host and only lacks
	// the scheme, which it inherits from the resolved endpoint.
	if ref.Host != "" {
		abs := *ref
		abs.Scheme = base.Scheme
		return abs.String(), nil
	}

	abs := url.URL{
		Scheme:   base.Scheme,
		Host:     base.Host,
		Path:     "/" + strings.TrimPrefix(ref.Path, "/"),
		RawQuery: ref.RawQuery,
		Fragment: ref.Fragment,
	}
	return abs.String(), nil
}
