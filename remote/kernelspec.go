package remote

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/nbforge/goremote/status"
)

// KernelSpec describes one kernel installed on the remote server. Resources
// maps resource names (logo-64x64, logo-svg, ...) to asset references which
// the server reports relative to its own root.
type KernelSpec struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"display_name"`
	Language    string            `json:"language"`
	Resources   map[string]string `json:"resources"`
}

// KernelSpecs is the collection returned by the kernel specification
// endpoint of the remote server.
type KernelSpecs struct {
	Default string                `json:"default"`
	Specs   map[string]KernelSpec `json:"kernelspecs"`
}

// ParseKernelSpecs reads the JSON response of the kernel specification
// endpoint. The resource references are kept exactly as the server reported
// them; call RewriteResources before exposing the specs to callers.
func ParseKernelSpecs(body []byte) (KernelSpecs, *status.Status) {

	if !gjson.ValidBytes(body) {
		return KernelSpecs{}, status.NewStatus(body, http.StatusBadGateway, "Can not parse kernel specifications")
	}

	specs := KernelSpecs{
		Default: gjson.GetBytes(body, "default").String(),
		Specs:   make(map[string]KernelSpec),
	}

	gjson.GetBytes(body, "kernelspecs").ForEach(func(key, value gjson.Result) bool {
		spec := KernelSpec{
			Name:        value.Get("name").String(),
			DisplayName: value.Get("spec.display_name").String(),
			Language:    value.Get("spec.language").String(),
			Resources:   make(map[string]string),
		}
		if spec.Name == "" {
			spec.Name = key.String()
		}
		value.Get("resources").ForEach(func(resource, path gjson.Result) bool {
			spec.Resources[resource.String()] = path.String()
			return true
		})
		specs.Specs[key.String()] = spec
		return true
	})

	return specs, nil
}

// RewriteResources rewrites every resource reference of every spec against
// the given base URL. It is applied each time a specification crosses the
// boundary to a caller, so the result always reflects the currently resolved
// kernel service endpoint.
func (k *KernelSpecs) RewriteResources(baseURL string) *status.Status {
	for name, spec := range k.Specs {
		for resource, path := range spec.Resources {
			abs, st := RewriteResource(path, baseURL)
			if st != nil {
				return st
			}
			spec.Resources[resource] = abs
		}
		k.Specs[name] = spec
	}
	return nil
}
