package remote

// ServiceType identifies one logical group of remote notebook server
// functionality. Every service can be pointed at its own endpoint and
// credential through the per-service configuration keys.
type ServiceType string

const (
	// ServiceDefault is the pseudo service carrying the default tier. It is
	// only used by the top-level settings plugin; concrete services fall
	// back to it implicitly.
	ServiceDefault ServiceType = "default"
	// ServiceContents is the file and notebook contents API
	ServiceContents ServiceType = "contents"
	// ServiceKernels is the kernel lifecycle and messaging API
	ServiceKernels ServiceType = "kernels"
	// ServiceSettings is the settings storage API
	ServiceSettings ServiceType = "settings"
	// ServiceWorkspaces is the workspace storage API
	ServiceWorkspaces ServiceType = "workspaces"
	// ServiceUsers is the user identity API
	ServiceUsers ServiceType = "users"
	// ServiceEvents is the server event stream API
	ServiceEvents ServiceType = "events"
	// ServiceTerminals is the terminal API
	ServiceTerminals ServiceType = "terminals"
	// ServiceNbConvert is the document export API
	ServiceNbConvert ServiceType = "nbconvert"
	// ServiceConfigSection is the named configuration section API
	ServiceConfigSection ServiceType = "configSection"
)

// Services lists every concrete service type, excluding ServiceDefault.
var Services = []ServiceType{
	ServiceContents,
	ServiceKernels,
	ServiceSettings,
	ServiceWorkspaces,
	ServiceUsers,
	ServiceEvents,
	ServiceTerminals,
	ServiceNbConvert,
	ServiceConfigSection,
}

// keyInfix returns the capitalized service name as it appears inside the
// per-service configuration keys, e.g. "Kernels" in "remoteKernelsBaseUrl".
func (s ServiceType) keyInfix() string {
	switch s {
	case ServiceContents:
		return "Contents"
	case ServiceKernels:
		return "Kernels"
	case ServiceSettings:
		return "Settings"
	case ServiceWorkspaces:
		return "Workspaces"
	case ServiceUsers:
		return "Users"
	case ServiceEvents:
		return "Events"
	case ServiceTerminals:
		return "Terminals"
	case ServiceNbConvert:
		return "NbConvert"
	case ServiceConfigSection:
		return "ConfigSection"
	}
	return ""
}

// baseURLKey returns the configuration key holding the base URL override for
// this service. The default pseudo service maps to the default tier key.
func (s ServiceType) baseURLKey() string {
	infix := s.keyInfix()
	if infix == "" {
		return KeyBaseURL
	}
	return "remote" + infix + "BaseUrl"
}

// tokenKey returns the configuration key holding the token override for this
// service. The default pseudo service maps to the default tier key.
func (s ServiceType) tokenKey() string {
	infix := s.keyInfix()
	if infix == "" {
		return KeyToken
	}
	return "remote" + infix + "Token"
}

// apiPath returns the canonical API path of the service on the remote
// server, relative to the server root.
func (s ServiceType) apiPath() string {
	switch s {
	case ServiceContents:
		return "api/contents"
	case ServiceKernels:
		return "api/kernels"
	case ServiceSettings:
		return "lab/api/settings"
	case ServiceWorkspaces:
		return "lab/api/workspaces"
	case ServiceUsers:
		return "api/me"
	case ServiceEvents:
		return "api/events"
	case ServiceTerminals:
		return "api/terminals"
	case ServiceNbConvert:
		return "api/nbconvert"
	case ServiceConfigSection:
		return "api/config"
	}
	return "api"
}
