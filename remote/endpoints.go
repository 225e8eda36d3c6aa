package remote

import "github.com/nbforge/goremote/status"

// APIURL joins the canonical API path of a service onto a resolved base URL.
func APIURL(baseURL string, service ServiceType) (string, *status.Status) {
	return RewriteResource(service.apiPath(), baseURL)
}

// QuerySection generates the query for one named configuration section
func QuerySection(apiURL, section string) string {
	return apiURL + "/" + section
}

// QueryKernel generates the query for one kernel by its id
func QueryKernel(apiURL, kernelID string) string {
	return apiURL + "/" + kernelID
}

// QueryKernelChannels generates the streaming channels query for one kernel
func QueryKernelChannels(apiURL, kernelID string) string {
	return apiURL + "/" + kernelID + "/channels"
}
