package status

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status structure with code and message presentable to the user
type Status struct {
	Code         int          `json:"code" example:"502"`
	Message      string       `json:"message" example:"cannot resolve kernels endpoint"`
	RemoteStatus RemoteStatus `json:"-"`
}

// RemoteStatus structure as received from the remote notebook server
type RemoteStatus struct {
	Message string `json:"message" example:"No such kernel"`
	Reason  string `json:"reason,omitempty" example:"Kernel does not exist"`
	Code    int    `json:"status" example:"404"`
}

// NewStatus creates a new object by the given information
func NewStatus(body []byte, code int, message string) *Status {
	status := &Status{
		Code:    code,
		Message: message,
	}
	if body != nil {
		status.RemoteStatus = parseRemoteStatus(body)
	}
	return status
}

// NewHTTPStatus encapsulates a proper http error response
func NewHTTPStatus(ctx *gin.Context, status int, err error) {
	er := Status{
		Code:    status,
		Message: err.Error(),
	}
	ctx.JSON(status, er)
}

// Send sends the status back as a JSON response
func (s *Status) Send(ctx *gin.Context) {
	ctx.JSON(s.Code, s)
}

// Implements the error interface
func (s Status) Error() string {
	if s.Message != "" {
		return s.Message
	}
	return http.StatusText(s.Code)
}

func parseRemoteStatus(jsonData []byte) RemoteStatus {
	var remoteStatus RemoteStatus
	json.Unmarshal(jsonData, &remoteStatus)
	return remoteStatus
}
