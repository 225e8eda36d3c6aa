package remote

import (
	"net/http"
	"sync"

	"github.com/nbforge/goremote/status"
)

// SectionManager serves named configuration sections fetched from the remote
// server's configuration API.
type SectionManager interface {
	// Section returns the JSON document of the named configuration section.
	Section(name string) ([]byte, *status.Status)
}

// The process-wide section manager is written exactly once during startup
// and read by every component afterwards. A silent reassignment would leave
// components holding a stale instance, so registration conflicts are errors.
var (
	sectionMutex   sync.Mutex
	sectionManager SectionManager
)

// RegisterSectionManager stores the process-wide section manager. It is
// idempotent when called again with the same instance and fails with a
// conflict when a different instance is already registered.
func RegisterSectionManager(manager SectionManager) *status.Status {
	if manager == nil {
		return status.NewStatus(nil, http.StatusInternalServerError, "Can not register a nil section manager")
	}

	sectionMutex.Lock()
	defer sectionMutex.Unlock()

	if sectionManager == nil {
		sectionManager = manager
		log.Info("Registered configuration section manager")
		return nil
	}
	if sectionManager == manager {
		return nil
	}
	return status.NewStatus(nil, http.StatusConflict, "A different section manager is already registered")
}

// RegisteredSectionManager returns the process-wide section manager, or nil
// when none has been registered yet.
func RegisteredSectionManager() SectionManager {
	sectionMutex.Lock()
	defer sectionMutex.Unlock()
	return sectionManager
}
