package remote

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbforge/goremote/status"
)

type stubSectionManager struct {
	name string
}

func (s *stubSectionManager) Section(name string) ([]byte, *status.Status) {
	return []byte(`{}`), nil
}

func resetSectionManager() {
	sectionMutex.Lock()
	sectionManager = nil
	sectionMutex.Unlock()
}

func TestRegisterSectionManager(t *testing.T) {
	defer resetSectionManager()
	resetSectionManager()

	manager := &stubSectionManager{name: "first"}
	require.Nil(t, RegisterSectionManager(manager))
	assert.Equal(t, SectionManager(manager), RegisteredSectionManager())
}

func TestRegisterSectionManagerIdempotentForSameInstance(t *testing.T) {
	defer resetSectionManager()
	resetSectionManager()

	manager := &stubSectionManager{name: "first"}
	require.Nil(t, RegisterSectionManager(manager))
	assert.Nil(t, RegisterSectionManager(manager))
}

func TestRegisterSectionManagerConflicts(t *testing.T) {
	defer resetSectionManager()
	resetSectionManager()

	require.Nil(t, RegisterSectionManager(&stubSectionManager{name: "first"}))

	st := RegisterSectionManager(&stubSectionManager{name: "second"})
	require.NotNil(t, st)

	// the original registration is untouched
	registered, ok := RegisteredSectionManager().(*stubSectionManager)
	require.True(t, ok)
	assert.Equal(t, "first", registered.name)
}

func TestRegisterSectionManagerNil(t *testing.T) {
	defer resetSectionManager()
	resetSectionManager()

	assert.NotNil(t, RegisterSectionManager(nil))
}

func TestRegisteredSectionManagerConcurrentReads(t *testing.T) {
	defer resetSectionManager()
	resetSectionManager()

	manager := &stubSectionManager{name: "shared"}
	require.Nil(t, RegisterSectionManager(manager))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if RegisteredSectionManager() != SectionManager(manager) {
				t.Error("observed a different section manager")
			}
		}()
	}
	wg.Wait()
}
