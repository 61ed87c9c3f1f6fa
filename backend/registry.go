package backend

import "sync"

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// priority order for Default (first registered name wins).
	priority = []string{Fyne, Software}
)

// Register registers a surface factory under the given name. Drivers
// call this from their init functions; registering an existing name
// replaces the previous factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a driver from the registry. Useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the names of all registered drivers.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

func lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[name]
	return f, ok
}
