package dims

import (
	"fmt"
	"sync"

	"github.com/pgEdge/pgedge-datagen/internal/artifacts"
)

var (
	registry = make(map[string]artifacts.Generator)
	mu       sync.RWMutex
)

// Register adds a dimension generator to the registry.
func Register(gen artifacts.Generator) {
	mu.Lock()
	defer mu.Unlock()
	registry[gen.Name()] = gen
}

// Get retrieves a generator by artifact name.
func Get(name string) (artifacts.Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	gen, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown artifact: %s", name)
	}
	return gen, nil
}

// List returns all registered artifact names.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
