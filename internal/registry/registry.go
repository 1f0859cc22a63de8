// Package registry provides the process-wide registry mapping environment
// identifiers to factories. Environments register themselves in init()
// functions of the shim package, allowing training code to instantiate
// them by ID without hardcoded dependencies. The registry is populated
// once at process start and never mutated concurrently afterward.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/env"
)

// Factory builds an environment instance from a configuration.
type Factory func(cfg config.EnvConfig) (*env.Env, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds an environment factory under the given identifier.
// Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: environment %q already registered", id))
	}
	factories[id] = f
}

// Make instantiates a registered environment by its ID.
func Make(id string, cfg config.EnvConfig) (*env.Env, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown environment %q", id)
	}
	return f(cfg)
}

// List returns all registered environment IDs, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exists checks whether an environment ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
