// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Backend is a frontend that can host a game session.
// The game itself lives in the pong package; a backend supplies the clock,
// the input and somewhere to paint.
type Backend interface {
	// Name returns a unique identifier (e.g., "desktop", "tui").
	// Used by the --backend flag.
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run plays one session and blocks until the player quits or ctx is done.
	Run(ctx context.Context, opts Options) error
}

// Options is everything a backend needs to start a session.
type Options struct {
	Game    config.PongConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Out     io.Writer // Summary output for non-interactive backends
}

// Log returns the configured logger, or one that discards everything.
func (o Options) Log() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new backend instance.
type Factory func() Backend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a backend by name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
