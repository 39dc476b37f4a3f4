package commands

import (
	"fmt"
	"sort"
	"sync"

	"pulljira/internal/config"
)

// Registry binds command names, aliases and namespaced identifiers to
// commands.
type Registry struct {
	mu        sync.RWMutex
	namespace string
	cmds      map[string]Command
}

// NewRegistry creates a new command registry. Every registered command is
// also reachable as "<namespace>:<name>" when namespace is not empty.
func NewRegistry(namespace string) *Registry {
	return &Registry{
		namespace: namespace,
		cmds:      make(map[string]Command),
	}
}

// Identifier returns the namespaced identifier bound to a command name.
func (r *Registry) Identifier(name string) string {
	if r.namespace == "" {
		return name
	}
	return r.namespace + ":" + name
}

// Register adds a command to the registry.
// Returns an error if the name, an alias or the identifier is already bound.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	if id := r.Identifier(c.Name()); id != c.Name() {
		keys = append(keys, id)
	}

	for _, k := range keys {
		if _, exists := r.cmds[k]; exists {
			return fmt.Errorf("command already registered: %s", k)
		}
	}
	for _, k := range keys {
		r.cmds[k] = c
	}
	return nil
}

// Find looks up a command by name, alias or identifier.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Name()] = cmd
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Command, len(names))
	for i, name := range names {
		result[i] = seen[name]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry(config.Namespace)

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
