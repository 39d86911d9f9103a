package tool

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/schema"
)

// Registry manages registered tools by name.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*Tool),
	}
}

// Register adds a tool to the registry.
// Returns an error if a tool with the same name is already registered.
func (r *Registry) Register(t *Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name]; exists {
		return &ErrToolAlreadyRegistered{Name: t.Name}
	}
	r.tools[t.Name] = t
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(t *Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Set adds or replaces a tool, overwriting any existing registration
// with the same name.
func (r *Registry) Set(t *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name] = t
}

// Unregister removes a tool from the registry.
// It is a no-op if the tool is not registered.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tools, name)
}

// Get retrieves a tool by name.
// Returns the tool and true if found, or nil and false if not found.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// Tools returns all registered tools.
func (r *Registry) Tools() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// Definitions returns the wire-level definitions of all registered tools.
// This is used to pass the tools to the provider.
func (r *Registry) Definitions() []ai.Tool {
	tools := r.Tools()
	defs := make([]ai.Tool, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, t.Definition())
	}
	return defs
}

// Names returns the names of all registered tools in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Add registers one or more tools to the registry.
// Panics if any tool is already registered.
// Returns the registry for fluent chaining.
//
// Example:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("weather", "Get weather", weatherFn),
//	    tool.Func("search", "Search web", searchFn),
//	)
func (r *Registry) Add(tools ...*Tool) *Registry {
	for _, t := range tools {
		r.MustRegister(t)
	}
	return r
}

// Func creates a tool with a parameter schema derived from the typed
// handler's argument struct. Panics if derivation fails.
//
// Example:
//
//	type WeatherArgs struct {
//	    Location string `json:"location" desc:"City name"`
//	}
//
//	t := tool.Func("weather", "Get current weather",
//	    func(ctx context.Context, args WeatherArgs) (any, error) {
//	        return getWeather(args.Location), nil
//	    })
func Func[T any](name, description string, fn TypedHandler[T], opts ...Option) *Tool {
	params := schema.MustFor[T]()
	handler := func(ctx context.Context, args map[string]any) (any, error) {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, err
		}
		var typed T
		if err := json.Unmarshal(data, &typed); err != nil {
			return nil, err
		}
		return fn(ctx, typed)
	}
	return New(name, description, params, append([]Option{WithHandler(handler)}, opts...)...)
}

// RegisterFunc derives a schema from T and registers the tool in one step.
// Returns an error if derivation or registration fails.
func RegisterFunc[T any](r *Registry, name, description string, fn TypedHandler[T], opts ...Option) error {
	if _, err := schema.For[T](); err != nil {
		return err
	}
	return r.Register(Func(name, description, fn, opts...))
}
