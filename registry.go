package picofmt

import "sync"

// Handler renders a directive whose specifier is not built in. st is fully
// parsed, with any '*' width and precision already read from the cursor.
// The handler emits through ctx and may consume further arguments from
// ctx.Args().
type Handler func(ctx *Context, st State)

// Registry maps specifier characters to extension handlers. It has no
// internal locking: finish registering before rendering concurrently.
type Registry struct {
	handlers [256]Handler
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds h to specifier c, replacing any earlier binding. Binding a
// built-in specifier is allowed but has no effect on rendering.
func (r *Registry) Register(c byte, h Handler) {
	r.handlers[c] = h
}

// Unregister removes the binding for c.
func (r *Registry) Unregister(c byte) {
	r.handlers[c] = nil
}

// Lookup returns the handler bound to c, or nil.
func (r *Registry) Lookup(c byte) Handler {
	if r == nil {
		return nil
	}
	return r.handlers[c]
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by the
// package-level functions.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register binds h to c in the [DefaultRegistry].
func Register(c byte, h Handler) {
	DefaultRegistry().Register(c, h)
}
