package picofmt

import "sync"

// Option configures a Printer.
type Option func(*Printer) error

// Printer renders format strings under one [Config] and [Registry]. A
// Printer is safe for concurrent use as long as its registry is not
// modified at the same time.
type Printer struct {
	config   Config
	registry *Registry
}

// New creates a Printer with [DefaultConfig], the [DefaultRegistry] and the
// given options.
func New(opts ...Option) (*Printer, error) {
	p := &Printer{
		config:   DefaultConfig(),
		registry: DefaultRegistry(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if err := p.config.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Config returns a copy of the printer's configuration.
func (p *Printer) Config() Config { return p.config }

// Registry returns the printer's extension registry.
func (p *Printer) Registry() *Registry { return p.registry }

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(p *Printer) error {
		p.config = cfg
		return nil
	}
}

// WithRegistry sets the extension registry. A nil registry disables
// extensions.
func WithRegistry(r *Registry) Option {
	return func(p *Printer) error {
		p.registry = r
		return nil
	}
}

// WithModel sets the target data model.
func WithModel(m Model) Option {
	return func(p *Printer) error {
		p.config.Model = m
		return nil
	}
}

// WithFloat enables or disables %f and, with it, %e and %g.
func WithFloat(on bool) Option {
	return func(p *Printer) error {
		p.config.Float = on
		if !on {
			p.config.Exponential = false
		}
		return nil
	}
}

// WithExponential enables or disables %e and %g.
func WithExponential(on bool) Option {
	return func(p *Printer) error {
		p.config.Exponential = on
		return nil
	}
}

// WithDefaultPrecision sets the precision used by float conversions that
// do not give one.
func WithDefaultPrecision(n int) Option {
	return func(p *Printer) error {
		p.config.DefaultPrecision = n
		return nil
	}
}

// WithMaxFloat sets the %f ceiling.
func WithMaxFloat(v float64) Option {
	return func(p *Printer) error {
		p.config.MaxFloat = v
		return nil
	}
}

// WithBufferSizes sets the integer and fixed-point buffer capacities.
func WithBufferSizes(ntoa, ftoa int) Option {
	return func(p *Printer) error {
		p.config.NtoaBufferSize = ntoa
		p.config.FtoaBufferSize = ftoa
		return nil
	}
}

var (
	defaultPrinter     *Printer
	defaultPrinterOnce sync.Once
)

// Default returns the Printer behind the package-level functions.
func Default() *Printer {
	defaultPrinterOnce.Do(func() {
		defaultPrinter = &Printer{
			config:   DefaultConfig(),
			registry: DefaultRegistry(),
		}
	})
	return defaultPrinter
}

// Render writes format to sink, pulling arguments from args, and returns the
// number of characters produced, including any the sink refused. A nil sink
// only counts.
func (p *Printer) Render(sink Sink, format string, args *Args) int {
	n, _ := p.renderErr(sink, format, args)
	return n
}

// renderErr is Render that also reports the first sink error.
func (p *Printer) renderErr(sink Sink, format string, args *Args) (int, error) {
	ctx := Context{sink: sink, args: args, cfg: &p.config}
	p.render(&ctx, format)
	return ctx.n, ctx.err
}
