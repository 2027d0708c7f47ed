package relay

// Option configures a Registry.
type Option func(*config)

type config struct {
	// capacity preallocates the node arena.
	capacity int

	// unique makes Connect skip a (signal, slot) pair that is already connected.
	unique bool

	// debugf receives a trace line for every mutation and emission.
	debugf func(format string, args ...any)
}

func defaultConfig() config {
	return config{
		capacity: 64,
	}
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithUniqueConnections makes connecting an already connected
// (emitter, signal, receiver, slot) tuple a no-op instead of adding a second
// invocation.
func WithUniqueConnections() Option {
	return func(c *config) {
		c.unique = true
	}
}

// WithDebugf installs a printf style tracer, log.Printf fits.
func WithDebugf(fn func(format string, args ...any)) Option {
	return func(c *config) {
		c.debugf = fn
	}
}
