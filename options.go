package enummap

const (
	DefaultToPrefix   = "to_"
	DefaultFromPrefix = "from_"
)

// Options controls operation naming and lookup policy.
type Options struct {
	ToPrefix   string // forward accessor prefix, "to_" by default
	FromPrefix string // reverse lookup prefix, "from_" by default
	// AllowOverride keeps pre-existing operations instead of failing with a
	// CollisionError. Generated operations never replace explicit ones.
	AllowOverride bool
	// MultipleFrom makes reverse lookups return every matching member.
	MultipleFrom bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{ToPrefix: DefaultToPrefix, FromPrefix: DefaultFromPrefix}
}

// Option mutates Options.
type Option func(*Options)

func WithToPrefix(p string) Option   { return func(o *Options) { o.ToPrefix = p } }
func WithFromPrefix(p string) Option { return func(o *Options) { o.FromPrefix = p } }

func WithAllowOverride(allow bool) Option {
	return func(o *Options) { o.AllowOverride = allow }
}

func WithMultipleFrom(multiple bool) Option {
	return func(o *Options) { o.MultipleFrom = multiple }
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Validate checks both prefixes.
func (o Options) Validate() error {
	if err := validatePrefix(o.ToPrefix); err != nil {
		return err
	}
	return validatePrefix(o.FromPrefix)
}
