package buildconfig

import (
	"slices"
	"time"
)

const (
	templatesSource = "src/templates"
	destinationPath = "build_local"
	albumCount      = 5
)

var (
	expressionDelimiters = Delimiters{"[[", "]]"}
	unescapeDelimiters   = Delimiters{"[[[", "]]]"}

	defaultTags = []string{
		"rock",
		"alternative",
		"indie.rock",
		"drone",
		"new.york",
	}
)

type options struct {
	clock func() time.Time
}

// Option configures New.
type Option func(*options)

// WithClock overrides the time source read by Year, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// New builds the configuration. Each call returns an independent value.
func New(opts ...Option) BuildConfig {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	clock := o.clock

	return BuildConfig{
		Build: Build{
			PostHTML: PostHTML{
				Expressions: Expressions{
					Delimiters:         expressionDelimiters,
					UnescapeDelimiters: unescapeDelimiters,
				},
			},
			Templates: Templates{
				Source: templatesSource,
				Destination: Destination{
					Path: destinationPath,
				},
			},
		},
		Albums: albumIndices(albumCount),
		Tags:   slices.Clone(defaultTags),
		Year: func() int {
			return clock().Year()
		},
	}
}

// Default returns the configuration backed by the system clock.
func Default() BuildConfig {
	return New()
}

// TemplateData returns the variables exposed to templates during rendering.
// Year is invoked here.
func (c BuildConfig) TemplateData() map[string]any {
	data := map[string]any{
		"albums": slices.Clone(c.Albums),
		"tags":   slices.Clone(c.Tags),
	}
	if c.Year != nil {
		data["year"] = c.Year()
	}
	return data
}

func albumIndices(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return out
}
