package buildconfig

import "encoding/json"

// wireConfig is the shape read by the build engine. Field names follow the
// engine's camelCase keys.
type wireConfig struct {
	Build  wireBuild `json:"build" yaml:"build"`
	Albums []int     `json:"albums" yaml:"albums"`
	Tags   []string  `json:"tags" yaml:"tags"`
	Year   *int      `json:"year,omitempty" yaml:"year,omitempty"`
}

type wireBuild struct {
	PostHTML  wirePostHTML  `json:"posthtml" yaml:"posthtml"`
	Templates wireTemplates `json:"templates" yaml:"templates"`
}

type wirePostHTML struct {
	Expressions wireExpressions `json:"expressions" yaml:"expressions"`
}

type wireExpressions struct {
	Delimiters         Delimiters `json:"delimiters" yaml:"delimiters,flow"`
	UnescapeDelimiters Delimiters `json:"unescapeDelimiters" yaml:"unescapeDelimiters,flow"`
}

type wireTemplates struct {
	Source      string          `json:"source" yaml:"source"`
	Destination wireDestination `json:"destination" yaml:"destination"`
}

type wireDestination struct {
	Path string `json:"path" yaml:"path"`
}

func (c BuildConfig) wire() wireConfig {
	w := wireConfig{
		Build: wireBuild{
			PostHTML: wirePostHTML{
				Expressions: wireExpressions{
					Delimiters:         c.Build.PostHTML.Expressions.Delimiters,
					UnescapeDelimiters: c.Build.PostHTML.Expressions.UnescapeDelimiters,
				},
			},
			Templates: wireTemplates{
				Source: c.Build.Templates.Source,
				Destination: wireDestination{
					Path: c.Build.Templates.Destination.Path,
				},
			},
		},
		Albums: c.Albums,
		Tags:   c.Tags,
	}
	if c.Year != nil {
		year := c.Year()
		w.Year = &year
	}
	if w.Albums == nil {
		w.Albums = []int{}
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	return w
}

// MarshalJSON renders the configuration, resolving Year at call time.
func (c BuildConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (c BuildConfig) MarshalYAML() (any, error) {
	return c.wire(), nil
}
