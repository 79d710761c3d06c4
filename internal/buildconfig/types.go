package buildconfig

// Delimiters is an ordered open/close marker pair bounding an expression.
type Delimiters [2]string

// Open returns the opening marker.
func (d Delimiters) Open() string { return d[0] }

// Close returns the closing marker.
func (d Delimiters) Close() string { return d[1] }

// Expressions configures the engine's expression interpolation pass.
type Expressions struct {
	Delimiters         Delimiters
	UnescapeDelimiters Delimiters
}

// PostHTML groups the HTML post-processing settings.
type PostHTML struct {
	Expressions Expressions
}

// Destination describes where built templates are written.
type Destination struct {
	Path string
}

// Templates holds the template source directory and build destination.
type Templates struct {
	Source      string
	Destination Destination
}

// Build aggregates the settings the engine uses to drive a build.
type Build struct {
	PostHTML  PostHTML
	Templates Templates
}

// BuildConfig is the root settings structure handed to the build engine.
// Year is evaluated by the caller; it is never precomputed.
type BuildConfig struct {
	Build  Build
	Albums []int
	Tags   []string
	Year   func() int
}
