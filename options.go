package yamldoc

const (
	defaultIndent = 2
)

// EncodingOptions configures the encoder. The zero value is not meant to be
// used directly; DefaultEncodingOptions returns the reference settings and
// Option functions derive variations from them.
type EncodingOptions struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// CommentWidth is the column at which comment text is wrapped onto
	// further "#" lines. Zero disables wrapping.
	CommentWidth int
}

// DefaultEncodingOptions returns the options used when Encode is called
// without any Option.
func DefaultEncodingOptions() EncodingOptions {
	return EncodingOptions{Indent: defaultIndent}
}

// Option modifies EncodingOptions.
type Option func(*EncodingOptions)

// Indent returns an Option that sets the number of spaces per nesting level.
// Values below 1 keep the default of 2.
func Indent(n int) Option {
	return func(o *EncodingOptions) {
		if n >= 1 {
			o.Indent = n
		}
	}
}

// WrapComments returns an Option that wraps comment text so that comment
// lines fit within width columns where word boundaries allow it.
// A width of 0 disables wrapping.
func WrapComments(width int) Option {
	return func(o *EncodingOptions) {
		if width >= 0 {
			o.CommentWidth = width
		}
	}
}

// WithOptions returns an Option that replaces the current settings with o.
func WithOptions(o EncodingOptions) Option {
	return func(dst *EncodingOptions) {
		*dst = o
		if dst.Indent < 1 {
			dst.Indent = defaultIndent
		}
	}
}

func newEncodingOptions(opts []Option) EncodingOptions {
	o := DefaultEncodingOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
