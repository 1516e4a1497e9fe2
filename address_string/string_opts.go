// The address_string package provides the wildcard options used when
// rendering address strings, as well as the builder types for creating them.
//
// WildcardsBuilder creates instances that implement Wildcards, and
// WildcardOptionsBuilder creates instances that implement WildcardOptions.
//
// Each instance created by the builder is immutable.
package address_string

// Wildcards determines the wildcards to use when constructing an address string.
// WildcardsBuilder can be used to create a Wildcards instance.
type Wildcards interface {
	// GetRangeSeparator returns the wildcard used to separate the lower and upper bound (inclusive) of a range of values.
	// If it is not specified, it defaults to RangeSeparatorStr, which is a hyphen '-'.
	GetRangeSeparator() string
	// GetWildcard returns the wildcard used to represent any legitimate value, which by default is an asterisk '*'.
	GetWildcard() string
	// GetSingleWildcard returns the wildcard used to represent any single digit, which by default is the underscore character '_'.
	GetSingleWildcard() string
}

type wildcards struct {
	rangeSeparator, wildcard, singleWildcard string //rangeSeparator cannot be empty, the other two can
}

// GetRangeSeparator returns the wildcard used to separate the lower and upper bound (inclusive) of a range of values.
// If it is not specified, it defaults to RangeSeparatorStr, which is a hyphen '-'.
func (wildcards *wildcards) GetRangeSeparator() string {
	return wildcards.rangeSeparator
}

// GetWildcard returns the wildcard used to represent any legitimate value, which by default is an asterisk '*'.
func (wildcards *wildcards) GetWildcard() string {
	return wildcards.wildcard
}

// GetSingleWildcard returns the wildcard used to represent any single digit, which by default is the underscore character '_'.
func (wildcards *wildcards) GetSingleWildcard() string {
	return wildcards.singleWildcard
}

// DefaultWildcards is the Wildcards instance used when none is specified:
// range separator '-', full-range wildcard '*', single-digit wildcard '_'.
var DefaultWildcards Wildcards = &wildcards{rangeSeparator: "-", wildcard: "*", singleWildcard: "_"}

// WildcardsBuilder builds a custom Wildcards value.
type WildcardsBuilder struct {
	wildcards
}

// SetRangeSeparator sets the string used between the lower and upper bound of a range.
func (b *WildcardsBuilder) SetRangeSeparator(str string) *WildcardsBuilder {
	b.rangeSeparator = str
	return b
}

// SetWildcard sets the string used to represent any legitimate segment value.
func (b *WildcardsBuilder) SetWildcard(str string) *WildcardsBuilder {
	b.wildcard = str
	return b
}

// SetSingleWildcard sets the string used to represent any single digit.
func (b *WildcardsBuilder) SetSingleWildcard(str string) *WildcardsBuilder {
	b.singleWildcard = str
	return b
}

// ToWildcards finalizes the builder into an immutable Wildcards, defaulting
// an empty range separator to the standard hyphen.
func (b *WildcardsBuilder) ToWildcards() Wildcards {
	w := b.wildcards
	if w.rangeSeparator == "" {
		w.rangeSeparator = "-"
	}
	return &w
}

// WildcardOptions controls how a string producer renders multi-valued
// segments: which Wildcards strings to use, and whether a full-range
// segment prefers the wildcard form over its numeric range form.
type WildcardOptions interface {
	GetWildcards() Wildcards
	PreferWildcards() bool
}

type wildcardOptions struct {
	wildcards       Wildcards
	preferWildcards bool
}

func (o *wildcardOptions) GetWildcards() Wildcards  { return o.wildcards }
func (o *wildcardOptions) PreferWildcards() bool    { return o.preferWildcards }

// WildcardOptionsBuilder builds a custom WildcardOptions value.
type WildcardOptionsBuilder struct {
	options wildcardOptions
}

// SetWildcards sets the Wildcards strings to render with.
func (b *WildcardOptionsBuilder) SetWildcards(w Wildcards) *WildcardOptionsBuilder {
	b.options.wildcards = w
	return b
}

// SetPreferWildcards sets whether a full-range segment renders as its
// wildcard string rather than its numeric lower-upper range.
func (b *WildcardOptionsBuilder) SetPreferWildcards(prefer bool) *WildcardOptionsBuilder {
	b.options.preferWildcards = prefer
	return b
}

// ToOptions finalizes the builder into an immutable WildcardOptions,
// defaulting to DefaultWildcards if none was set.
func (b *WildcardOptionsBuilder) ToOptions() WildcardOptions {
	o := b.options
	if o.wildcards == nil {
		o.wildcards = DefaultWildcards
	}
	return &o
}
