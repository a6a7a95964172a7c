package summary

import (
	"slices"
	"strings"

	"github.com/go-faster/errors"

	"github.com/yacchi/textrank/internal/rank"
)

// Ranking methods.
const (
	MethodTextRank = "textrank"
	MethodLexRank  = "lexrank"
)

// Output orders.
const (
	OrderDocument = "document"
	OrderScore    = "score"
)

// DefaultFraction is the share of units kept in a summary.
const DefaultFraction = 0.2

// ErrUnknownMethod is returned for a ranking method other than textrank or lexrank.
var ErrUnknownMethod = errors.New("unknown summary method")

// Options controls one summarization run.
type Options struct {
	Method       string
	Fraction     float64
	MaxSentences int
	Order        string
	Normalize    bool

	Damping         float64
	Tolerance       float64
	MaxIterations   int
	IncludeIsolated bool

	Locale    string
	Stopwords []string
	Stem      bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Method:        MethodTextRank,
		Fraction:      DefaultFraction,
		Order:         OrderDocument,
		Normalize:     true,
		Damping:       rank.DefaultDamping,
		Tolerance:     rank.DefaultTolerance,
		MaxIterations: rank.DefaultMaxIterations,
		Locale:        "en",
	}
}

// Validate checks option ranges and fills zero values with defaults.
func (o *Options) Validate() error {
	def := DefaultOptions()
	o.Method = strings.ToLower(strings.TrimSpace(o.Method))
	if o.Method == "" {
		o.Method = def.Method
	}
	if !slices.Contains([]string{MethodTextRank, MethodLexRank}, o.Method) {
		return errors.Wrapf(ErrUnknownMethod, "%q", o.Method)
	}

	o.Order = strings.ToLower(strings.TrimSpace(o.Order))
	if o.Order == "" {
		o.Order = def.Order
	}
	if o.Order != OrderDocument && o.Order != OrderScore {
		return errors.Wrapf(rank.ErrInvalidOption, "order %q must be %q or %q", o.Order, OrderDocument, OrderScore)
	}

	if o.Fraction == 0 {
		o.Fraction = def.Fraction
	}
	if !(o.Fraction > 0 && o.Fraction <= 1) {
		return errors.Wrapf(rank.ErrInvalidOption, "fraction %v must be in (0, 1]", o.Fraction)
	}
	if o.MaxSentences < 0 {
		return errors.Wrapf(rank.ErrInvalidOption, "max sentences %d must not be negative", o.MaxSentences)
	}

	if o.Damping == 0 {
		o.Damping = def.Damping
	}
	if o.Tolerance == 0 {
		o.Tolerance = def.Tolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = def.MaxIterations
	}
	return nil
}

// stemLanguages maps ISO 639 base languages to snowball stemmer names.
var stemLanguages = map[string]string{
	"en": "english",
	"fr": "french",
	"es": "spanish",
	"ru": "russian",
	"sv": "swedish",
	"no": "norwegian",
	"nb": "norwegian",
	"hu": "hungarian",
}
