// Package segment splits raw text into sentence units and reshapes
// pre-chunked pages into units.
package segment

import (
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/text/language"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// ErrUnsupportedLocale is returned for locale strings that cannot be parsed.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Segmenter splits text into an ordered list of trimmed, non-empty sentences.
type Segmenter interface {
	Segment(text string) []string
}

// New returns the segmenter for locale ("en", "en-US", "ja", ...).
// English uses a Punkt model; other languages use punctuation rules.
func New(locale string) (Segmenter, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	base, _ := tag.Base()
	if base.String() == "en" {
		return NewPunkt()
	}
	return RuleSegmenter{}, nil
}

// ParseLocale parses a BCP 47 tag. An empty locale means English.
func ParseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, errors.Wrapf(ErrUnsupportedLocale, "%q: %v", locale, err)
	}
	return tag, nil
}

// Punkt splits English text with the pretrained Punkt model.
type Punkt struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the English Punkt model.
func NewPunkt() (*Punkt, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, errors.Wrap(err, "load english sentence model")
	}
	return &Punkt{tokenizer: tokenizer}, nil
}

// Segment implements Segmenter.
func (p *Punkt) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	// 段落（空行）をまたいで文が結合されないよう段落ごとに分割する
	for _, para := range paragraphs(text) {
		for _, s := range p.tokenizer.Tokenize(para) {
			if t := strings.TrimSpace(s.Text); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

func paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return out
}
