package rank

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer extracts the normalized word set of a unit.
// A Tokenizer is safe for concurrent use once built.
type Tokenizer struct {
	stopwords map[string]struct{}
	lang      language.Tag
	stemLang  string
	split     Splitter
}

// Splitter splits text into raw tokens before case folding and stopword removal.
type Splitter func(text string) []string

type tokenizerConfig struct {
	lang      language.Tag
	stopwords []string
	stemLang  string
	split     Splitter
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*tokenizerConfig)

// WithStopwords adds words to the default stopword list.
func WithStopwords(words ...string) TokenizerOption {
	return func(c *tokenizerConfig) {
		c.stopwords = append(c.stopwords, words...)
	}
}

// WithLanguage sets the language used for case folding.
func WithLanguage(tag language.Tag) TokenizerOption {
	return func(c *tokenizerConfig) {
		c.lang = tag
	}
}

// WithStemming stems every kept token with the snowball stemmer of lang
// ("english", "french", "russian", ...). Empty lang disables stemming.
func WithStemming(lang string) TokenizerOption {
	return func(c *tokenizerConfig) {
		c.stemLang = lang
	}
}

// WithSplitter replaces the default letter/digit splitter, e.g. with a
// morphological analyzer for languages written without spaces.
func WithSplitter(split Splitter) TokenizerOption {
	return func(c *tokenizerConfig) {
		c.split = split
	}
}

// NewTokenizer returns a tokenizer using the default stopword list.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	cfg := tokenizerConfig{lang: language.English, split: splitTokens}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.split == nil {
		cfg.split = splitTokens
	}

	t := &Tokenizer{
		stopwords: make(map[string]struct{}, len(defaultStopwords)+len(cfg.stopwords)),
		lang:      cfg.lang,
		stemLang:  cfg.stemLang,
		split:     cfg.split,
	}
	lower := cases.Lower(cfg.lang)
	for _, w := range defaultStopwords {
		t.stopwords[w] = struct{}{}
	}
	for _, w := range cfg.stopwords {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		t.stopwords[lower.String(w)] = struct{}{}
	}
	return t
}

var defaultTokenizer = NewTokenizer()

// Words returns the normalized word set of text.
func (t *Tokenizer) Words(text string) map[string]struct{} {
	// cases.Caser は状態を持つため呼び出しごとに生成する
	lower := cases.Lower(t.lang)
	words := make(map[string]struct{})
	for _, token := range t.split(norm.NFC.String(text)) {
		token = lower.String(token)
		if _, stop := t.stopwords[token]; stop {
			continue
		}
		if t.stemLang != "" {
			if stemmed, err := snowball.Stem(token, t.stemLang, true); err == nil && stemmed != "" {
				token = stemmed
			}
		}
		words[token] = struct{}{}
	}
	return words
}

// NewUnit builds a unit from already trimmed text.
func (t *Tokenizer) NewUnit(text string, originalIndex int, pageID string) Unit {
	text = strings.TrimSpace(text)
	return Unit{
		Text:          text,
		OriginalIndex: originalIndex,
		PageID:        pageID,
		words:         t.Words(text),
	}
}

// IsStopword reports whether word is removed by t.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[cases.Lower(t.lang).String(word)]
	return ok
}

// splitTokens は文字・数字・語中のアポストロフィ以外で分割する
func splitTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' && r != '’'
	})
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.ReplaceAll(f, "’", "'")
		f = strings.Trim(f, "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
