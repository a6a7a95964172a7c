package segment

import (
	"sync"

	"github.com/ikawaha/kagome/tokenizer"
)

var (
	kagomeOnce sync.Once
	kagome     tokenizer.Tokenizer
)

// 内容語として残す品詞
var contentPOS = map[string]struct{}{
	"名詞":  {},
	"動詞":  {},
	"形容詞": {},
	"副詞":  {},
}

// JapaneseWords splits Japanese text into content words (nouns, verbs,
// adjectives, adverbs) with the kagome morphological analyzer. Verbs and
// adjectives are returned in their dictionary form.
func JapaneseWords(text string) []string {
	kagomeOnce.Do(func() {
		kagome = tokenizer.New()
	})

	var words []string
	for _, token := range kagome.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		if len(features) == 0 {
			continue
		}
		if _, ok := contentPOS[features[0]]; !ok {
			continue
		}
		word := token.Surface
		// IPA辞書の7番目の素性が基本形（"*" は未登録語）
		if len(features) > 6 && features[6] != "*" {
			word = features[6]
		}
		words = append(words, word)
	}
	return words
}
