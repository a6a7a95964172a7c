package rank

// defaultStopwords は英語の一般的なストップワード
var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "almost", "alone", "along",
	"already", "also", "although", "always", "am", "among", "an", "and", "another", "any",
	"anybody", "anyone", "anything", "anywhere", "are", "aren't", "around", "as", "at", "be",
	"became", "because", "become", "becomes", "been", "before", "behind", "being", "below", "between",
	"both", "but", "by", "can", "can't", "cannot", "could", "couldn't", "did", "didn't",
	"do", "does", "doesn't", "doing", "don't", "down", "during", "each", "either", "else",
	"enough", "etc", "even", "ever", "every", "few", "for", "from", "further", "had",
	"hadn't", "has", "hasn't", "have", "haven't", "having", "he", "he'd", "he'll", "he's",
	"her", "here", "here's", "hers", "herself", "him", "himself", "his", "how", "how's",
	"however", "i", "i'd", "i'll", "i'm", "i've", "if", "in", "into", "is",
	"isn't", "it", "it's", "its", "itself", "just", "least", "less", "let's", "like",
	"many", "may", "me", "might", "more", "most", "much", "must", "mustn't", "my",
	"myself", "neither", "never", "no", "nor", "not", "now", "of", "off", "often",
	"on", "once", "only", "or", "other", "others", "ought", "our", "ours", "ourselves",
	"out", "over", "own", "per", "perhaps", "rather", "same", "shall", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "since", "so", "some", "somebody", "someone",
	"something", "sometimes", "somewhere", "still", "such", "than", "that", "that's", "the", "their",
	"theirs", "them", "themselves", "then", "there", "there's", "these", "they", "they'd", "they'll",
	"they're", "they've", "this", "those", "though", "through", "thus", "to", "too", "toward",
	"towards", "under", "until", "up", "upon", "us", "very", "was", "wasn't", "we",
	"we'd", "we'll", "we're", "we've", "were", "weren't", "what", "what's", "whatever", "when",
	"when's", "where", "where's", "whether", "which", "while", "who", "who's", "whoever", "whom",
	"whose", "why", "why's", "will", "with", "within", "without", "won't", "would", "wouldn't",
	"yet", "you", "you'd", "you'll", "you're", "you've", "your", "yours", "yourself", "yourselves",
}

// DefaultStopwords returns a copy of the built-in stopword list.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}
