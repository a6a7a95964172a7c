package segment

import (
	"io"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/yacchi/textrank/internal/rank"
)

// Page is one raw-text document.
type Page struct {
	ID   string
	Text string
}

// ChunkedPage is a document whose units were chunked by the caller.
type ChunkedPage struct {
	ID     string   `yaml:"id" json:"id"`
	Chunks []string `yaml:"chunks" json:"chunks"`
}

// ChunkFile is the on-disk form of pre-chunked input (YAML or JSON).
type ChunkFile struct {
	Pages []ChunkedPage `yaml:"pages" json:"pages"`
}

// Units segments every page and returns the units that keep at least one
// word. OriginalIndex is the sentence position within its page.
func Units(pages []Page, seg Segmenter, tok *rank.Tokenizer) []rank.Unit {
	var out []rank.Unit
	for _, page := range pages {
		for i, sentence := range seg.Segment(page.Text) {
			u := tok.NewUnit(sentence, i, page.ID)
			if u.Length() == 0 {
				continue
			}
			out = append(out, u)
		}
	}
	return out
}

// ChunkUnits turns caller-supplied chunks into units; OriginalIndex is the
// chunk position within its page. Chunks without words are dropped.
func ChunkUnits(pages []ChunkedPage, tok *rank.Tokenizer) []rank.Unit {
	var out []rank.Unit
	for _, page := range pages {
		for i, chunk := range page.Chunks {
			u := tok.NewUnit(chunk, i, page.ID)
			if u.Text == "" || u.Length() == 0 {
				continue
			}
			out = append(out, u)
		}
	}
	return out
}

// LoadChunks reads a chunk file. JSON is accepted as it is valid YAML.
func LoadChunks(r io.Reader) ([]ChunkedPage, error) {
	var file ChunkFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode chunk file")
	}
	return file.Pages, nil
}
