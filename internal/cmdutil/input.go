package cmdutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yacchi/textrank/internal/rank"
	"github.com/yacchi/textrank/internal/segment"
	"github.com/yacchi/textrank/internal/summary"
)

// ErrNoInput は入力ファイルも標準入力のパイプもない場合に返す
var ErrNoInput = errors.New("no input: pass files or pipe text on stdin")

// StdinPageID は標準入力から読んだページのID
const StdinPageID = "stdin"

type source struct {
	id   string
	data []byte
}

// readSources は引数のファイル（"-" は標準入力）を読み込む
// 引数がなければ標準入力を読む
func readSources(args []string, stdin io.Reader) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var out []source
	for _, arg := range args {
		if arg == "-" {
			if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return nil, ErrNoInput
			}
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, errors.Wrap(err, "read stdin")
			}
			out = append(out, source{id: StdinPageID, data: data})
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", arg)
		}
		out = append(out, source{id: filepath.Base(arg), data: data})
	}
	return out, nil
}

// ReadPages は入力を要約対象のページに変換する
// pagePerFile が false の場合、全入力を空行で連結した1ページにする
func ReadPages(args []string, stdin io.Reader, pagePerFile bool) ([]segment.Page, error) {
	sources, err := readSources(args, stdin)
	if err != nil {
		return nil, err
	}

	if pagePerFile {
		pages := make([]segment.Page, len(sources))
		for i, s := range sources {
			pages[i] = segment.Page{ID: s.id, Text: string(s.data)}
		}
		return pages, nil
	}

	texts := make([]string, len(sources))
	for i, s := range sources {
		texts[i] = string(s.data)
	}
	return []segment.Page{{Text: strings.Join(texts, "\n\n")}}, nil
}

// ReadChunks はチャンクファイル（YAML / JSON）を読み込む
func ReadChunks(args []string, stdin io.Reader) ([]segment.ChunkedPage, error) {
	sources, err := readSources(args, stdin)
	if err != nil {
		return nil, err
	}

	var pages []segment.ChunkedPage
	for _, s := range sources {
		loaded, err := segment.LoadChunks(bytes.NewReader(s.data))
		if err != nil {
			return nil, errors.Wrapf(err, "%s", s.id)
		}
		pages = append(pages, loaded...)
	}
	return pages, nil
}

// Input はコマンドが読み込んだ要約対象
// Chunked の場合は Chunks、そうでなければ Pages を使う
type Input struct {
	Chunked bool
	Pages   []segment.Page
	Chunks  []segment.ChunkedPage
}

// ReadInput は --chunks / --page-per-file フラグに従って入力を読み込む
func ReadInput(cmd *cobra.Command, args []string) (*Input, error) {
	if chunked, _ := cmd.Flags().GetBool("chunks"); chunked {
		chunks, err := ReadChunks(args, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return &Input{Chunked: true, Chunks: chunks}, nil
	}

	perFile, _ := cmd.Flags().GetBool("page-per-file")
	pages, err := ReadPages(args, cmd.InOrStdin(), perFile)
	if err != nil {
		return nil, err
	}
	return &Input{Pages: pages}, nil
}

// Units は入力をパイプラインで文単位に変換する
func (in *Input) Units(p *summary.Pipeline) []rank.Unit {
	if in.Chunked {
		return p.ChunkUnits(in.Chunks)
	}
	return p.Units(in.Pages)
}

// CacheKey は入力とオプションに対応するキャッシュキーを返す
func (in *Input) CacheKey(opts summary.Options) string {
	return SummaryCacheKey(opts, in.Chunked, in.Pages, in.Chunks)
}
