package doc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Doc comment markers.
const (
	// LineMarker starts every line of a line-style inner doc comment.
	LineMarker = "//!"
	// BlockMarker opens a block-style inner doc comment.
	BlockMarker = "/*!"

	commentOpen  = "/*"
	commentClose = "*/"
)

// Sentinel errors returned by [Load].
var (
	ErrMixedCommentStyle = errors.New("cannot mix line and block doc comments")
	ErrReadInput         = errors.New("read input")
	ErrInvalidUTF8       = errors.New("invalid utf-8")
)

// Style is the comment style of a doc block.
type Style int

// Comment styles. [StyleNone] is the state before any doc marker is seen.
const (
	StyleNone Style = iota
	StyleLine
	StyleBlock
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleLine:
		return "line"
	case StyleBlock:
		return "block"
	}

	return fmt.Sprintf("Style(%d)", int(s))
}

// Block is the raw crate documentation found by [Load].
//
// Lines keep their comment markers. For [StyleBlock] only the first line
// carries the [BlockMarker]; the closing marker and anything after it have
// already been cut off.
type Block struct {
	Lines []string
	Style Style
}

// Empty reports whether no documentation was found.
func (b *Block) Empty() bool {
	return b == nil || len(b.Lines) == 0
}

// Load reads r up to the end of the first inner doc comment and returns its
// raw lines.
//
// Lines before the doc comment are skipped. A line-style block ends at the
// first line not starting with [LineMarker]; a [BlockMarker] line at that
// point is [ErrMixedCommentStyle]. A block-style comment ends at the "*/"
// that balances its opener, so nested "/* */" pairs are kept as content.
//
// If r holds no doc comment, Load returns an empty [Block] and no error.
func Load(r io.Reader) (*Block, error) {
	lr := newLineReader(r)
	block := &Block{Style: StyleNone}

	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return block, nil
		}

		switch {
		case strings.HasPrefix(line, LineMarker):
			block.Style = StyleLine
			block.Lines = append(block.Lines, line)
			err = loadLineStyle(lr, block)

		case strings.HasPrefix(line, BlockMarker):
			block.Style = StyleBlock
			err = loadBlockStyle(lr, block, line)

		default:
			continue
		}

		if err != nil {
			return nil, err
		}

		return block, nil
	}
}

func loadLineStyle(lr *lineReader, block *Block) error {
	for {
		line, ok, err := lr.next()
		if err != nil || !ok {
			return err
		}

		switch {
		case strings.HasPrefix(line, LineMarker):
			block.Lines = append(block.Lines, line)
		case strings.HasPrefix(line, BlockMarker):
			return fmt.Errorf("%w: line %d", ErrMixedCommentStyle, lr.n)
		default:
			return nil
		}
	}
}

func loadBlockStyle(lr *lineReader, block *Block, opener string) error {
	var depth int

	// The opener is scanned past its marker, so "/*!" itself is not nesting.
	if end, closed := closeIndex(opener[len(BlockMarker):], &depth); closed {
		block.Lines = append(block.Lines, opener[:len(BlockMarker)+end])

		return nil
	}

	block.Lines = append(block.Lines, opener)

	for {
		line, ok, err := lr.next()
		if err != nil || !ok {
			return err
		}

		end, closed := closeIndex(line, &depth)
		if !closed {
			block.Lines = append(block.Lines, line)

			continue
		}

		if rest := line[:end]; strings.TrimSpace(rest) != "" {
			block.Lines = append(block.Lines, rest)
		}

		return nil
	}
}

// closeIndex returns the offset of the "*/" that closes the doc comment.
// Every "/*" and "*/" before it adjusts depth, which carries across lines.
func closeIndex(s string, depth *int) (int, bool) {
	for i := 0; i+1 < len(s); {
		switch s[i : i+2] {
		case commentOpen:
			*depth++
			i += 2

		case commentClose:
			*depth--
			if *depth < 0 {
				return i, true
			}

			i += 2

		default:
			i++
		}
	}

	return 0, false
}

// lineReader pulls one line at a time so [Load] never reads past the end of
// the doc comment.
type lineReader struct {
	r    *bufio.Reader
	n    int
	done bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line without its line ending. ok is false once the
// input is exhausted.
func (lr *lineReader) next() (string, bool, error) {
	if lr.done {
		return "", false, nil
	}

	line, err := lr.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		lr.done = true

		if line == "" {
			return "", false, nil
		}
	}

	lr.n++

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !utf8.ValidString(line) {
		return "", false, fmt.Errorf("%w: line %d: %w", ErrReadInput, lr.n, ErrInvalidUTF8)
	}

	return line, true, nil
}
