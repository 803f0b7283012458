package callout

import (
	"regexp"
	"strings"
	"unicode"
)

const fence = ":::"

var reOpen = regexp.MustCompile(`^:::(\w+)(?:\s+(.*))?$`)

type line struct {
	text string
	eol  string
}

// splitLines cuts document into lines, each remembering its own terminator
// so the document can be reassembled byte for byte.
func splitLines(document string) []line {
	var lines []line

	for len(document) > 0 {
		idx := strings.IndexByte(document, '\n')
		if idx < 0 {
			lines = append(lines, line{text: document})

			break
		}

		text, eol := document[:idx], "\n"
		if strings.HasSuffix(text, "\r") {
			text, eol = text[:len(text)-1], "\r\n"
		}

		lines = append(lines, line{text: text, eol: eol})
		document = document[idx+1:]
	}

	return lines
}

func joinLines(lines []line) string {
	var buff strings.Builder

	for _, ln := range lines {
		buff.WriteString(ln.text)
		buff.WriteString(ln.eol)
	}

	return buff.String()
}

type fenceKind int

const (
	notFence fenceKind = iota
	openFence
	closeFence
	unknownFence
	malformedFence
)

// matchFence classifies a line. Only trailing whitespace is ignored.
func matchFence(text string) (fenceKind, Type, string) {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)

	if trimmed == fence {
		return closeFence, "", ""
	}

	subs := reOpen.FindStringSubmatch(trimmed)
	if subs == nil {
		if strings.HasPrefix(trimmed, fence) {
			return malformedFence, "", ""
		}

		return notFence, "", ""
	}

	typ, ok := ParseType(subs[1])
	if !ok {
		return unknownFence, "", ""
	}

	return openFence, typ, subs[2]
}

type state int

const (
	outsideBlock state = iota
	insideBlock
)

// handler receives the outcome of a scan in document order. Lines that do not
// belong to a closed block are passed to text; an unterminated block replays
// its opening fence and body through text.
type handler interface {
	text(ln line)
	block(b *Block, open, end line, body []line) error
	issue(is Issue)
}

func scan(document string, h handler) error {
	lines := splitLines(document)

	var (
		current = outsideBlock
		open    int
		typ     Type
		title   string
	)

	for idx, ln := range lines {
		kind, t, ttl := matchFence(ln.text)

		if current == insideBlock {
			if kind != closeFence {
				continue
			}

			body := lines[open+1 : idx]
			block := &Block{
				Type:      typ,
				Title:     title,
				Body:      joinLines(body),
				StartLine: open + 1,
				EndLine:   idx + 1,
			}

			if err := h.block(block, lines[open], ln, body); err != nil {
				return err
			}

			current = outsideBlock

			continue
		}

		switch kind {
		case openFence:
			current, open, typ, title = insideBlock, idx, t, ttl

			continue
		case closeFence:
			h.issue(Issue{Line: idx + 1, Text: ln.text, Err: ErrStrayClose})
		case unknownFence:
			h.issue(Issue{Line: idx + 1, Text: ln.text, Err: ErrUnknownType})
		case malformedFence:
			h.issue(Issue{Line: idx + 1, Text: ln.text, Err: ErrMalformedFence})
		case notFence:
		}

		h.text(ln)
	}

	if current == insideBlock {
		h.issue(Issue{Line: open + 1, Text: lines[open].text, Err: ErrUnterminated})

		for _, ln := range lines[open:] {
			h.text(ln)
		}
	}

	return nil
}
