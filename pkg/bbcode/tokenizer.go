// tokenizer.go implements tokenization for [tag]...[/tag] bracket syntax.
package bbcode

import (
	"strings"
)

// scanner holds per-call tokenizer state.
type scanner struct {
	input string

	// closeAt caches the last ']' found by nextClose; noCloseFrom is the
	// offset from which no ']' remains, or -1 while unknown.
	closeAt     int
	noCloseFrom int
}

// nextClose returns the index of the first ']' at or after from, or -1.
// Calls must use non-decreasing offsets, which keeps the total work linear.
func (s *scanner) nextClose(from int) int {
	if s.closeAt >= from {
		return s.closeAt
	}
	if s.noCloseFrom >= 0 && from >= s.noCloseFrom {
		return -1
	}
	idx := strings.IndexByte(s.input[from:], ']')
	if idx < 0 {
		s.noCloseFrom = from
		return -1
	}
	s.closeAt = from + idx
	return s.closeAt
}

// tokenize scans input for bracket tag syntax and returns a token stream.
// Recognized forms:
//   - [tag], [tag=value], [tag key=value ...] - open tag
//   - [/tag] - close tag
//
// Only registered tag names produce tag tokens. Everything else, including
// brackets that are not part of a tag, is escaped into text tokens.
// No-parse regions are folded into a single text token afterwards.
//
// Open tags are counted before folding, so tags inside no-parse regions count
// too. More than maxTags of them is an ErrLimitExceeded; maxTags <= 0 means
// no limit.
func (tt *tagTable) tokenize(input string, maxTags int) ([]token, error) {
	sc := &scanner{input: input, closeAt: -1, noCloseFrom: -1}
	opens := 0
	var tokens []token
	var text strings.Builder
	textStart := 0

	flushText := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{
				typ:  tokenText,
				text: text.String(),
				pos:  textStart,
			})
			text.Reset()
		}
	}

	pos := 0
	for pos < len(input) {
		if input[pos] == '[' {
			if tok, endPos, ok := tt.parseTag(sc, pos); ok {
				if tok.typ == tokenOpen {
					opens++
					if maxTags > 0 && opens > maxTags {
						return nil, limitError("tag count", maxTags, tok.pos)
					}
				}
				flushText()
				tokens = append(tokens, tok)
				pos = endPos
				textStart = pos
				continue
			}
		}
		// Not a tag: escape this byte as text
		escapeText(&text, input[pos:pos+1])
		pos++
	}
	flushText()

	return tt.foldNoParse(tokens), nil
}

// parseTag attempts to parse a tag token starting at pos.
// Returns the token, the position after the tag, and whether a registered
// tag was found.
func (tt *tagTable) parseTag(sc *scanner, pos int) (token, int, bool) {
	input := sc.input
	startPos := pos
	pos++ // skip '['

	// Check for close tag [/tag]
	isCloseTag := false
	if pos < len(input) && input[pos] == '/' {
		isCloseTag = true
		pos++
	}

	// Parse tag name
	nameStart := pos
	for pos < len(input) && isValidTagNameChar(input[pos]) {
		pos++
	}
	if pos == nameStart || pos >= len(input) {
		return token{}, startPos, false
	}
	name := input[nameStart:pos]
	if _, known := tt.lookup(name); !known {
		return token{}, startPos, false
	}

	// Close tags allow nothing between the name and ']'
	if isCloseTag {
		if input[pos] != ']' {
			return token{}, startPos, false
		}
		pos++
		return token{
			typ:  tokenClose,
			name: strings.ToLower(name),
			text: input[startPos:pos],
			pos:  startPos,
		}, pos, true
	}

	var params string
	switch input[pos] {
	case ']':
		pos++
	case '=', ' ':
		// Parameters run to the first ']'
		end := sc.nextClose(pos)
		if end < 0 {
			return token{}, startPos, false
		}
		params = escapeString(input[pos:end])
		pos = end + 1
	default:
		return token{}, startPos, false
	}

	return token{
		typ:    tokenOpen,
		name:   strings.ToLower(name),
		params: params,
		text:   "[" + name + params + "]",
		pos:    startPos,
	}, pos, true
}

// foldNoParse turns everything between a no-parse open tag and its first
// matching close tag into one text token whose brackets are encoded, so the
// matcher never sees the nested tags.
// An open tag without a matching close is left as is.
func (tt *tagTable) foldNoParse(tokens []token) []token {
	closeIdx := nextCloseIndex(tokens)

	out := make([]token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		out = append(out, tok)
		if tok.typ != tokenOpen || !tt.isNoParse(tok.name) || closeIdx[i] < 0 {
			continue
		}

		end := closeIdx[i]
		var body strings.Builder
		for _, inner := range tokens[i+1 : end] {
			if inner.typ == tokenText {
				body.WriteString(inner.text)
			} else {
				body.WriteString(encodeBrackets(inner.text))
			}
		}
		if body.Len() > 0 {
			out = append(out, token{
				typ:  tokenText,
				text: body.String(),
				pos:  tokens[i+1].pos,
			})
		}
		out = append(out, tokens[end])
		i = end
	}
	return out
}

// nextCloseIndex returns, for every open token, the index of the first later
// close token with the same name, or -1. Other entries are -1.
func nextCloseIndex(tokens []token) []int {
	idx := make([]int, len(tokens))
	nearest := make(map[string]int)
	for i := len(tokens) - 1; i >= 0; i-- {
		idx[i] = -1
		switch tokens[i].typ {
		case tokenOpen:
			if j, ok := nearest[tokens[i].name]; ok {
				idx[i] = j
			}
		case tokenClose:
			nearest[tokens[i].name] = i
		}
	}
	return idx
}
