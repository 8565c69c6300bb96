// escape.go neutralizes raw HTML and encodes brackets that are not tag syntax.
package bbcode

import "strings"

// Placeholders for brackets that must survive rendering as literal text.
const (
	openBracketEntity  = "&#91;"
	closeBracketEntity = "&#93;"
)

// escapeText replaces < and > with entities and encodes [ and ] as numeric
// character references. & is left alone so existing entities pass through.
func escapeText(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '[':
			sb.WriteString(openBracketEntity)
		case ']':
			sb.WriteString(closeBracketEntity)
		default:
			sb.WriteByte(c)
		}
	}
}

// escapeString is escapeText for a standalone string.
func escapeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	escapeText(&sb, s)
	return sb.String()
}

// encodeBrackets encodes the structural brackets of already escaped tag text,
// turning a tag token into inert literal text.
var encodeBrackets = strings.NewReplacer("[", openBracketEntity, "]", closeBracketEntity).Replace

// restoreBrackets turns every bracket placeholder back into a literal bracket.
var restoreBrackets = strings.NewReplacer(openBracketEntity, "[", closeBracketEntity, "]").Replace

var crlfReplacer = strings.NewReplacer("\r\n", "<br/>", "\r", "<br/>", "\n", "<br/>")

// newlinesToBreaks converts \r\n, \r and \n into <br/> elements.
func newlinesToBreaks(s string) string {
	return crlfReplacer.Replace(s)
}

var lineBreakStripper = strings.NewReplacer("\r", "", "\n", "")

// stripLineBreaks removes every CR and LF from s.
func stripLineBreaks(s string) string {
	return lineBreakStripper.Replace(s)
}
