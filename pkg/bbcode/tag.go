// tag.go defines tag descriptors and the renderer contract they carry.
package bbcode

import "strings"

// RootTag is the synthetic tag name standing for the document root. Top-level
// tags are checked against it as their parent.
const RootTag = "bbcode"

// TagRenderer computes the HTML fragments placed around a tag's content.
// params is the raw parameter string including its leading "=" or space
// (empty when the tag has none). content is the already rendered inner HTML.
//
// Implementations must be total: a malformed parameter falls back to a safe
// default instead of failing.
type TagRenderer interface {
	OpenTag(params, content string) string
	CloseTag(params, content string) string
}

// TagFuncs adapts a pair of plain functions to TagRenderer. A nil function
// renders as the empty string.
type TagFuncs struct {
	Open  func(params, content string) string
	Close func(params, content string) string
}

// OpenTag implements TagRenderer.
func (f TagFuncs) OpenTag(params, content string) string {
	if f.Open == nil {
		return ""
	}
	return f.Open(params, content)
}

// CloseTag implements TagRenderer.
func (f TagFuncs) CloseTag(params, content string) string {
	if f.Close == nil {
		return ""
	}
	return f.Close(params, content)
}

type staticRenderer struct {
	open, close string
}

func (s staticRenderer) OpenTag(string, string) string  { return s.open }
func (s staticRenderer) CloseTag(string, string) string { return s.close }

// StaticTag returns a TagRenderer that always emits the given markup.
func StaticTag(open, close string) TagRenderer {
	return staticRenderer{open: open, close: close}
}

// Tag describes how one BBCode tag renders and where it may appear.
type Tag struct {
	Name     string      // canonical name, matched case-insensitively
	Renderer TagRenderer // open/close markup

	HideContent     bool // drop the rendered content, keep only open+close (e.g. [img])
	NoParse         bool // content is emitted verbatim, nested tags are not expanded
	StripLineBreaks bool // remove CR/LF from the content before emission

	AllowedChildren []string // empty means any child is allowed
	AllowedParents  []string // empty means any parent is allowed
}

// allowsChild reports whether name may be nested directly inside t.
func (t *Tag) allowsChild(name string) bool {
	return len(t.AllowedChildren) == 0 || containsFold(t.AllowedChildren, name)
}

// allowsParent reports whether name may directly enclose t.
func (t *Tag) allowsParent(name string) bool {
	return len(t.AllowedParents) == 0 || containsFold(t.AllowedParents, name)
}

func containsFold(list []string, name string) bool {
	for _, s := range list {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// isValidTagNameChar returns true if b is valid in a tag name.
func isValidTagNameChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-' || b == '_'
}

func isValidTagName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isValidTagNameChar(name[i]) {
			return false
		}
	}
	return true
}
