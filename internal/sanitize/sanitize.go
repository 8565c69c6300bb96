// Package sanitize provides an optional HTML post-pass for rendered BBCode.
//
// The engine already escapes raw markup in its input. The sanitizer guards
// against custom tag definitions (for example from the config file) that emit
// unsafe markup.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	classPattern    = regexp.MustCompile(`^xbbcode-[a-z0-9-]+(?: xbbcode-[a-z0-9-]+)*$`)
	colorPattern    = regexp.MustCompile(`(?i)^(?:[a-z]+|#[0-9a-f]{3}|#[0-9a-f]{6})$`)
	alignPattern    = regexp.MustCompile(`^(?:left|center|right)$`)
	blankPattern    = regexp.MustCompile(`^_blank$`)
	youtubePattern  = regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/embed/[-a-zA-Z0-9_]+(?:\?[-a-zA-Z0-9_=&]*)?$`)
	classElements   = []string{"span", "div", "pre", "code", "ul", "ol", "li", "blockquote", "table", "thead", "tr", "td"}
	iframeSizeAttrs = []string{"width", "height", "frameborder"}
)

// Sanitizer removes markup that the default tags never produce.
// It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New returns a sanitizer built on bluemonday's UGC policy, widened to keep
// the classes, colors and embeds of the default tags.
func New() *Sanitizer {
	p := bluemonday.UGCPolicy()

	p.AllowAttrs("class").Matching(classPattern).OnElements(classElements...)
	p.AllowStyles("color").Matching(colorPattern).OnElements("span")
	p.AllowAttrs("align").Matching(alignPattern).OnElements("div")
	p.AllowAttrs("target").Matching(blankPattern).OnElements("a")

	p.AllowElements("iframe")
	p.AllowAttrs(iframeSizeAttrs...).Matching(bluemonday.Integer).OnElements("iframe")
	p.AllowAttrs("src").Matching(youtubePattern).OnElements("iframe")
	p.AllowAttrs("allowfullscreen").OnElements("iframe")

	return &Sanitizer{policy: p}
}

// Sanitize returns html with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
