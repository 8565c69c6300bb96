// Package markdown converts rendered BBCode into markdown.
//
// The default tags render presentational spans, which carry no meaning for a
// markdown converter. Tags returns overrides emitting semantic HTML instead;
// an engine built with them produces output FromHTML can convert faithfully.
package markdown

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// iframePattern matches the embeds rendered by [youtube]. They never nest.
var iframePattern = regexp.MustCompile(`<iframe[^>]*\ssrc="([^"]*)"[^>]*>.*?</iframe>`)

// Tags returns tag overrides for markdown export. Restrictions and line break
// handling match the default tags so diagnostics are unchanged.
func Tags() []*bbcode.Tag {
	return []*bbcode.Tag{
		{Name: "b", Renderer: bbcode.StaticTag("<strong>", "</strong>")},
		{Name: "i", Renderer: bbcode.StaticTag("<em>", "</em>")},
		{Name: "s", Renderer: bbcode.StaticTag("<del>", "</del>")},
		{Name: "code", Renderer: bbcode.StaticTag("<pre><code>", "</code></pre>"), NoParse: true},
		{Name: "php", Renderer: bbcode.StaticTag("<code>", "</code>"), NoParse: true},
		{
			Name: "list",
			Renderer: bbcode.TagFuncs{
				Open: func(params, _ string) string {
					if isDecimal(params) {
						return "<ol>"
					}
					return "<ul>"
				},
				Close: func(params, _ string) string {
					if isDecimal(params) {
						return "</ol>"
					}
					return "</ul>"
				},
			},
			AllowedChildren: []string{"li"},
			StripLineBreaks: true,
		},
		{
			Name:            "ulist",
			Renderer:        bbcode.StaticTag("<ol>", "</ol>"),
			AllowedChildren: []string{"li"},
			StripLineBreaks: true,
		},
		{
			Name:            "li",
			Renderer:        bbcode.StaticTag("<li>", "</li>"),
			AllowedParents:  []string{"list"},
			StripLineBreaks: true,
		},
	}
}

func isDecimal(params string) bool {
	return bbcode.ParseOptions(params)["type"] == "decimal" || bbcode.ParamValue(params) == "decimal"
}

// FromHTML converts rendered BBCode to markdown. Video embeds become links.
func FromHTML(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	html = iframePattern.ReplaceAllStringFunc(html, func(match string) string {
		src := iframePattern.FindStringSubmatch(match)[1]
		return `<a href="` + src + `">` + src + `</a>`
	})

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}
