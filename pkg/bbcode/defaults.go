// defaults.go defines the standard tag set. The generated markup is part of
// the stored-document contract and must stay stable.
package bbcode

import (
	"fmt"
	"strings"
)

// span returns a tag rendering as <span class="...">...</span>.
func span(name, class string) *Tag {
	return &Tag{Name: name, Renderer: StaticTag(`<span class="`+class+`">`, "</span>")}
}

// block returns a tag with fixed open/close markup.
func block(name, open, close string) *Tag {
	return &Tag{Name: name, Renderer: StaticTag(open, close)}
}

// DefaultTags returns fresh copies of the standard tags.
func DefaultTags() []*Tag {
	return []*Tag{
		span("b", "xbbcode-b"),
		span("i", "xbbcode-i"),
		span("s", "xbbcode-s"),
		span("u", "xbbcode-u"),

		// Renders nothing; exists so the document root can be named in
		// restrictions.
		block(RootTag, "", ""),

		{
			Name:     "code",
			Renderer: StaticTag(`<pre><code class="xbbcode-code">`, "</code></pre>"),
			NoParse:  true,
		},
		{
			Name:     "noparse",
			Renderer: StaticTag("", ""),
			NoParse:  true,
		},
		{
			Name:     "php",
			Renderer: StaticTag(`<span class="xbbcode-code">`, "</span>"),
			NoParse:  true,
		},

		{
			Name: "color",
			Renderer: TagFuncs{
				Open: func(params, _ string) string {
					return `<span style="color:` + safeColor(ParamValue(params)) + `">`
				},
				Close: closing("</span>"),
			},
		},
		{
			Name: "size",
			Renderer: TagFuncs{
				Open: func(params, _ string) string {
					return fmt.Sprintf(`<span class="xbbcode-size-%d">`, fontSize(ParamValue(params)))
				},
				Close: closing("</span>"),
			},
		},

		{
			Name: "img",
			Renderer: TagFuncs{
				Open: func(_, content string) string {
					return `<img src="` + safeURL(content, "") + `" />`
				},
			},
			HideContent: true,
		},
		{
			Name: "url",
			Renderer: TagFuncs{
				Open: func(params, content string) string {
					target := ParamValue(params)
					if params == "" {
						target = stripMarkup(content)
					}
					return `<a href="` + safeURL(target, "#") + `" target="_blank">`
				},
				Close: closing("</a>"),
			},
		},
		{
			Name:        "youtube",
			Renderer:    TagFuncs{Open: youtubeOpen, Close: closing("</iframe>")},
			HideContent: true,
		},

		{
			Name: "list",
			Renderer: TagFuncs{
				Open: func(params, _ string) string {
					class := "xbbcode-list"
					if ParseOptions(params)["type"] == "decimal" || ParamValue(params) == "decimal" {
						class = "xbbcode-list xbbcode-list-decimal"
					}
					return `<ul class="` + class + `">`
				},
				Close: closing("</ul>"),
			},
			AllowedChildren: []string{"li"},
			StripLineBreaks: true,
		},
		{
			Name:            "ulist",
			Renderer:        StaticTag(`<ul class="xbbcode-list xbbcode-list-decimal">`, "</ul>"),
			AllowedChildren: []string{"li"},
			StripLineBreaks: true,
		},
		{
			Name:            "li",
			Renderer:        StaticTag(`<li class="xbbcode-list-li">`, "</li>"),
			AllowedParents:  []string{"list"},
			StripLineBreaks: true,
		},

		{
			Name:     "quote",
			Renderer: TagFuncs{Open: quoteOpen, Close: closing("</blockquote>")},
		},

		{
			Name:            "table",
			Renderer:        StaticTag(`<table class="xbbcode-table">`, "</table>"),
			AllowedChildren: []string{"tbody", "thead", "tfoot", "tr"},
		},
		{
			Name:            "tbody",
			Renderer:        StaticTag("<tbody>", "</tbody>"),
			AllowedChildren: []string{"tr"},
			AllowedParents:  []string{"table"},
		},
		{
			Name:            "tfoot",
			Renderer:        StaticTag("<tfoot>", "</tfoot>"),
			AllowedChildren: []string{"tr"},
			AllowedParents:  []string{"table"},
		},
		{
			Name:            "thead",
			Renderer:        StaticTag(`<thead class="xbbcode-thead">`, "</thead>"),
			AllowedChildren: []string{"tr"},
			AllowedParents:  []string{"table"},
		},
		{
			Name:            "tr",
			Renderer:        StaticTag(`<tr class="xbbcode-tr">`, "</tr>"),
			AllowedChildren: []string{"td", "th"},
			AllowedParents:  []string{"table", "tbody", "tfoot", "thead"},
		},
		{
			Name:           "td",
			Renderer:       StaticTag(`<td class="xbbcode-td">`, "</td>"),
			AllowedParents: []string{"tr"},
		},
		{
			// Header cells have always been emitted as <td>.
			Name:           "th",
			Renderer:       StaticTag(`<td class="xbbcode-th">`, "</td>"),
			AllowedParents: []string{"tr"},
		},

		block("pre", "<pre>", "</pre>"),
		block("left", `<div class="xbbcode-left">`, "</div>"),
		block("center", `<div class="xbbcode-center" align="center">`, "</div>"),
		block("right", `<div class="xbbcode-right">`, "</div>"),
	}
}

func closing(markup string) func(string, string) string {
	return func(string, string) string { return markup }
}

// youtubeOpen renders [youtube]URL[/youtube] and
// [youtube=URL width=640 height=360][/youtube] as an embedded player.
func youtubeOpen(params, content string) string {
	var target string
	if params == "" {
		target = stripMarkup(content)
	} else {
		target, _, _ = strings.Cut(ParamValue(params), " ")
	}

	opts := ParseOptions(params)
	width := dimension(opts["width"], maxVideoWidth, defaultVideoWidth)
	height := dimension(opts["height"], maxVideoHeight, defaultVideoHeight)

	src := youtubeEmbed(safeURL(target, "#"))
	return fmt.Sprintf(`<iframe width="%d" height="%d" src="%s?html5=1" frameborder="0" allowfullscreen>`, width, height, src)
}

// quoteOpen renders [quote author=xyz link=abc date=1380953499]. Without an
// author only the blockquote is emitted.
func quoteOpen(params, _ string) string {
	opts := ParseOptions(params)

	var sb strings.Builder
	if author := opts["author"]; author != "" {
		sb.WriteString(`<div class="xbbcode-blockquote-header"><div class="xbbcode-blockquote-top">`)

		link := opts["link"]
		if link != "" && quoteLinkPattern.MatchString(link) {
			sb.WriteString(`<a href="//` + link + `">Quote from: ` + author)
			if date, ok := quoteDate(opts["date"]); ok {
				sb.WriteString(" on " + date)
			}
			sb.WriteString("</a>")
		} else {
			sb.WriteString("<span>" + author + "</span>")
		}

		sb.WriteString("</div></div>")
	}
	sb.WriteString(`<blockquote class="xbbcode-blockquote">`)
	return sb.String()
}
