package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTags_Render(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// color
		{"named color", "[color=red]x[/color]", `<span style="color:red">x</span>`},
		{"hex color", "[color=#FFF]x[/color]", `<span style="color:#FFF">x</span>`},
		{"hex color without hash", "[color=abc123]x[/color]", `<span style="color:#abc123">x</span>`},
		{"invalid color", "[color=red;background:url(x)]x[/color]", `<span style="color:black">x</span>`},
		{"missing color", "[color]x[/color]", `<span style="color:black">x</span>`},

		// size
		{"size", "[size=20]x[/size]", `<span class="xbbcode-size-20">x</span>`},
		{"size with unit", "[size=40px]x[/size]", `<span class="xbbcode-size-40">x</span>`},
		{"size too large", "[size=100]x[/size]", `<span class="xbbcode-size-14">x</span>`},
		{"size too small", "[size=3]x[/size]", `<span class="xbbcode-size-14">x</span>`},
		{"size not a number", "[size=big]x[/size]", `<span class="xbbcode-size-14">x</span>`},

		// img
		{"image", "[img]http://a.com/x.png[/img]", `<img src="http://a.com/x.png" />`},
		{"image bad url", "[img]javascript:alert(1)[/img]", `<img src="" />`},

		// url
		{"url from content", "[url]http://a.com[/url]", `<a href="http://a.com" target="_blank">http://a.com</a>`},
		{"url from param", "[url=https://a.com/p?q=1]site[/url]", `<a href="https://a.com/p?q=1" target="_blank">site</a>`},
		{"url markup stripped from content", "[url][b]http://a.com[/b][/url]",
			`<a href="http://a.com" target="_blank"><span class="xbbcode-b">http://a.com</span></a>`},
		{"url bad scheme", "[url=javascript:alert(1)]x[/url]", `<a href="#" target="_blank">x</a>`},
		{"url quote injection", `[url=http://a.com/"onclick]x[/url]`, `<a href="#" target="_blank">x</a>`},

		// youtube
		{"youtube watch url", "[youtube]https://www.youtube.com/watch?v=abc123[/youtube]",
			`<iframe width="560" height="315" src="https://www.youtube.com/embed/abc123?html5=1" frameborder="0" allowfullscreen></iframe>`},
		{"youtube short url with size", "[youtube=https://youtu.be/xyz width=640 height=360]ignored[/youtube]",
			`<iframe width="640" height="360" src="https://www.youtube.com/embed/xyz?html5=1" frameborder="0" allowfullscreen></iframe>`},
		{"youtube oversize", "[youtube=https://www.youtube.com/embed/abc width=5000 height=0][/youtube]",
			`<iframe width="560" height="315" src="https://www.youtube.com/embed/abc?html5=1" frameborder="0" allowfullscreen></iframe>`},
		{"youtube bad url", "[youtube]javascript:x[/youtube]",
			`<iframe width="560" height="315" src="#?html5=1" frameborder="0" allowfullscreen></iframe>`},

		// quote
		{"quote", "[quote]x[/quote]", `<blockquote class="xbbcode-blockquote">x</blockquote>`},
		{"quote author", "[quote author=bob]x[/quote]",
			`<div class="xbbcode-blockquote-header"><div class="xbbcode-blockquote-top"><span>bob</span></div></div>` +
				`<blockquote class="xbbcode-blockquote">x</blockquote>`},
		{"quote link and date", "[quote author=bob link=example.com/t/1 date=0]x[/quote]",
			`<div class="xbbcode-blockquote-header"><div class="xbbcode-blockquote-top">` +
				`<a href="//example.com/t/1">Quote from: bob on Thu Jan 01 1970, 00:00:00 GMT+0000 (UTC)</a></div></div>` +
				`<blockquote class="xbbcode-blockquote">x</blockquote>`},
		{"quote bad date", "[quote author=bob link=example.com date=soon]x[/quote]",
			`<div class="xbbcode-blockquote-header"><div class="xbbcode-blockquote-top">` +
				`<a href="//example.com">Quote from: bob</a></div></div>` +
				`<blockquote class="xbbcode-blockquote">x</blockquote>`},
		{"quote bad link", `[quote author=bob link=a"b]x[/quote]`,
			`<div class="xbbcode-blockquote-header"><div class="xbbcode-blockquote-top"><span>bob</span></div></div>` +
				`<blockquote class="xbbcode-blockquote">x</blockquote>`},

		// list
		{"list equals decimal", "[list=decimal][li]a[/li][/list]",
			`<ul class="xbbcode-list xbbcode-list-decimal"><li class="xbbcode-list-li">a</li></ul>`},
		{"list other type", "[list type=disc][li]a[/li][/list]",
			`<ul class="xbbcode-list"><li class="xbbcode-list-li">a</li></ul>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := process(t, Config{Text: tt.input})
			assert.Equal(t, tt.want, res.HTML)
			assert.False(t, res.HasError, "diagnostics: %v", res.Diagnostics)
		})
	}
}

func TestDefaultTags_FreshCopies(t *testing.T) {
	a := DefaultTags()
	b := DefaultTags()
	a[0].HideContent = true
	assert.False(t, b[0].HideContent)
}

func TestTagFuncs_NilFunctions(t *testing.T) {
	var f TagFuncs
	assert.Equal(t, "", f.OpenTag("=x", "content"))
	assert.Equal(t, "", f.CloseTag("=x", "content"))
}

func TestStaticTag(t *testing.T) {
	r := StaticTag("<a>", "</a>")
	assert.Equal(t, "<a>", r.OpenTag("=ignored", "content"))
	assert.Equal(t, "</a>", r.CloseTag("", ""))
}

func TestRenderer_SeesContentBeforeHiding(t *testing.T) {
	var seen string
	echo := &Tag{
		Name: "echo",
		Renderer: TagFuncs{
			Open: func(_, content string) string {
				seen = content
				return "<e>"
			},
			Close: closing("</e>"),
		},
		HideContent:     true,
		StripLineBreaks: true,
	}

	html, err := newTestEngine(t, WithTags(echo)).Render("[echo][b]a\nb[/b][/echo]")
	assert.NoError(t, err)
	assert.Equal(t, "<e></e>", html)
	assert.Equal(t, "<span class=\"xbbcode-b\">a\nb</span>", seen)
}
