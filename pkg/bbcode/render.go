// render.go expands a matched tree into HTML, innermost tags first.
package bbcode

import "strings"

// renderNodes renders nodes in order into sb.
// Stray tokens are written as literal text unless stripStrays is set.
func (e *Engine) renderNodes(sb *strings.Builder, nodes []*node, stripStrays bool) {
	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			sb.WriteString(n.text)
		case nodeStray:
			if !stripStrays {
				sb.WriteString(n.text)
			}
		case nodeTag:
			sb.WriteString(e.renderTag(n, stripStrays))
		}
	}
}

// renderTag renders the content of n first and hands it to the tag's
// renderer. The open and close markup always see the full content, even when
// the tag hides it or strips its line breaks afterwards.
func (e *Engine) renderTag(n *node, stripStrays bool) string {
	var content string
	if n.tag.NoParse {
		content = rawContent(n.children)
	} else {
		var sb strings.Builder
		e.renderNodes(&sb, n.children, stripStrays)
		content = sb.String()
	}

	open := n.tag.Renderer.OpenTag(n.params, content)
	closeTag := n.tag.Renderer.CloseTag(n.params, content)

	if n.tag.HideContent {
		content = ""
	}
	if n.tag.StripLineBreaks {
		content = stripLineBreaks(content)
	}

	return open + content + closeTag
}

// rawContent joins the children of a matched no-parse tag. foldNoParse has
// already turned everything between its open and close into one text token,
// so the children are text only.
func rawContent(nodes []*node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.text)
	}
	return sb.String()
}
