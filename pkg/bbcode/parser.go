// parser.go matches open and close tokens into a tree and stamps each tag
// with its depth among same-named ancestors.
package bbcode

// nodeKind distinguishes the nodes of a parsed document.
type nodeKind int

const (
	nodeText  nodeKind = iota // escaped text
	nodeTag                   // matched open/close pair
	nodeStray                 // tag token without a partner, kept as literal text
)

// node is one element of the matched document tree.
type node struct {
	kind     nodeKind
	name     string // lowercase tag name as written
	tag      *Tag
	params   string
	text     string // nodeText: escaped text; nodeStray: original tag text
	depth    int    // number of ancestors sharing name
	pos      int
	children []*node
}

// stackFrame tracks an open tag waiting for its close tag.
type stackFrame struct {
	open     token
	tag      *Tag
	children []*node
}

// parseTree reduces tokens into a tree rooted at a synthetic RootTag node.
//
// A close tag only matches the innermost open frame. Any other close tag is
// stray, and because every frame still open now has an unmatched bracket
// inside its span none of them can ever be closed: they are flushed to the
// root as stray opens followed by the children they had collected. Frames
// left open at the end of input are flushed the same way.
//
// The returned count is the number of stray tokens.
func (e *Engine) parseTree(tokens []token) (*node, int, error) {
	root := &node{kind: nodeTag, name: RootTag}
	root.tag, _ = e.table.lookup(RootTag)

	var stack []*stackFrame
	strays := 0

	appendNode := func(n *node) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.children = append(top.children, n)
		} else {
			root.children = append(root.children, n)
		}
	}

	strayNode := func(tok token) *node {
		strays++
		e.logger.Debug("stray tag token", "token", tok.text, "position", tok.pos)
		return &node{kind: nodeStray, name: tok.name, text: tok.text, pos: tok.pos}
	}

	flush := func() {
		for _, frame := range stack {
			root.children = append(root.children, strayNode(frame.open))
			root.children = append(root.children, frame.children...)
		}
		stack = stack[:0]
	}

	for _, tok := range tokens {
		switch tok.typ {
		case tokenText:
			appendNode(&node{kind: nodeText, text: tok.text, pos: tok.pos})

		case tokenOpen:
			if len(stack) >= e.maxDepth {
				return nil, 0, limitError("nesting depth", e.maxDepth, tok.pos)
			}
			tag, _ := e.table.lookup(tok.name)
			stack = append(stack, &stackFrame{open: tok, tag: tag})

		case tokenClose:
			if len(stack) > 0 && stack[len(stack)-1].open.name == tok.name {
				current := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				appendNode(&node{
					kind:     nodeTag,
					name:     current.open.name,
					tag:      current.tag,
					params:   current.open.params,
					pos:      current.open.pos,
					children: current.children,
				})
				continue
			}
			// Orphan or mismatched close tag
			flush()
			root.children = append(root.children, strayNode(tok))
		}
	}

	// Handle any unclosed tags
	flush()

	stampDepths(root, make(map[string]int))
	return root, strays, nil
}

// stampDepths records for every tag node how many of its ancestors share
// its name.
func stampDepths(n *node, seen map[string]int) {
	for _, child := range n.children {
		if child.kind != nodeTag {
			continue
		}
		child.depth = seen[child.name]
		seen[child.name]++
		stampDepths(child, seen)
		seen[child.name]--
	}
}
