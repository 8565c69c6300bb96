// constraints.go validates parent/child tag restrictions over a parsed tree.
package bbcode

import "fmt"

// checkConstraints walks the tree top-down starting at parent and appends a
// diagnostic for every child not allowed under its parent and every parent
// not allowed above its child. It never stops early.
func (e *Engine) checkConstraints(parent *node, diags []string) []string {
	parentName := e.table.canonicalName(parent.name)

	for _, child := range parent.children {
		if child.kind != nodeTag {
			continue
		}
		childName := e.table.canonicalName(child.name)

		if parent.tag != nil && !parent.tag.allowsChild(childName) {
			diags = append(diags, fmt.Sprintf("The tag %q is not allowed as a child of the tag %q.", child.name, parent.name))
			e.logger.Debug("constraint violation", "parent", parent.name, "child", child.name, "rule", "allowed_children")
		}
		if child.tag != nil && !child.tag.allowsParent(parentName) {
			diags = append(diags, fmt.Sprintf("The tag %q is not allowed as a parent of the tag %q.", parent.name, child.name))
			e.logger.Debug("constraint violation", "parent", parent.name, "child", child.name, "rule", "allowed_parents")
		}

		diags = e.checkConstraints(child, diags)
	}
	return diags
}
