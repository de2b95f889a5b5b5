package importer

import "github.com/fwojciec/pageport"

// Sanitize strips node in place and returns it.
//
// Comments are removed first. Then every removal expression, in order, drops
// its matches with their subtrees. Finally every inline expression, in order,
// replaces its matches with their text. Each expression is evaluated against
// the tree as left by the previous one.
func (i *Importer) Sanitize(node pageport.Node) (pageport.Node, error) {
	removeComments(node)

	for _, expr := range i.Config.Remove() {
		matches, err := node.QueryAll(expr)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			m.Remove()
		}
	}

	for _, expr := range i.Config.Inline() {
		matches, err := node.QueryAll(expr)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			m.ReplaceWithText(m.InnerText())
		}
	}

	return node, nil
}

func removeComments(node pageport.Node) {
	for _, child := range node.Children() {
		if child.Kind() == pageport.CommentNode {
			child.Remove()
			continue
		}
		removeComments(child)
	}
}
