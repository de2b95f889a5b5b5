package importer

import "github.com/fwojciec/pageport"

// LocateContent returns the first node matching the content expression.
// A document without a match yields (nil, false, nil).
func (i *Importer) LocateContent(doc pageport.Document) (pageport.Node, bool, error) {
	return doc.Root().QueryFirst(i.Config.Content())
}

// LocateTitle returns the inner text of the first node matching the title
// expression. The boolean is false when no node matched.
func (i *Importer) LocateTitle(doc pageport.Document) (string, bool, error) {
	node, ok, err := doc.Root().QueryFirst(i.Config.Title())
	if err != nil || !ok {
		return "", false, err
	}
	return node.InnerText(), true, nil
}
