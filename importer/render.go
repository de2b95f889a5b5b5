package importer

import "github.com/fwojciec/pageport"

// RenderHTML returns the markup of node's children.
func (i *Importer) RenderHTML(node pageport.Node) (string, error) {
	return node.InnerHTML()
}

// HTML returns the sanitized inner markup of the content node,
// or "" when the document has no content node.
func (i *Importer) HTML(doc pageport.Document) (string, error) {
	html, _, err := i.contentHTML(doc)
	return html, err
}

// RenderMarkdown converts the sanitized content node to Markdown.
// It returns "" when the document has no content node. The converter's
// output is returned untouched.
func (i *Importer) RenderMarkdown(doc pageport.Document) (string, error) {
	html, ok, err := i.contentHTML(doc)
	if err != nil || !ok {
		return "", err
	}
	return i.Converter.Convert(html)
}

func (i *Importer) contentHTML(doc pageport.Document) (string, bool, error) {
	node, ok, err := i.LocateContent(doc)
	if err != nil || !ok {
		return "", false, err
	}
	if _, err := i.Sanitize(node); err != nil {
		return "", false, err
	}
	html, err := i.RenderHTML(node)
	if err != nil {
		return "", false, err
	}
	return html, true, nil
}

// Page builds a page from doc. The title is read before the content is
// sanitized.
func (i *Importer) Page(doc pageport.Document) (*pageport.Page, error) {
	title, hasTitle, err := i.LocateTitle(doc)
	if err != nil {
		return nil, err
	}

	body, err := i.RenderMarkdown(doc)
	if err != nil {
		return nil, err
	}

	return &pageport.Page{
		Layout:   i.Config.Layout(),
		Title:    title,
		HasTitle: hasTitle,
		Body:     body,
	}, nil
}

// RenderPage renders doc as a page with front matter.
func (i *Importer) RenderPage(doc pageport.Document) (string, error) {
	page, err := i.Page(doc)
	if err != nil {
		return "", err
	}
	return page.String(), nil
}
