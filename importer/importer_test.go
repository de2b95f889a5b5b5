package importer_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/pageport"
	"github.com/fwojciec/pageport/dom"
	"github.com/fwojciec/pageport/goquery"
	"github.com/fwojciec/pageport/htmlquery"
	"github.com/fwojciec/pageport/htmltomarkdown"
	"github.com/fwojciec/pageport/importer"
	"github.com/fwojciec/pageport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentHTML = `<html>
<head><title>Foo - Bar</title></head>
<body>
<div class="content"><h1>Title</h1><p>foo <span class="bold">bar</span></p><div id="extended"></div></div>
</body>
</html>`

func parse(t *testing.T, s string) pageport.Document {
	t.Helper()
	doc, err := dom.NewParser(goquery.NewEngine(), htmlquery.NewEngine()).ParseString(s)
	require.NoError(t, err)
	return doc
}

func innerHTML(t *testing.T, n pageport.Node) string {
	t.Helper()
	html, err := n.InnerHTML()
	require.NoError(t, err)
	return html
}

// echoConverter returns its input so tests can see exactly what was converted.
func echoConverter() *mock.Converter {
	return &mock.Converter{
		ConvertFn: func(html string) (string, error) { return html, nil },
	}
}

func TestImporter_LocateContent(t *testing.T) {
	t.Parallel()

	t.Run("returns the content node", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content"), echoConverter())
		doc := parse(t, contentHTML)

		node, ok, err := imp.LocateContent(doc)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Titlefoo bar", node.InnerText())
	})

	t.Run("accepts xpath", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("//div[@class='content']"), echoConverter())

		node, ok, err := imp.LocateContent(parse(t, contentHTML))

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Titlefoo bar", node.InnerText())
	})

	t.Run("reports absence without error", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content"), echoConverter())

		node, ok, err := imp.LocateContent(parse(t, `<html><body></body></html>`))

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, node)
	})

	t.Run("propagates malformed selector errors", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div["), echoConverter())

		_, _, err := imp.LocateContent(parse(t, contentHTML))

		require.Error(t, err)
		assert.Equal(t, pageport.EINVALID, pageport.ErrorCode(err))
	})
}

func TestImporter_LocateTitle(t *testing.T) {
	t.Parallel()

	t.Run("returns inner text of the title node", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content"), echoConverter())

		title, ok, err := imp.LocateTitle(parse(t, contentHTML))

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Foo - Bar", title)
	})

	t.Run("reports absence without error", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content", pageport.WithTitle("h1.missing")), echoConverter())

		title, ok, err := imp.LocateTitle(parse(t, contentHTML))

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, title)
	})
}

func TestImporter_Sanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes comments at any depth", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c"), echoConverter())
		doc := parse(t, `<div id="c"><!-- a --><p>x<!-- b --><span><!-- c -->y</span></p></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		got, err := imp.Sanitize(node)

		require.NoError(t, err)
		assert.Same(t, node, got)
		assert.Equal(t, `<p>x<span>y</span></p>`, innerHTML(t, node))
	})

	t.Run("without remove or inline only drops comments and is idempotent", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c"), echoConverter())
		doc := parse(t, `<div id="c"><h1>T</h1><!-- x --><p>a <b>b</b></p></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)
		require.NoError(t, err)
		once := innerHTML(t, node)
		_, err = imp.Sanitize(node)
		require.NoError(t, err)

		assert.Equal(t, `<h1>T</h1><p>a <b>b</b></p>`, once)
		assert.Equal(t, once, innerHTML(t, node))
	})

	t.Run("removes matched nodes with their subtrees", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content", pageport.WithRemove("#extended")), echoConverter())
		doc := parse(t, contentHTML)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)
		require.NoError(t, err)

		_, ok, err := node.QueryFirst(pageport.CSS("#extended"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("inlines matched nodes as text", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content", pageport.WithInline("span.bold")), echoConverter())
		doc := parse(t, contentHTML)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)
		require.NoError(t, err)

		p, ok, err := node.QueryFirst(pageport.CSS("p"))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "foo bar", p.InnerText())
		assert.Equal(t, "foo bar", innerHTML(t, p))
	})

	t.Run("expressions matching nothing are no-ops", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c",
			pageport.WithRemove(".missing", "//table"),
			pageport.WithInline("em"),
		), echoConverter())
		doc := parse(t, `<div id="c"><p>a <b>b</b></p></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)

		require.NoError(t, err)
		assert.Equal(t, `<p>a <b>b</b></p>`, innerHTML(t, node))
	})

	t.Run("removal of an ancestor drops a later inline target", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c",
			pageport.WithInline("span.keep"),
			pageport.WithRemove("div.aside"),
		), echoConverter())
		doc := parse(t, `<div id="c"><p>body</p><div class="aside"><span class="keep">secret</span></div></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)

		require.NoError(t, err)
		assert.Equal(t, `<p>body</p>`, innerHTML(t, node))
		assert.NotContains(t, node.InnerText(), "secret")
	})

	t.Run("later removals see earlier removals", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c",
			pageport.WithRemove("ul > li:first-child", "ul > li:first-child"),
		), echoConverter())
		doc := parse(t, `<div id="c"><ul><li>1</li><li>2</li><li>3</li></ul></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)

		require.NoError(t, err)
		assert.Equal(t, `<ul><li>3</li></ul>`, innerHTML(t, node))
	})

	t.Run("nested inline matches flatten once", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c", pageport.WithInline("span")), echoConverter())
		doc := parse(t, `<div id="c"><p><span>a<span>b</span>c</span></p></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)

		require.NoError(t, err)
		assert.Equal(t, `<p>abc</p>`, innerHTML(t, node))
	})

	t.Run("mixes css and xpath expressions", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c",
			pageport.WithRemove("//div[@id='extended']"),
			pageport.WithInline(".//a"),
		), echoConverter())
		doc := parse(t, `<div id="c"><p>see <a href="/x">docs</a></p><div id="extended">more</div></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)

		require.NoError(t, err)
		assert.Equal(t, `<p>see docs</p>`, innerHTML(t, node))
	})

	t.Run("stops on malformed expression", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c", pageport.WithInline("span[")), echoConverter())
		doc := parse(t, `<div id="c"><span>x</span></div>`)
		node, _, err := imp.LocateContent(doc)
		require.NoError(t, err)

		_, err = imp.Sanitize(node)

		require.Error(t, err)
		assert.Equal(t, pageport.EINVALID, pageport.ErrorCode(err))
	})

	t.Run("rejects removal of attributes", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("#c", pageport.WithRemove("//@class")), echoConverter())
		doc := parse(t, `<div id="c"><p class="x">a</p></div>`)

		_, err := imp.HTML(doc)

		require.Error(t, err)
		assert.Equal(t, pageport.EINVALID, pageport.ErrorCode(err))
	})
}

func TestImporter_RenderHTML(t *testing.T) {
	t.Parallel()

	imp := importer.New(pageport.NewSelectorConfig("#c"), echoConverter())
	node, _, err := imp.LocateContent(parse(t, `<div id="c"><p>x</p></div>`))
	require.NoError(t, err)

	html, err := imp.RenderHTML(node)

	require.NoError(t, err)
	assert.Equal(t, `<p>x</p>`, html)
}

func TestImporter_HTML(t *testing.T) {
	t.Parallel()

	t.Run("returns sanitized content markup", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content",
			pageport.WithRemove("#extended"),
			pageport.WithInline("span.bold"),
		), echoConverter())

		html, err := imp.HTML(parse(t, contentHTML))

		require.NoError(t, err)
		assert.Equal(t, `<h1>Title</h1><p>foo bar</p>`, html)
	})

	t.Run("returns empty string without content", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content"), echoConverter())

		html, err := imp.HTML(parse(t, `<html><body></body></html>`))

		require.NoError(t, err)
		assert.Empty(t, html)
	})
}

func TestImporter_RenderMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("converts the sanitized content and passes output through", func(t *testing.T) {
		t.Parallel()

		var got string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "# Title\n\nfoo bar\n\n", nil
			},
		}
		imp := importer.New(pageport.NewSelectorConfig("div.content",
			pageport.WithRemove("#extended"),
			pageport.WithInline("span.bold"),
		), conv)

		md, err := imp.RenderMarkdown(parse(t, contentHTML))

		require.NoError(t, err)
		assert.Equal(t, `<h1>Title</h1><p>foo bar</p>`, got)
		assert.Equal(t, "# Title\n\nfoo bar\n\n", md)
	})

	t.Run("returns empty string and skips conversion without content", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				t.Fatal("converter must not be called")
				return "", nil
			},
		}
		imp := importer.New(pageport.NewSelectorConfig("div.content",
			pageport.WithRemove("#extended"),
			pageport.WithInline("span.bold"),
		), conv)

		md, err := imp.RenderMarkdown(parse(t, `<html><body></body></html>`))

		require.NoError(t, err)
		assert.Equal(t, "", md)
	})

	t.Run("converts an empty content container", func(t *testing.T) {
		t.Parallel()

		called := false
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				called = true
				return "", nil
			},
		}
		imp := importer.New(pageport.NewSelectorConfig("div.content"), conv)

		md, err := imp.RenderMarkdown(parse(t, `<div class="content"></div>`))

		require.NoError(t, err)
		assert.True(t, called)
		assert.Empty(t, md)
	})

	t.Run("propagates converter errors unchanged", func(t *testing.T) {
		t.Parallel()

		want := errors.New("conversion failed")
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "", want },
		}
		imp := importer.New(pageport.NewSelectorConfig("div.content"), conv)

		_, err := imp.RenderMarkdown(parse(t, contentHTML))

		assert.Same(t, want, err)
	})

	t.Run("renders with html-to-markdown", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content",
			pageport.WithRemove("#extended"),
			pageport.WithInline("span.bold"),
		), htmltomarkdown.NewConverter())

		md, err := imp.RenderMarkdown(parse(t, contentHTML))

		require.NoError(t, err)
		assert.Equal(t, "# Title\n\nfoo bar", strings.TrimSpace(md))
	})
}

func TestImporter_RenderPage(t *testing.T) {
	t.Parallel()

	kramdownLike := func() *mock.Converter {
		return &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "# Title\n\nfoo bar\n\n", nil },
		}
	}

	t.Run("writes front matter with title", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content",
			pageport.WithRemove("#extended"),
			pageport.WithInline("span.bold"),
		), kramdownLike())

		page, err := imp.RenderPage(parse(t, contentHTML))

		require.NoError(t, err)
		want := "---\nlayout: default\ntitle: \"Foo - Bar\"\n---\n\n# Title\n\nfoo bar\n\n"
		assert.Equal(t, want, page)
	})

	t.Run("omits title line when title is absent", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content", pageport.WithLayout("post")), kramdownLike())

		page, err := imp.RenderPage(parse(t, `<html><body><div class="content"><h1>Title</h1></div></body></html>`))

		require.NoError(t, err)
		lines := strings.Split(page, pageport.LineSeparator)
		assert.Equal(t, "---", lines[0])
		assert.Equal(t, "layout: post", lines[1])
		assert.Equal(t, "---", lines[2])
		assert.NotContains(t, page, "title:")
	})

	t.Run("keeps front matter when content is absent", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content"), kramdownLike())

		page, err := imp.RenderPage(parse(t, `<html><head><title>Empty</title></head><body></body></html>`))

		require.NoError(t, err)
		assert.Equal(t, "---\nlayout: default\ntitle: \"Empty\"\n---\n\n", page)
	})

	t.Run("reads the title before sanitizing", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("article",
			pageport.WithTitle("article h1"),
			pageport.WithRemove("h1"),
		), echoConverter())

		page, err := imp.Page(parse(t, `<article><h1>Heading</h1><p>x</p></article>`))

		require.NoError(t, err)
		assert.True(t, page.HasTitle)
		assert.Equal(t, "Heading", page.Title)
		assert.Equal(t, "<p>x</p>", page.Body)
	})

	t.Run("propagates malformed title selector", func(t *testing.T) {
		t.Parallel()

		imp := importer.New(pageport.NewSelectorConfig("div.content", pageport.WithTitle("//title[")), kramdownLike())

		_, err := imp.RenderPage(parse(t, contentHTML))

		require.Error(t, err)
		assert.Equal(t, pageport.EINVALID, pageport.ErrorCode(err))
	})
}

func TestImporter_ConcurrentDocuments(t *testing.T) {
	t.Parallel()

	imp := importer.New(pageport.NewSelectorConfig("div.content",
		pageport.WithRemove("#extended"),
		pageport.WithInline("span.bold"),
	), echoConverter())
	base := parse(t, contentHTML)

	docs := make([]pageport.Document, 8)
	for i := range docs {
		docs[i] = base.Clone()
	}

	var wg sync.WaitGroup
	results := make([]string, len(docs))
	errs := make([]error, len(docs))
	for i, doc := range docs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = imp.RenderMarkdown(doc)
		}()
	}
	wg.Wait()

	for i := range docs {
		require.NoError(t, errs[i])
		assert.Equal(t, `<h1>Title</h1><p>foo bar</p>`, results[i])
	}

	// the original document is untouched
	node, ok, err := imp.LocateContent(base)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, innerHTML(t, node), `<span class="bold">bar</span>`)
}
