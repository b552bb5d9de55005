package render

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Document_Replace(t *testing.T) {
	t.Parallel()

	doc := NewDocument(PageBlog, "/blog")

	assert.True(t, doc.Has(ContainerArticleList))
	assert.True(t, doc.Has(ContainerPopularRouters))
	assert.False(t, doc.Has(ContainerRouterList))

	doc.Replace(ContainerArticleList, "<p>first</p>")
	doc.Replace(ContainerArticleList, "<p>second</p>")
	assert.Equal(t, template.HTML("<p>second</p>"), doc.Container(ContainerArticleList))

	doc.Replace(ContainerRouterList, "<p>ignored</p>")
	assert.False(t, doc.Has(ContainerRouterList))
	assert.Empty(t, doc.Container(ContainerRouterList))
}

func Test_BrandName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Tp-link", BrandName("tp-link"))
	assert.Equal(t, "Netgear", BrandName("netgear"))
	assert.Equal(t, "", BrandName(""))
}
