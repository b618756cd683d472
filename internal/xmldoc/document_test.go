package xmldoc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

const channelWithItem = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:excerpt="http://wordpress.org/export/1.2/excerpt/"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:dc="http://purl.org/dc/elements/1.1/"
	xmlns:wp="http://wordpress.org/export/1.2/">
<channel>
	<title>Example</title>
	<wp:wxr_version> 1.2 </wp:wxr_version>
	<wp:base_site_url>https://example.com</wp:base_site_url>
	<wp:author><wp:author_login><![CDATA[admin]]></wp:author_login></wp:author>
	<wp:author><wp:author_login><![CDATA[editor]]></wp:author_login></wp:author>
	<item>
		<title>Hello</title>
		<dc:creator><![CDATA[admin]]></dc:creator>
		<content:encoded><![CDATA[<p>Body</p>]]></content:encoded>
		<excerpt:encoded><![CDATA[Short]]></excerpt:encoded>
		<wp:post_id>42</wp:post_id>
		<category domain="category" nicename="news"><![CDATA[News]]></category>
	</item>
</channel>
</rss>`

func load(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := Load([]byte(content))
	require.NoError(t, err)
	return doc
}

func TestDocument_Query(t *testing.T) {
	doc := load(t, channelWithItem)

	authors := doc.Query("/rss/channel/wp:author")
	require.Len(t, authors, 2)
	assert.Equal(t, "admin", authors[0].Children(PrefixWP).Text("author_login"))
	assert.Equal(t, "editor", authors[1].Children(PrefixWP).Text("author_login"))

	assert.Len(t, doc.Query("/rss/channel/item"), 1)
	assert.Empty(t, doc.Query("/rss/channel/wp:nothing"))
	assert.Empty(t, doc.Query("/feed/channel"))
	assert.Empty(t, doc.Query("/"))
}

func TestDocument_Version(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{"valid", "<wp:wxr_version>1.2</wp:wxr_version>", "1.2", nil},
		{"trimmed", "<wp:wxr_version>\n 1.1 \n</wp:wxr_version>", "1.1", nil},
		{"multi digit", "<wp:wxr_version>10.25</wp:wxr_version>", "10.25", nil},
		{"letters", "<wp:wxr_version>abc</wp:wxr_version>", "", domain.ErrInvalidVersion},
		{"three parts", "<wp:wxr_version>1.2.3</wp:wxr_version>", "", domain.ErrInvalidVersion},
		{"empty", "<wp:wxr_version></wp:wxr_version>", "", domain.ErrInvalidVersion},
		{"missing", "", "", domain.ErrMissingVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := load(t, `<rss xmlns:wp="http://wordpress.org/export/1.2/"><channel>`+tt.version+`</channel></rss>`)
			got, err := doc.Version()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_BaseURLs(t *testing.T) {
	t.Run("blog url falls back to site url", func(t *testing.T) {
		doc := load(t, channelWithItem)
		assert.Equal(t, "https://example.com", doc.BaseURL())
		assert.Equal(t, "https://example.com", doc.BaseBlogURL())
	})

	t.Run("explicit blog url", func(t *testing.T) {
		doc := load(t, `<rss xmlns:wp="http://wordpress.org/export/1.2/"><channel>
			<wp:base_site_url>https://a.example</wp:base_site_url>
			<wp:base_blog_url>https://b.example</wp:base_blog_url>
		</channel></rss>`)
		assert.Equal(t, "https://a.example", doc.BaseURL())
		assert.Equal(t, "https://b.example", doc.BaseBlogURL())
	})

	t.Run("absent", func(t *testing.T) {
		doc := load(t, `<rss><channel/></rss>`)
		assert.Empty(t, doc.BaseURL())
		assert.Empty(t, doc.BaseBlogURL())
	})
}

func TestDocument_DefaultNamespaces(t *testing.T) {
	// Exports in the wild often omit the wp and excerpt declarations.
	doc := load(t, `<rss><channel>
		<wp:wxr_version>1.1</wp:wxr_version>
		<item><excerpt:encoded>Short</excerpt:encoded><wp:post_id>7</wp:post_id></item>
	</channel></rss>`)

	assert.Equal(t, DefaultWPNamespace, doc.NamespaceURI(PrefixWP))
	assert.Equal(t, DefaultExcerptNamespace, doc.NamespaceURI(PrefixExcerpt))
	assert.Equal(t, ContentNamespace, doc.NamespaceURI(PrefixContent))

	version, err := doc.Version()
	require.NoError(t, err)
	assert.Equal(t, "1.1", version)

	items := doc.Query("/rss/channel/item")
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Children(PrefixWP).Int("post_id"))
	assert.Equal(t, "Short", items[0].Children(PrefixExcerpt).Text("encoded"))
}

func TestDocument_ForeignNamespaceDoesNotMatch(t *testing.T) {
	doc := load(t, `<rss xmlns:wp="http://wordpress.org/export/1.2/" xmlns:other="urn:other"><channel>
		<other:wxr_version>9.9</other:wxr_version>
	</channel></rss>`)

	_, err := doc.Version()
	assert.ErrorIs(t, err, domain.ErrMissingVersion)
}

func TestScope(t *testing.T) {
	doc := load(t, channelWithItem)
	item := doc.Query("/rss/channel/item")[0]

	assert.Equal(t, "Hello", item.Children("").Text("title"))
	assert.Equal(t, "admin", item.Children(PrefixDC).Text("creator"))
	assert.Equal(t, "<p>Body</p>", item.Children(PrefixContent).Text("encoded"))
	assert.Equal(t, "Short", item.Children(PrefixExcerpt).Text("encoded"))
	assert.Equal(t, 42, item.Children(PrefixWP).Int("post_id"))
	assert.True(t, item.Children(PrefixWP).Has("post_id"))
	assert.False(t, item.Children(PrefixWP).Has("attachment_url"))
	assert.Empty(t, item.Children(PrefixWP).Text("attachment_url"))

	// content:encoded and excerpt:encoded share a local name.
	assert.Len(t, item.Children(PrefixContent).Elements("encoded"), 1)

	cats := item.Children("").Elements("category")
	require.Len(t, cats, 1)
	nicename, ok := cats[0].Attr("nicename")
	assert.True(t, ok)
	assert.Equal(t, "news", nicename)
	_, ok = cats[0].Attr("missing")
	assert.False(t, ok)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"-3", -3},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"+", 0},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.in))
		})
	}
}
