package wxr

import (
	"go.uber.org/zap"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
	"github.com/custodia-labs/wxr-cli/internal/xmldoc"
)

// Channel paths walked by the builder.
const (
	authorPath   = "/rss/channel/wp:author"
	categoryPath = "/rss/channel/wp:category"
	tagPath      = "/rss/channel/wp:tag"
	termPath     = "/rss/channel/wp:term"
	itemPath     = "/rss/channel/item"
)

// accumulator is the working state of one parse. A single build call owns
// it; the resolver reads it once the channel walk is complete.
type accumulator struct {
	authors    domain.OrderedMap[string, domain.Author]
	categories []domain.Term
	tags       []domain.Term
	terms      []domain.Term

	posts     domain.OrderedMap[int, domain.Post]
	postTypes []string
	seenTypes map[string]bool

	// meta holds raw postmeta records by post id, in discovery order.
	meta map[int][]domain.MetaRecord

	fields     domain.OrderedMap[string, domain.FieldDefinition]
	fieldNames []string

	diagnostics []domain.Diagnostic
}

// build walks the channel of doc once.
func build(doc *xmldoc.Document, log *zap.Logger) *accumulator {
	acc := &accumulator{
		authors:    readAuthors(doc),
		categories: readCategories(doc),
		tags:       readTags(doc),
		terms:      readTerms(doc),
		seenTypes:  make(map[string]bool),
		meta:       make(map[int][]domain.MetaRecord),
	}

	for _, item := range doc.Query(itemPath) {
		acc.addItem(item, log)
	}
	return acc
}

func (a *accumulator) addItem(item xmldoc.Node, log *zap.Logger) {
	post := readPost(item)

	if !a.seenTypes[post.Type] {
		a.seenTypes[post.Type] = true
		a.postTypes = append(a.postTypes, post.Type)
	}

	for _, m := range item.Children(xmldoc.PrefixWP).Elements("postmeta") {
		wp := m.Children(xmldoc.PrefixWP)
		a.meta[post.ID] = append(a.meta[post.ID], domain.MetaRecord{
			PostID: post.ID,
			Key:    wp.Text("meta_key"),
			Value:  wp.Text("meta_value"),
		})
	}

	if post.Type == domain.PostTypeACFField {
		a.registerField(post, log)
	}

	if a.posts.Has(post.ID) {
		log.Warn("duplicate post id, later item replaces earlier", zap.Int("post_id", post.ID))
		a.diagnostics = append(a.diagnostics, domain.Diagnostic{
			PostID:  post.ID,
			Message: "duplicate post id; later item replaces earlier",
		})
	}
	a.posts.Set(post.ID, post)
}

// registerField records the definition carried by an acf-field post.
// A definition whose settings cannot be decoded is dropped and reported.
func (a *accumulator) registerField(post domain.Post, log *zap.Logger) {
	fieldType, err := decodeFieldType(post.Content)
	if err != nil {
		fieldErr := &domain.FieldDefinitionError{PostID: post.ID, FieldID: post.Name, Err: err}
		log.Warn("dropped field definition",
			zap.Int("post_id", post.ID),
			zap.String("field_id", post.Name),
			zap.Error(err))
		a.diagnostics = append(a.diagnostics, domain.Diagnostic{
			PostID:  post.ID,
			FieldID: post.Name,
			Message: fieldErr.Error(),
		})
		return
	}

	if a.fields.Has(post.Name) {
		log.Warn("duplicate field id, later definition replaces earlier",
			zap.Int("post_id", post.ID),
			zap.String("field_id", post.Name))
	}
	a.fields.Set(post.Name, domain.FieldDefinition{
		ID:           post.Name,
		Type:         fieldType,
		Name:         post.Excerpt,
		ParentPostID: post.Parent,
		PostID:       post.ID,
	})
	a.fieldNames = append(a.fieldNames, post.Excerpt)
}

func readAuthors(doc *xmldoc.Document) domain.OrderedMap[string, domain.Author] {
	var authors domain.OrderedMap[string, domain.Author]
	for _, n := range doc.Query(authorPath) {
		wp := n.Children(xmldoc.PrefixWP)
		login := wp.Text("author_login")
		authors.Set(login, domain.Author{
			ID:          wp.Int("author_id"),
			Login:       login,
			Email:       wp.Text("author_email"),
			DisplayName: wp.Text("author_display_name"),
			FirstName:   wp.Text("author_first_name"),
			LastName:    wp.Text("author_last_name"),
		})
	}
	return authors
}

func readCategories(doc *xmldoc.Document) []domain.Term {
	out := []domain.Term{}
	for _, n := range doc.Query(categoryPath) {
		wp := n.Children(xmldoc.PrefixWP)
		out = append(out, domain.Term{
			ID:          wp.Int("term_id"),
			Taxonomy:    domain.TaxonomyCategory,
			Name:        wp.Text("cat_name"),
			Slug:        wp.Text("category_nicename"),
			Parent:      wp.Text("category_parent"),
			Description: wp.Text("category_description"),
			Meta:        readTermMeta(wp),
		})
	}
	return out
}

func readTags(doc *xmldoc.Document) []domain.Term {
	out := []domain.Term{}
	for _, n := range doc.Query(tagPath) {
		wp := n.Children(xmldoc.PrefixWP)
		out = append(out, domain.Term{
			ID:          wp.Int("term_id"),
			Taxonomy:    domain.TaxonomyTag,
			Name:        wp.Text("tag_name"),
			Slug:        wp.Text("tag_slug"),
			Description: wp.Text("tag_description"),
			Meta:        readTermMeta(wp),
		})
	}
	return out
}

func readTerms(doc *xmldoc.Document) []domain.Term {
	out := []domain.Term{}
	for _, n := range doc.Query(termPath) {
		wp := n.Children(xmldoc.PrefixWP)
		out = append(out, domain.Term{
			ID:          wp.Int("term_id"),
			Taxonomy:    wp.Text("term_taxonomy"),
			Name:        wp.Text("term_name"),
			Slug:        wp.Text("term_slug"),
			Parent:      wp.Text("term_parent"),
			Description: wp.Text("term_description"),
			Meta:        readTermMeta(wp),
		})
	}
	return out
}

func readTermMeta(wp xmldoc.Scope) []domain.KeyValue {
	return readKeyValues(wp.Elements("termmeta"))
}

// readKeyValues reads wp:meta_key / wp:meta_value pairs.
func readKeyValues(nodes []xmldoc.Node) []domain.KeyValue {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]domain.KeyValue, 0, len(nodes))
	for _, n := range nodes {
		wp := n.Children(xmldoc.PrefixWP)
		out = append(out, domain.KeyValue{Key: wp.Text("meta_key"), Value: wp.Text("meta_value")})
	}
	return out
}

func readPost(item xmldoc.Node) domain.Post {
	rss := item.Children("")
	wp := item.Children(xmldoc.PrefixWP)

	post := domain.Post{
		ID:            wp.Int("post_id"),
		Type:          wp.Text("post_type"),
		Title:         rss.Text("title"),
		GUID:          rss.Text("guid"),
		Author:        item.Children(xmldoc.PrefixDC).Text("creator"),
		Content:       item.Children(xmldoc.PrefixContent).Text("encoded"),
		Excerpt:       item.Children(xmldoc.PrefixExcerpt).Text("encoded"),
		Date:          wp.Text("post_date"),
		DateGMT:       wp.Text("post_date_gmt"),
		CommentStatus: wp.Text("comment_status"),
		PingStatus:    wp.Text("ping_status"),
		Name:          wp.Text("post_name"),
		Status:        wp.Text("status"),
		Parent:        wp.Int("post_parent"),
		MenuOrder:     wp.Int("menu_order"),
		Password:      wp.Text("post_password"),
		IsSticky:      wp.Int("is_sticky") != 0,
		Terms:         readTermRefs(rss),
		Comments:      readComments(wp),
		PostMeta:      []domain.MetaEntry{},
	}

	if n, ok := wp.First("attachment_url"); ok {
		url := n.Text()
		post.AttachmentURL = &url
	}
	return post
}

// readTermRefs reads the category elements of an item. Only elements with
// a nicename attribute are term references.
func readTermRefs(rss xmldoc.Scope) []domain.TermRef {
	refs := []domain.TermRef{}
	for _, c := range rss.Elements("category") {
		slug, ok := c.Attr("nicename")
		if !ok {
			continue
		}
		d, _ := c.Attr("domain")
		refs = append(refs, domain.TermRef{Name: c.Text(), Slug: slug, Domain: d})
	}
	return refs
}

func readComments(wp xmldoc.Scope) []domain.Comment {
	comments := []domain.Comment{}
	for _, n := range wp.Elements("comment") {
		c := n.Children(xmldoc.PrefixWP)
		meta := readKeyValues(c.Elements("commentmeta"))
		if meta == nil {
			meta = []domain.KeyValue{}
		}
		comments = append(comments, domain.Comment{
			ID:          c.Int("comment_id"),
			Author:      c.Text("comment_author"),
			AuthorEmail: c.Text("comment_author_email"),
			AuthorIP:    c.Text("comment_author_IP"),
			AuthorURL:   c.Text("comment_author_url"),
			Date:        c.Text("comment_date"),
			DateGMT:     c.Text("comment_date_gmt"),
			Content:     c.Text("comment_content"),
			Approved:    c.Text("comment_approved"),
			Type:        c.Text("comment_type"),
			Parent:      c.Int("comment_parent"),
			UserID:      c.Int("comment_user_id"),
			Meta:        meta,
		})
	}
	return comments
}
