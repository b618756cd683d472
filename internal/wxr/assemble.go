package wxr

import "github.com/custodia-labs/wxr-cli/internal/core/domain"

// siteInfo is the channel-level data read before the build.
type siteInfo struct {
	version     string
	baseURL     string
	baseBlogURL string
}

// assemble merges the build output and the resolved posts into a Result.
func assemble(site siteInfo, acc *accumulator, posts domain.OrderedMap[int, domain.Post]) *domain.Result {
	return &domain.Result{
		Version:          site.version,
		BaseURL:          site.baseURL,
		BaseBlogURL:      site.baseBlogURL,
		Authors:          acc.authors,
		PostTypes:        nonNil(acc.postTypes),
		Posts:            posts,
		Categories:       acc.categories,
		Tags:             acc.tags,
		Terms:            acc.terms,
		CustomFields:     acc.fields,
		CustomFieldNames: nonNil(acc.fieldNames),
		Diagnostics:      acc.diagnostics,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
