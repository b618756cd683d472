package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Parse an export and print the result",
	Long: `Parse a WordPress export and print the cross-referenced result.

Use "-" to read the export from stdin. Custom field values are resolved
against the acf-field definitions found in the same export.

Examples:
  wxr parse export.xml
  wxr parse export.xml --format yaml
  wxr parse export.xml --posts-only --post-type page
  cat export.xml | wxr parse -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseOutput    outputOptions
	parsePostsOnly bool
	parsePostType  string
)

func init() {
	addOutputFlags(parseCmd, &parseOutput)
	parseCmd.Flags().BoolVar(&parsePostsOnly, "posts-only", false, "Print only the posts")
	parseCmd.Flags().StringVarP(&parsePostType, "post-type", "t", "", "Only include posts of this type")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format, indent, err := parseOutput.resolve(cmd)
	if err != nil {
		return err
	}

	result, err := loadResult(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if parsePostType != "" {
		result = filterPosts(result, parsePostType)
	}

	var out any = result
	if parsePostsOnly {
		out = result.Posts.Values()
	}

	return writeEncoded(cmd.OutOrStdout(), out, format, indent)
}

// loadResult parses source through the configured parse service.
func loadResult(ctx context.Context, source string) (*domain.Result, error) {
	if parseService == nil {
		return nil, errors.New("parse service not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := parseService.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	return result, nil
}

// filterPosts returns a copy of result holding only posts of postType.
// The cached result is left untouched.
func filterPosts(result *domain.Result, postType string) *domain.Result {
	filtered := *result
	filtered.Posts = domain.OrderedMap[int, domain.Post]{}
	for id, post := range result.Posts.All() {
		if post.Type == postType {
			filtered.Posts.Set(id, post)
		}
	}
	return &filtered
}
