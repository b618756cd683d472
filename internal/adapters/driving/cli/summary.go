package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file|->",
	Short: "Show counts for an export",
	Long: `Show what an export contains: site information, authors, posts per
type, custom field definitions and any records dropped while parsing.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	result, err := loadResult(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	writeSummary(cmd.OutOrStdout(), result)
	return nil
}

func writeSummary(w io.Writer, result *domain.Result) {
	p := newPalette(w)
	row := func(label string, value any) {
		fmt.Fprintf(w, "  %s %s\n", p.label.Render(fmt.Sprintf("%-14s", label)), p.value.Render(fmt.Sprint(value)))
	}

	fmt.Fprintln(w, p.title.Render("WordPress export "+result.Version))
	row("Site", result.BaseURL)
	if result.BaseBlogURL != result.BaseURL {
		row("Blog", result.BaseBlogURL)
	}
	if result.Source.URI != "" {
		row("Source", result.Source.URI)
	}
	row("Document", result.Source.DocumentID)
	fmt.Fprintln(w)

	row("Authors", result.Authors.Len())
	row("Categories", len(result.Categories))
	row("Tags", len(result.Tags))
	row("Terms", len(result.Terms))
	row("Posts", result.Posts.Len())
	for _, postType := range result.PostTypes {
		fmt.Fprintf(w, "    %s %d\n", p.muted.Render(fmt.Sprintf("%-12s", postType)), len(result.PostsOfType(postType)))
	}
	fmt.Fprintln(w)

	row("Custom fields", result.CustomFields.Len())
	if len(result.CustomFieldNames) > 0 {
		fmt.Fprintf(w, "    %s\n", p.muted.Render(strings.Join(result.CustomFieldNames, ", ")))
	}

	if len(result.Diagnostics) > 0 {
		fmt.Fprintln(w)
		row("Diagnostics", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			fmt.Fprintf(w, "    %s\n", p.warn.Render(formatDiagnostic(d)))
		}
	}
}

func formatDiagnostic(d domain.Diagnostic) string {
	if d.FieldID != "" {
		return fmt.Sprintf("post %d (%s): %s", d.PostID, d.FieldID, d.Message)
	}
	return fmt.Sprintf("post %d: %s", d.PostID, d.Message)
}
