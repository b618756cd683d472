package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

var postCmd = &cobra.Command{
	Use:   "post <file|-> <post-id>",
	Short: "Show one post",
	Long: `Show one post of an export with its taxonomy terms, resolved custom
fields and threaded comments.

Pass --format to print the post and its comment threads as JSON or YAML
instead of the readable view.`,
	Args: cobra.ExactArgs(2),
	RunE: runPost,
}

var postOutput outputOptions

func init() {
	addOutputFlags(postCmd, &postOutput)
	rootCmd.AddCommand(postCmd)
}

// postView is the encoded form of the post command.
type postView struct {
	domain.Post
	Threads []domain.CommentThread `json:"comment_threads"`
}

func runPost(cmd *cobra.Command, args []string) error {
	postID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: post id %q is not a number", domain.ErrInvalidInput, args[1])
	}

	result, err := loadResult(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	post, ok := result.Post(postID)
	if !ok {
		return fmt.Errorf("post %d: %w", postID, domain.ErrNotFound)
	}

	if postOutput.format != "" {
		format, indent, err := postOutput.resolve(cmd)
		if err != nil {
			return err
		}
		view := postView{Post: post, Threads: post.CommentThreads()}
		return writeEncoded(cmd.OutOrStdout(), view, format, indent)
	}

	writePost(cmd.OutOrStdout(), post)
	return nil
}

func writePost(w io.Writer, post domain.Post) {
	p := newPalette(w)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(w, "  %s %s\n", p.label.Render(fmt.Sprintf("%-10s", label)), value)
		}
	}

	fmt.Fprintf(w, "%s %s\n", p.title.Render(fmt.Sprintf("#%d", post.ID)), p.value.Render(post.Title))
	row("Type", post.Type)
	row("Status", post.Status)
	row("Slug", post.Name)
	row("Author", post.Author)
	row("Date", post.Date)
	if post.Parent != 0 {
		row("Parent", strconv.Itoa(post.Parent))
	}
	if post.IsSticky {
		row("Sticky", "yes")
	}
	if post.AttachmentURL != nil {
		row("File", *post.AttachmentURL)
	}

	if len(post.Terms) > 0 {
		terms := make([]string, 0, len(post.Terms))
		for _, t := range post.Terms {
			terms = append(terms, t.Domain+":"+t.Slug)
		}
		row("Terms", strings.Join(terms, ", "))
	}

	if post.CustomFields.Len() > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.title.Render("Custom fields"))
		for name, field := range post.CustomFields.All() {
			writeCustomField(w, p, name, field)
		}
	}

	threads := post.CommentThreads()
	if len(threads) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.title.Render("Comments"))
		for _, thread := range threads {
			writeThread(w, p, thread, 1)
		}
	}
}

func writeCustomField(w io.Writer, p palette, name string, field domain.CustomField) {
	if !field.IsGroup() {
		fmt.Fprintf(w, "  %s %s\n", p.label.Render(name+":"), joinEntries(field.Entries))
		return
	}

	fmt.Fprintf(w, "  %s\n", p.label.Render(name+":"))
	for i, entries := range field.Rows {
		fmt.Fprintf(w, "    %s %s\n", p.muted.Render(fmt.Sprintf("[%d]", i)), joinEntries(entries))
	}
}

func joinEntries(entries []domain.FieldEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Key+"="+e.Value)
	}
	return strings.Join(parts, ", ")
}

func writeThread(w io.Writer, p palette, thread domain.CommentThread, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s %s\n", indent, p.value.Render(thread.Author), p.muted.Render(thread.Date))
	for _, line := range strings.Split(strings.TrimSpace(thread.Content), "\n") {
		fmt.Fprintf(w, "%s  %s\n", indent, line)
	}
	for _, child := range thread.Children {
		writeThread(w, p, child, depth+1)
	}
}
