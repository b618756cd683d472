package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <file|->",
	Short: "List custom field definitions",
	Long: `List the Advanced Custom Fields definitions registered by an export.

Definitions whose settings could not be decoded are reported as diagnostics
and left out of the list.`,
	Args: cobra.ExactArgs(1),
	RunE: runFields,
}

var fieldsOutput outputOptions

func init() {
	addOutputFlags(fieldsCmd, &fieldsOutput)
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) error {
	result, err := loadResult(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	definitions := result.CustomFields.Values()

	if fieldsOutput.format != "" {
		format, indent, err := fieldsOutput.resolve(cmd)
		if err != nil {
			return err
		}
		return writeEncoded(cmd.OutOrStdout(), definitions, format, indent)
	}

	out := cmd.OutOrStdout()
	if len(definitions) == 0 {
		fmt.Fprintln(out, "No custom field definitions.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIELD ID", "NAME", "TYPE", "PARENT", "POST")
	for _, def := range definitions {
		parent := "-"
		if def.ParentPostID != 0 {
			parent = strconv.Itoa(def.ParentPostID)
		}
		t.Row(def.ID, def.Name, def.Type, parent, strconv.Itoa(def.PostID))
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d definition(s)\n", len(definitions))
	return nil
}
