package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"cfikit/internal/taxonomy"
)

var referenceRaw bool

// referenceCmd renders the whole taxonomy as a markdown reference document
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Render the full taxonomy as a reference document",
	Args:  cobra.NoArgs,
	RunE:  runReference,
}

func runReference(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	md := referenceMarkdown(tax)
	if referenceRaw || cfg.NoColor {
		fmt.Print(md)
		return nil
	}
	fmt.Print(renderMarkdown(md))
	return nil
}

// referenceMarkdown builds the reference document: one section per category,
// its groups, and the attribute rules of every defined pair.
func referenceMarkdown(tax *taxonomy.Taxonomy) string {
	var sb strings.Builder
	sb.WriteString("# ISO 10962 CFI Taxonomy\n\n")

	for _, cat := range tax.Categories() {
		fmt.Fprintf(&sb, "## %s - %s\n\n", cat.Code, cat.Description)

		groups, err := tax.Groups(cat.Code)
		if err != nil {
			continue
		}
		for _, grp := range groups {
			fmt.Fprintf(&sb, "### %s%s - %s\n\n", cat.Code, grp.Code, grp.Description)
			if !tax.DefinedPair(cat.Code, grp.Code) {
				sb.WriteString("No explicit attribute rules; any letter is accepted at positions 3-6 (X recommended).\n\n")
				continue
			}
			for pos := taxonomy.MinAttributePosition; pos <= taxonomy.MaxAttributePosition; pos++ {
				options, err := tax.AttributeOptions(cat.Code, grp.Code, pos)
				if err != nil {
					continue
				}
				fmt.Fprintf(&sb, "Position %d:\n\n", pos)
				for _, o := range options {
					fmt.Fprintf(&sb, "- `%s` %s\n", o.Code, o.Description)
				}
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// renderMarkdown renders markdown for the terminal with panic recovery;
// if glamour fails the plain document is returned.
func renderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func init() {
	referenceCmd.Flags().BoolVar(&referenceRaw, "raw", false, "print plain markdown without terminal styling")
}
