package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cfikit/cmd/cfi/ui"
	"cfikit/internal/taxonomy"
)

// categoriesCmd lists the top-level instrument categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the instrument categories (position 1)",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

// groupsCmd lists the groups of one category
var groupsCmd = &cobra.Command{
	Use:   "groups [category]",
	Short: "List the groups of a category (position 2)",
	Long: `Lists the groups legal under a category.

Example:
  cfi groups E`,
	Args: cobra.ExactArgs(1),
	RunE: runGroups,
}

// attributesCmd lists the attribute options of a category-group pair
var attributesCmd = &cobra.Command{
	Use:   "attributes [pair] [position]",
	Short: "List attribute options for a category-group pair (positions 3-6)",
	Long: `Lists the legal attribute values for a category-group pair, either
at one position or at all four. Pairs without explicit rules report the
permissive fallback.

Examples:
  cfi attributes ES
  cfi attributes ES 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAttributes,
}

func runCategories(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}
	table := ui.NewSimpleTable("Categories", []string{"Code", "Description"})
	for _, e := range tax.Categories() {
		table.AddRow(e.Code, e.Description)
	}
	fmt.Print(table.View(ui.DefaultStyles(cfg.NoColor)))
	return nil
}

func runGroups(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}
	cat := normalizeCode(args[0])
	desc, err := tax.CategoryDescription(cat)
	if err != nil {
		return err
	}
	groups, err := tax.Groups(cat)
	if err != nil {
		return err
	}
	table := ui.NewSimpleTable(fmt.Sprintf("Groups of %s - %s", cat, desc), []string{"Code", "Description"})
	for _, e := range groups {
		table.AddRow(e.Code, e.Description)
	}
	fmt.Print(table.View(ui.DefaultStyles(cfg.NoColor)))
	return nil
}

func runAttributes(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	pair := normalizeCode(args[0])
	if len(pair) != 2 {
		return fmt.Errorf("pair must be two letters (category + group), got %q", args[0])
	}
	cat, grp := pair[:1], pair[1:2]

	positions := []int{3, 4, 5, 6}
	if len(args) == 2 {
		pos, err := strconv.Atoi(args[1])
		if err != nil || pos < taxonomy.MinAttributePosition || pos > taxonomy.MaxAttributePosition {
			return fmt.Errorf("position must be 3-6, got %q", args[1])
		}
		positions = []int{pos}
	}

	if !tax.DefinedPair(cat, grp) {
		// Make sure the pair itself exists before reporting the fallback.
		if _, err := tax.GroupDescription(cat, grp); err != nil {
			return err
		}
		fmt.Printf("No explicit attribute rules for %s; any letter is accepted at positions 3-6 (X recommended).\n", pair)
	}

	for _, pos := range positions {
		options, err := tax.AttributeOptions(cat, grp, pos)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable(fmt.Sprintf("%s position %d", pair, pos), []string{"Code", "Description"})
		for _, e := range options {
			table.AddRow(e.Code, e.Description)
		}
		fmt.Print(table.View(ui.DefaultStyles(cfg.NoColor)))
	}
	return nil
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
