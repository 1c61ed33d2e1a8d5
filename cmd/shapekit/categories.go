package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/shapekit/internal/shape"
)

func newCategoriesCmd(rootFlags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the radius categories known to the shapes file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := loadResolver(cmd, rootFlags)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderCategoriesJSON(cmd, resolver.Categories())
			}
			return renderCategoriesTable(cmd, resolver.Categories())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output categories as JSON")

	return cmd
}

func renderCategoriesTable(cmd *cobra.Command, categories shape.Categories) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	title := cases.Title(language.English)

	fmt.Fprintln(writer, "NAME\tLABEL\tRADIUS\tVALUE")
	for _, name := range categories.Names() {
		category, _ := categories.Lookup(name)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", name, title.String(name), category.Radius, category.Value())
	}

	return writer.Flush()
}

type categoryJSON struct {
	Name           string `json:"name"`
	Radius         string `json:"radius"`
	Value          string `json:"value"`
	CustomProperty string `json:"custom_property,omitempty"`
}

type categoriesJSONPayload struct {
	Count      int            `json:"count"`
	Categories []categoryJSON `json:"categories"`
}

func renderCategoriesJSON(cmd *cobra.Command, categories shape.Categories) error {
	payload := categoriesJSONPayload{
		Count:      categories.Len(),
		Categories: make([]categoryJSON, 0, categories.Len()),
	}

	for _, name := range categories.Names() {
		category, _ := categories.Lookup(name)
		payload.Categories = append(payload.Categories, categoryJSON{
			Name:           name,
			Radius:         category.Radius.String(),
			Value:          category.Value().String(),
			CustomProperty: category.CustomProperty,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
