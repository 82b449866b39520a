// ABOUTME: Course category commands: list, create, update, delete

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/api"
)

var (
	categoryName        string
	categoryDescription string
	categoryColor       string
	categoryIcon        string
	categorySortOrder   int
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage course categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List course categories",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runCategoriesList)
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course category",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runCategoriesCreate(ctx, w)
		})
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a course category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runCategoriesUpdate(ctx, w, args[0])
		})
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a course category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runCategoriesDelete(ctx, w, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd, categoriesCreateCmd, categoriesUpdateCmd, categoriesDeleteCmd)

	for _, c := range []*cobra.Command{categoriesCreateCmd, categoriesUpdateCmd} {
		c.Flags().StringVar(&categoryName, "name", "", "Category name")
		c.Flags().StringVar(&categoryDescription, "description", "", "Category description")
		c.Flags().StringVar(&categoryColor, "color", "#3B82F6", "Display color (hex)")
		c.Flags().StringVar(&categoryIcon, "icon", "BookOpen", "Display icon name")
		c.Flags().IntVar(&categorySortOrder, "sort-order", 0, "Ordering weight in listings")
	}
	categoriesCreateCmd.MarkFlagRequired("name")
}

func categoryInput() api.CategoryInput {
	return api.CategoryInput{
		Name:        categoryName,
		Description: categoryDescription,
		Color:       categoryColor,
		Icon:        categoryIcon,
		SortOrder:   categorySortOrder,
	}
}

func runCategoriesList(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	categories, err := s.gate.ListCategories(ctx)
	if err != nil {
		return fail(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(categories, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tSORT")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", c.ID, c.Name, c.Description, c.SortOrder)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d categor(ies)\n", len(categories))
	return 0
}

func runCategoriesCreate(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.CreateCategory(ctx, categoryInput()); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Category created")
	return 0
}

func runCategoriesUpdate(ctx context.Context, w io.Writer, id string) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.UpdateCategory(ctx, id, categoryInput()); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Category updated")
	return 0
}

func runCategoriesDelete(ctx context.Context, w io.Writer, id string) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.DeleteCategory(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Category deleted")
	return 0
}
