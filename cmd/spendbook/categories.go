package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mhellwig/spendbook/internal/domain"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage expense categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render(""),
				headerStyle.Render("Name"),
				headerStyle.Render("Monthly limit"))

			for _, c := range a.Categories.All() {
				limit := dimStyle.Render("none")
				if !c.Unlimited() {
					limit = formatAmount(c.Limit)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", swatch(c.Color), categoryLabel(c), limit)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		colorFlag string
		limitFlag float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := domain.ParseHexColor(colorFlag)
			if err != nil {
				return fmt.Errorf("invalid color %q, want #rrggbb", colorFlag)
			}
			if limitFlag < 0 {
				return domain.ErrInvalidLimit
			}

			category, err := domain.NewCategory(args[0], color)
			if err != nil {
				return err
			}
			category.Limit = decimal.NewFromFloat(limitFlag)

			a, err := openApp()
			if err != nil {
				return err
			}
			if !a.Categories.Add(category) {
				fmt.Printf("Category %q already exists.\n", category.Name)
				return nil
			}
			if err := a.Flush(); err != nil {
				return err
			}
			fmt.Printf("Added category %s.\n", categoryLabel(category))
			return nil
		},
	}

	cmd.Flags().StringVar(&colorFlag, "color", "#9e9e9e", "category color as #rrggbb")
	cmd.Flags().Float64Var(&limitFlag, "limit", 0, "monthly spending limit (0 = none)")
	return cmd
}

func editCategoryCmd() *cobra.Command {
	var (
		nameFlag  string
		colorFlag string
		limitFlag float64
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Rename, recolor, or set the limit of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}

			existing, err := a.Categories.ByName(args[0])
			if err != nil {
				return fmt.Errorf("category %q: %w", args[0], err)
			}

			name := existing.Name
			if cmd.Flags().Changed("name") {
				name = nameFlag
			}
			color := existing.Color
			if cmd.Flags().Changed("color") {
				if color, err = domain.ParseHexColor(colorFlag); err != nil {
					return fmt.Errorf("invalid color %q, want #rrggbb", colorFlag)
				}
			}
			limit := existing.Limit
			if cmd.Flags().Changed("limit") {
				if limitFlag < 0 {
					return domain.ErrInvalidLimit
				}
				limit = decimal.NewFromFloat(limitFlag)
			}

			updated, err := domain.NewCategory(name, color)
			if err != nil {
				return err
			}
			updated.Limit = limit

			if !a.Categories.Update(existing.Name, updated) {
				fmt.Printf("Category %q was not changed.\n", existing.Name)
				return nil
			}
			if err := a.Flush(); err != nil {
				return err
			}
			fmt.Printf("Updated category %s.\n", categoryLabel(existing))
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "new name")
	cmd.Flags().StringVar(&colorFlag, "color", "", "new color as #rrggbb")
	cmd.Flags().Float64Var(&limitFlag, "limit", 0, "new monthly limit (0 = none)")
	return cmd
}

func removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a category, moving its expenses to the default category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}

			category, err := a.Categories.ByName(args[0])
			if errors.Is(err, domain.ErrCategoryNotFound) {
				fmt.Printf("No category named %q.\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			if !a.Categories.Remove(category) {
				fmt.Printf("Category %q cannot be removed.\n", category.Name)
				return nil
			}
			if err := a.Flush(); err != nil {
				return err
			}
			fmt.Printf("Removed category %q.\n", category.Name)
			return nil
		},
	}
}
