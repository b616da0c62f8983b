package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mhellwig/spendbook/internal/attachment"
	"github.com/mhellwig/spendbook/internal/domain"
	"github.com/mhellwig/spendbook/internal/store"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"exp"},
		Short:   "Record and browse expenses",
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(editExpenseCmd())
	cmd.AddCommand(removeExpenseCmd())
	cmd.AddCommand(summaryCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		dateFlag        string
		timeFlag        string
		locationFlag    string
		amountFlag      string
		descriptionFlag string
		categoryFlag    string
		imageFlag       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}
			timeOfDay, err := parseTimeFlag(timeFlag)
			if err != nil {
				return err
			}
			amount, err := parseAmountFlag(amountFlag)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}

			category, err := a.Categories.ByName(categoryFlag)
			if err != nil {
				return fmt.Errorf("category %q: %w", categoryFlag, err)
			}

			// Soft limit gate before the expense is committed.
			report := a.Budget.Evaluate(category, amount, uuid.Nil)
			if !confirmOverLimit(category, report) {
				fmt.Println("Aborted.")
				return nil
			}

			expense, err := domain.NewExpense(date, locationFlag, amount, descriptionFlag)
			if err != nil {
				return err
			}
			expense.Time = timeOfDay
			expense.Category = category

			if imageFlag != "" {
				path, err := attachment.Copy(a.DataDir(), imageFlag)
				if err != nil {
					return err
				}
				expense.ImagePath = &path
			}

			a.Expenses.Add(expense)
			if err := a.Flush(); err != nil {
				return err
			}
			fmt.Printf("Recorded %s at %q (%s).\n",
				formatAmount(expense.Amount), expense.Location, expense.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "time of day as HH:MM")
	cmd.Flags().StringVar(&locationFlag, "location", "", "where the money was spent")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "amount spent")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "what the money was spent on")
	cmd.Flags().StringVar(&categoryFlag, "category", domain.DefaultCategoryName, "category name")
	cmd.Flags().StringVar(&imageFlag, "image", "", "receipt image to attach")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func listExpensesCmd() *cobra.Command {
	var (
		searchFlag     string
		categoriesFlag []string
		periodFlag     string
		dateFlag       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}

			filter := store.Filter{Search: searchFlag}
			for _, name := range categoriesFlag {
				category, err := a.Categories.ByName(name)
				if err != nil {
					return fmt.Errorf("category %q: %w", name, err)
				}
				filter.Categories = append(filter.Categories, category)
			}
			if periodFlag != "" {
				period, err := domain.ParsePeriod(periodFlag)
				if err != nil {
					return err
				}
				reference, err := parseDateFlag(dateFlag)
				if err != nil {
					return err
				}
				filter.Period = period
				filter.Reference = reference
				fmt.Println(headerStyle.Render(period.DisplayText(reference)))
			}

			expenses := a.Expenses.Query(filter)
			if len(expenses) == 0 {
				fmt.Println(dimStyle.Render("No matching expenses."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Date"),
				headerStyle.Render("Time"),
				headerStyle.Render("Location"),
				headerStyle.Render("Amount"),
				headerStyle.Render("Description"),
				headerStyle.Render("Category"))

			total := decimal.Zero
			for _, e := range expenses {
				timeOfDay := ""
				if e.Time != nil {
					timeOfDay = e.Time.Format(domain.TimeLayout)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					dimStyle.Render(e.ID.String()),
					e.Date.Format(domain.DisplayDateLayout),
					timeOfDay,
					e.Location,
					formatAmount(e.Amount),
					e.Description,
					categoryLabel(e.Category))
				total = total.Add(e.Amount)
			}
			fmt.Fprintf(w, "\t\t\t%s\t%s\t\t\n", headerStyle.Render("Total"), formatAmount(total))
			return nil
		},
	}

	cmd.Flags().StringVar(&searchFlag, "search", "", "match location or description")
	cmd.Flags().StringSliceVar(&categoriesFlag, "category", nil, "restrict to categories (repeatable)")
	cmd.Flags().StringVar(&periodFlag, "period", "", "restrict to a period: day, week, month, year")
	cmd.Flags().StringVar(&dateFlag, "date", "", "reference date for --period (default today)")
	return cmd
}

func editExpenseCmd() *cobra.Command {
	var (
		dateFlag        string
		timeFlag        string
		locationFlag    string
		amountFlag      string
		descriptionFlag string
		categoryFlag    string
		imageFlag       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a recorded expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			existing, err := a.Expenses.ByID(id)
			if err != nil {
				return err
			}

			updated := *existing
			if cmd.Flags().Changed("date") {
				if updated.Date, err = parseDateFlag(dateFlag); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("time") {
				if updated.Time, err = parseTimeFlag(timeFlag); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("location") {
				updated.Location = locationFlag
			}
			if cmd.Flags().Changed("amount") {
				if updated.Amount, err = parseAmountFlag(amountFlag); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("description") {
				updated.Description = descriptionFlag
			}
			if cmd.Flags().Changed("category") {
				category, err := a.Categories.ByName(categoryFlag)
				if err != nil {
					return fmt.Errorf("category %q: %w", categoryFlag, err)
				}
				updated.Category = category
			}
			if cmd.Flags().Changed("image") {
				path, err := attachment.Copy(a.DataDir(), imageFlag)
				if err != nil {
					return err
				}
				updated.ImagePath = &path
			}

			// Exclude the expense being edited from the month-to-date sum
			// so its old amount is not double counted.
			report := a.Budget.Evaluate(updated.Category, updated.Amount, updated.ID)
			if !confirmOverLimit(updated.Category, report) {
				fmt.Println("Aborted.")
				return nil
			}

			a.Expenses.Update(&updated)
			if err := a.Flush(); err != nil {
				return err
			}
			fmt.Printf("Updated expense %s.\n", updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(&timeFlag, "time", "", "time of day as HH:MM")
	cmd.Flags().StringVar(&locationFlag, "location", "", "where the money was spent")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "amount spent")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "what the money was spent on")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "category name")
	cmd.Flags().StringVar(&imageFlag, "image", "", "receipt image to attach")
	return cmd
}

func removeExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a recorded expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			if !a.Expenses.Remove(id) {
				fmt.Printf("No expense with id %s.\n", id)
				return nil
			}
			if err := a.Flush(); err != nil {
				return err
			}
			fmt.Printf("Removed expense %s.\n", id)
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show month-to-date spend per category against its limit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Spent"),
				headerStyle.Render("Limit"),
				headerStyle.Render("Remaining"))

			for _, c := range a.Categories.All() {
				spent := a.Budget.SpentThisMonth(c)
				limit := dimStyle.Render("none")
				remaining := ""
				if !c.Unlimited() {
					limit = formatAmount(c.Limit)
					left := c.Limit.Sub(spent)
					if left.IsNegative() {
						remaining = warnStyle.Render("over by " + formatAmount(left.Neg()))
					} else {
						remaining = formatAmount(left)
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					categoryLabel(c), formatAmount(spent), limit, remaining)
			}
			return nil
		},
	}
}
