package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gelacuca/gelo/internal/cli"
	"github.com/gelacuca/gelo/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and list expenses",
	}

	cmd.AddCommand(expenseAddCmd())
	cmd.AddCommand(expenseListCmd())

	return cmd
}

func expenseAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(2),
		RunE:  runExpenseAdd,
	}

	cmd.Flags().StringP("date", "d", "", "expense date as YYYY-MM-DD (default: today)")
	cmd.Flags().String("author", "", "who recorded the expense")

	return cmd
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	description := args[0]
	var amount float64
	if _, err := fmt.Sscanf(args[1], "%f", &amount); err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}
	if amount < 0 {
		return fmt.Errorf("invalid amount %q: must not be negative", args[1])
	}

	dateFlag, _ := cmd.Flags().GetString("date")
	author, _ := cmd.Flags().GetString("author")

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	expense := &model.Expense{
		Date:        date,
		Description: description,
		Author:      author,
		Amount:      sanitizeAmount(amount),
	}

	if err := store.SaveExpense(ctx, expense); err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Expense recorded: %s", cli.FormatCurrency(expense.Amount))))
	return nil
}

func expenseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses, newest first",
		RunE:  runExpenseList,
	}
}

func runExpenseList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	expenses, err := store.GetExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	if len(expenses) == 0 {
		fmt.Println(cli.FormatInfo("No expenses recorded yet."))
		return nil
	}

	var total float64
	fmt.Println(cli.FormatTitle("Expenses"))
	fmt.Printf("%s\n", cli.HeaderStyle.Render(fmt.Sprintf("%-12s %-35s %12s", "Date", "Description", "Amount")))
	for _, e := range expenses {
		fmt.Printf("%-12s %-35s %12s\n",
			e.Date,
			truncate(e.Description, 35),
			cli.FormatCurrency(e.Amount),
		)
		total += e.Amount
	}
	fmt.Println()
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Total:"), cli.FormatCurrency(total))
	return nil
}
