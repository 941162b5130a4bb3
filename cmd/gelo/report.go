package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gelacuca/gelo/internal/cli"
	"github.com/gelacuca/gelo/internal/export"
	"github.com/gelacuca/gelo/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the cash-flow report for a time window",
		Long: `Report aggregates sales and expenses into a rolling window ending
today: the last 7 days, the last 30 days, or the last 12 months. It
prints revenue, expenses and profit per bucket plus the best-selling
flavors, and can export the same report as an XLSX workbook.`,
		RunE: runReport,
	}

	cmd.Flags().StringP("range", "r", "week", "time window (week, month, year)")
	cmd.Flags().StringP("out", "o", "", "write the report as an XLSX workbook to this path")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rangeFlag, _ := cmd.Flags().GetString("range")
	outFlag, _ := cmd.Flags().GetString("out")

	rng, err := report.ParseRange(rangeFlag)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	orders, err := store.GetOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	expenses, err := store.GetExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	rep := report.Build(orders, expenses, rng, time.Now())

	if outFlag != "" {
		data, err := export.BuildReportWorkbook(rep)
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		if err := os.WriteFile(outFlag, data, 0o644); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Report exported to %s", outFlag)))
		return nil
	}

	printReport(rep)
	return nil
}

func printReport(rep report.Report) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Cash Flow (%s, since %s)", rep.Range, rep.Cutoff)))
	fmt.Println()

	fmt.Printf("%s\n", cli.HeaderStyle.Render(fmt.Sprintf("%-10s %14s %14s %14s", "Period", "Revenue", "Expenses", "Profit")))
	for _, b := range rep.Buckets {
		profit := cli.FormatCurrency(b.Profit)
		if b.Profit < 0 {
			profit = cli.NegativeStyle.Render(profit)
		}
		fmt.Printf("%-10s %14s %14s %14s\n",
			b.Label,
			cli.FormatCurrency(b.Revenue),
			cli.FormatCurrency(b.Expense),
			profit,
		)
	}

	fmt.Println()
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Revenue: "), cli.FormatCurrency(rep.Totals.Revenue))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Expenses:"), cli.FormatCurrency(rep.Totals.Expense))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Balance: "), cli.FormatBalance(rep.Totals.Balance))

	if len(rep.TopFlavors) > 0 {
		fmt.Println()
		fmt.Println(cli.HeaderStyle.Render("Top flavors"))
		for i, fc := range rep.TopFlavors {
			fmt.Printf("%d. %-20s %d\n", i+1, fc.Name, fc.Count)
		}
	}
}
