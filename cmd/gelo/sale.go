package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gelacuca/gelo/internal/catalog"
	"github.com/gelacuca/gelo/internal/cli"
	"github.com/gelacuca/gelo/internal/model"
	"github.com/gelacuca/gelo/internal/pricing"
)

func saleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Record and list sales",
	}

	cmd.AddCommand(saleAddCmd())
	cmd.AddCommand(saleListCmd())

	return cmd
}

func saleAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a sale",
		Long: `Add records one sale. The total is computed from the catalog
prices of the selected flavors plus the delivery fee minus the
discount, and never drops below zero.

Example:
  gelo sale add --flavor coco=3 --flavor ninho_morango=2 \
    --customer "Ana" --fee 5 --discount 2`,
		RunE: runSaleAdd,
	}

	cmd.Flags().StringArrayP("flavor", "f", nil, "flavor and quantity as key=qty (repeatable)")
	cmd.Flags().StringP("customer", "c", "", "customer name")
	cmd.Flags().String("phone", "", "customer phone")
	cmd.Flags().String("address", "", "delivery address")
	cmd.Flags().Float64("fee", 0, "delivery fee")
	cmd.Flags().Float64("discount", 0, "discount")
	cmd.Flags().StringP("date", "d", "", "sale date as YYYY-MM-DD (default: today)")

	return cmd
}

func runSaleAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	flavorFlags, _ := cmd.Flags().GetStringArray("flavor")
	customer, _ := cmd.Flags().GetString("customer")
	phone, _ := cmd.Flags().GetString("phone")
	address, _ := cmd.Flags().GetString("address")
	fee, _ := cmd.Flags().GetFloat64("fee")
	discount, _ := cmd.Flags().GetFloat64("discount")
	dateFlag, _ := cmd.Flags().GetString("date")

	flavors, err := parseFlavorFlags(flavorFlags)
	if err != nil {
		return err
	}
	if len(flavors) == 0 {
		return fmt.Errorf("at least one --flavor key=qty is required")
	}

	date, err := parseDateFlag(dateFlag)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	products, err := store.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) == 0 {
		products = catalog.DefaultProducts()
	}

	fee = sanitizeAmount(fee)
	discount = sanitizeAmount(discount)
	total := pricing.ComputeTotal(flavors, fee, discount, products)

	order := &model.Order{
		Date:         date,
		CustomerName: customer,
		Phone:        phone,
		Address:      address,
		Flavors:      flavors,
		DeliveryFee:  fee,
		Discount:     discount,
		Total:        total,
	}

	if err := store.SaveOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Sale recorded: %s", cli.FormatCurrency(total))))
	return nil
}

func saleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded sales, newest first",
		RunE:  runSaleList,
	}
}

func runSaleList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	orders, err := store.GetOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Println(cli.FormatInfo("No sales recorded yet."))
		return nil
	}

	fmt.Println(cli.FormatTitle("Sales"))
	fmt.Printf("%s\n", cli.HeaderStyle.Render(fmt.Sprintf("%-12s %-20s %-30s %12s", "Date", "Customer", "Flavors", "Total")))
	for _, o := range orders {
		fmt.Printf("%-12s %-20s %-30s %12s\n",
			o.Date,
			truncate(o.CustomerName, 20),
			truncate(flavorSummary(o.Flavors), 30),
			cli.FormatCurrency(o.Total),
		)
	}
	return nil
}

func flavorSummary(flavors map[string]int) string {
	keys := make([]string, 0, len(flavors))
	for k := range flavors {
		keys = append(keys, k)
	}
	// Stable display order.
	sort.Strings(keys)

	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%dx %s", flavors[k], catalog.KeyLabel(k))
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
