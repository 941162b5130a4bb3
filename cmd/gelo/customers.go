package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gelacuca/gelo/internal/cli"
	"github.com/gelacuca/gelo/internal/common"
	"github.com/gelacuca/gelo/internal/customer"
)

func customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Browse customer profiles derived from the sales history",
		Long: `Customers rolls the order history up into one profile per customer.
Names matching apart from case and surrounding whitespace are the same
customer; the latest non-empty phone and address win. Profiles are
ordered by total spent.`,
	}

	cmd.AddCommand(customersListCmd())
	cmd.AddCommand(customersShowCmd())

	return cmd
}

func customersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers by total spent",
		RunE:  runCustomersList,
	}

	cmd.Flags().StringP("search", "s", "", "filter by name or phone")

	return cmd
}

func runCustomersList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	searchTerm, _ := cmd.Flags().GetString("search")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	orders, err := store.GetOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	profiles := customer.Aggregate(orders)
	if searchTerm != "" {
		profiles = customer.Search(profiles, searchTerm)
	}

	if len(profiles) == 0 {
		fmt.Println(cli.FormatInfo("No customers found."))
		return nil
	}

	fmt.Println(cli.FormatTitle("Customers"))
	fmt.Printf("%s\n", cli.HeaderStyle.Render(fmt.Sprintf("%-25s %-15s %8s %12s %12s", "Name", "Phone", "Orders", "Spent", "Last order")))
	for _, p := range profiles {
		fmt.Printf("%-25s %-15s %8d %12s %12s\n",
			truncate(p.Name, 25),
			p.Phone,
			p.OrderCount,
			cli.FormatCurrency(p.TotalSpent),
			p.LastOrderDate,
		)
	}
	return nil
}

func customersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one customer's profile and order history",
		Args:  cobra.ExactArgs(1),
		RunE:  runCustomersShow,
	}
}

func runCustomersShow(cmd *cobra.Command, args []string) error {
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

	profile := customer.Find(customer.Aggregate(orders), args[0])
	if profile == nil {
		return common.NewUserError(fmt.Sprintf("customer %q not found", args[0]), common.ErrNotFound)
	}

	fmt.Println(cli.FormatTitle(profile.Name))
	if profile.Phone != "" {
		fmt.Printf("Phone:      %s\n", profile.Phone)
	}
	if profile.Address != "" {
		fmt.Printf("Address:    %s\n", profile.Address)
	}
	fmt.Printf("Orders:     %d\n", profile.OrderCount)
	fmt.Printf("Spent:      %s\n", cli.FormatCurrency(profile.TotalSpent))
	fmt.Printf("Last order: %s\n", profile.LastOrderDate)

	fmt.Println()
	fmt.Println(cli.HeaderStyle.Render("History"))
	for _, o := range profile.History {
		fmt.Printf("%-12s %-30s %12s\n",
			o.Date,
			truncate(flavorSummary(o.Flavors), 30),
			cli.FormatCurrency(o.Total),
		)
	}
	return nil
}
