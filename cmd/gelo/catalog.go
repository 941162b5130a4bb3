package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gelacuca/gelo/internal/catalog"
	"github.com/gelacuca/gelo/internal/cli"
	"github.com/gelacuca/gelo/internal/common"
	"github.com/gelacuca/gelo/internal/model"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the pricing catalog and raw materials",
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogSyncCmd())
	cmd.AddCommand(catalogEditProductCmd())
	cmd.AddCommand(catalogAddMaterialCmd())
	cmd.AddCommand(catalogRemoveMaterialCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products with costs and margins, and raw materials",
		RunE:  runCatalogList,
	}
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	products, err := store.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	materials, err := store.GetRawMaterials(ctx)
	if err != nil {
		return fmt.Errorf("failed to load raw materials: %w", err)
	}

	if len(products) == 0 && len(materials) == 0 {
		fmt.Println(cli.FormatInfo("Catalog is empty. Run 'gelo catalog sync' to seed it."))
		return nil
	}

	if len(products) > 0 {
		fmt.Println(cli.FormatTitle("Products"))
		fmt.Printf("%s\n", cli.HeaderStyle.Render(fmt.Sprintf("%-30s %10s %10s %10s %10s", "Flavor", "Price", "Cost", "Margin", "Promo")))
		for _, p := range products {
			fmt.Printf("%-30s %10s %10s %10s %10s\n",
				truncate(p.Name, 30),
				cli.FormatCurrency(p.Price),
				cli.FormatCurrency(p.CostPrice),
				cli.FormatCurrency(p.Margin()),
				cli.FormatCurrency(p.PromoMargin()),
			)
		}
		fmt.Println()
	}

	if len(materials) > 0 {
		fmt.Println(cli.FormatTitle("Raw materials"))
		fmt.Printf("%s\n", cli.HeaderStyle.Render(fmt.Sprintf("%-30s %-10s %10s %8s %12s", "Name", "Unit", "Price", "Yield", "Cost/unit")))
		for _, m := range materials {
			fmt.Printf("%-30s %-10s %10s %8d %12s\n",
				truncate(m.Name, 30),
				m.Unit,
				cli.FormatCurrency(m.Price),
				m.Yield,
				cli.FormatCurrency(m.CostPerUnit),
			)
		}
	}
	return nil
}

func catalogSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the stored catalog against the reference price sheet",
		Long: `Sync compares the stored products and raw materials against the
reference price sheet. Materials match by name ignoring case, products
match by slug. Matched entries are refreshed in place, keeping their
ids; unmatched reference entries are created. Nothing is ever deleted,
and the whole plan is applied atomically.`,
		RunE: runCatalogSync,
	}
}

func runCatalogSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	products, err := store.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	materials, err := store.GetRawMaterials(ctx)
	if err != nil {
		return fmt.Errorf("failed to load raw materials: %w", err)
	}

	plan := catalog.Reconcile(catalog.ReferenceMaterials(), catalog.ReferenceProducts(), materials, products)
	if plan.Empty() {
		fmt.Println(cli.FormatInfo("Catalog already up to date."))
		return nil
	}

	if err := store.ApplyCatalogPlan(ctx, plan); err != nil {
		return fmt.Errorf("failed to apply catalog plan: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Catalog synced: %d created, %d updated", plan.Creates(), plan.Updates())))
	return nil
}

func catalogEditProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit-product <slug>",
		Short: "Edit a product's sale price or production costs",
		Long: `Edit-product reprices one flavor in place, keeping its id. Only the
flags given are changed; products are never deleted.

Example:
  gelo catalog edit-product oreo --price 5 --promo-cost 1.10`,
		Args: cobra.ExactArgs(1),
		RunE: runCatalogEditProduct,
	}

	cmd.Flags().Float64("price", 0, "sale price")
	cmd.Flags().Float64("cost-price", 0, "production cost per unit")
	cmd.Flags().Float64("promo-cost", 0, "production cost per unit at promotional purchase prices")

	return cmd
}

func runCatalogEditProduct(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	slug := args[0]

	if !cmd.Flags().Changed("price") && !cmd.Flags().Changed("cost-price") && !cmd.Flags().Changed("promo-cost") {
		return fmt.Errorf("nothing to change: pass --price, --cost-price or --promo-cost")
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

	var product *model.Product
	for i := range products {
		if products[i].Slug == slug {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return common.NewUserError(fmt.Sprintf("product %q not found", slug), common.ErrNotFound)
	}

	if cmd.Flags().Changed("price") {
		product.Price, _ = cmd.Flags().GetFloat64("price")
	}
	if cmd.Flags().Changed("cost-price") {
		product.CostPrice, _ = cmd.Flags().GetFloat64("cost-price")
	}
	if cmd.Flags().Changed("promo-cost") {
		product.PromoCost, _ = cmd.Flags().GetFloat64("promo-cost")
	}

	if err := store.UpdateProduct(ctx, product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s repriced: %s (margin %s)",
		product.Name, cli.FormatCurrency(product.Price), cli.FormatCurrency(product.Margin()))))
	return nil
}

func catalogAddMaterialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-material <name> <price>",
		Short: "Add or reprice a raw material",
		Args:  cobra.ExactArgs(2),
		RunE:  runCatalogAddMaterial,
	}

	cmd.Flags().StringP("unit", "u", "un", "purchase unit (kg, L, un, ...)")
	cmd.Flags().IntP("yield", "y", 1, "servings one purchase unit yields")
	cmd.Flags().Float64P("promo-price", "p", 0, "promotional price, if any")

	return cmd
}

func runCatalogAddMaterial(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name := args[0]
	var price float64
	if _, err := fmt.Sscanf(args[1], "%f", &price); err != nil {
		return fmt.Errorf("invalid price %q: %w", args[1], err)
	}

	unit, _ := cmd.Flags().GetString("unit")
	yield, _ := cmd.Flags().GetInt("yield")
	promoPrice, _ := cmd.Flags().GetFloat64("promo-price")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	material := &model.RawMaterial{
		Name:       name,
		Unit:       unit,
		Price:      price,
		PromoPrice: promoPrice,
		Yield:      yield,
	}

	if err := store.SaveRawMaterial(ctx, material); err != nil {
		return fmt.Errorf("failed to save raw material: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Material %q saved (%s per serving)", name, cli.FormatCurrency(material.CostPerUnit))))
	return nil
}

func catalogRemoveMaterialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-material <id>",
		Short: "Remove a raw material",
		Args:  cobra.ExactArgs(1),
		RunE:  runCatalogRemoveMaterial,
	}
}

func runCatalogRemoveMaterial(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.DeleteRawMaterial(ctx, args[0]); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("raw material %q not found", args[0])
		}
		return fmt.Errorf("failed to delete raw material: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Material removed"))
	return nil
}
