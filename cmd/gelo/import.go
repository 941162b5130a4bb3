package main

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gelacuca/gelo/internal/cli"
	"github.com/gelacuca/gelo/internal/importer"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from external sources",
	}

	cmd.AddCommand(importLegacyCmd())

	return cmd
}

func importLegacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy <file.json>",
		Short: "Import a legacy JSON export of mixed orders and expenses",
		Long: `Legacy imports the JSON dump of the old bookkeeping system: a flat
array of records where a type tag tells orders and expenses apart.
Records with known defects are repaired in place (missing timestamps,
missing flavor maps); records with an unknown type are skipped. The
prepared batch is written atomically.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportLegacy,
	}

	cmd.Flags().Bool("dry-run", false, "sanitize and report without writing")

	return cmd
}

func runImportLegacy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	records, err := importer.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	docs, stats := importer.Sanitize(records, time.Now)

	fmt.Printf("Prepared %d documents (%d skipped, %d repaired)\n", stats.Prepared, stats.Skipped, stats.Repaired)

	if dryRun {
		fmt.Println(cli.FormatInfo("Dry run: nothing written."))
		return nil
	}
	if len(docs) == 0 {
		fmt.Println(cli.FormatWarning("Nothing to import."))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(docs),
		progressbar.OptionSetDescription("Importing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	err = store.ImportDocuments(ctx, docs, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("failed to import documents: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d documents from %s", len(docs), args[0])))
	return nil
}
