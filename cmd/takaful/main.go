// cmd/takaful/main.go

// Command takaful is the operator tool for a Takaful installation: it
// initializes or resets the store and produces summary reports and
// spreadsheet exports against the configured backend.
//
// Usage:
//
//	takaful init     seed the store with the default collections
//	takaful reset    clear every collection back to seed defaults
//	takaful report   print a beneficiary summary to stdout
//	takaful export           write beneficiaries.xlsx in the working directory
//	takaful export summary   write summary.xlsx instead
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/bootstrap"
	"github.com/takafulhq/takaful/internal/app/features/reports"
	"github.com/takafulhq/takaful/internal/domain/models"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "takaful:", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	_, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		return err
	}
	if err := bootstrap.ValidateConfig(appCfg, logger); err != nil {
		return err
	}

	ctx := context.Background()
	app, err := bootstrap.New(ctx, appCfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	cmd := "report"
	if args := os.Args[1:]; len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "init":
		return seed(ctx, app)
	case "reset":
		if err := app.Store.ResetAll(ctx); err != nil {
			return err
		}
		logger.Info("store reset to seed defaults")
		return nil
	case "report":
		return report(ctx, app)
	case "export":
		if args := os.Args[2:]; len(args) > 0 && args[0] == "summary" {
			return exportSummary(ctx, app)
		}
		return export(ctx, app)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// seed materializes the seed defaults by loading each collection (which
// substitutes the documented defaults for missing keys) and saving it back.
func seed(ctx context.Context, app *bootstrap.App) error {
	branches, err := app.Store.Branches.Load(ctx)
	if err != nil {
		return err
	}
	if err := app.Store.Branches.Save(ctx, branches); err != nil {
		return err
	}
	users, err := app.Store.Users.Load(ctx)
	if err != nil {
		return err
	}
	if err := app.Store.Users.Save(ctx, users); err != nil {
		return err
	}
	cats, err := app.Store.Tags.LoadCategories(ctx)
	if err != nil {
		return err
	}
	if err := app.Store.Tags.SaveCategories(ctx, cats); err != nil {
		return err
	}
	conds, err := app.Store.Tags.LoadHealthConditions(ctx)
	if err != nil {
		return err
	}
	return app.Store.Tags.SaveHealthConditions(ctx, conds)
}

func report(ctx context.Context, app *bootstrap.App) error {
	beneficiaries, err := app.Store.Beneficiaries.Load(ctx)
	if err != nil {
		return err
	}
	branches, err := app.Store.Branches.Load(ctx)
	if err != nil {
		return err
	}

	snap := reports.Summarize(beneficiaries, branches, time.Now().UTC())
	fmt.Printf("Beneficiaries: %d\n", snap.Total)
	printSection("By type", snap.ByType, snap.Total)
	printSection("By status", snap.ByStatus, snap.Total)
	printSection("By sponsorship", snap.BySponsorship, snap.Total)
	printSection("By age", snap.ByAgeBucket, snap.Total)
	printSection("By branch", snap.ByBranchName, snap.Total)
	return nil
}

func printSection(title string, counts map[string]int, total int) {
	fmt.Println(title + ":")
	for key, count := range counts {
		fmt.Printf("  %-20s %5d  %5.1f%%\n", models.Label(key), count, reports.Percent(count, total))
	}
}

func export(ctx context.Context, app *bootstrap.App) error {
	beneficiaries, err := app.Store.Beneficiaries.Load(ctx)
	if err != nil {
		return err
	}
	regions, err := app.Store.Regions.Load(ctx)
	if err != nil {
		return err
	}
	branches, err := app.Store.Branches.Load(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create("beneficiaries.xlsx")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return reports.ExportBeneficiaries(f, beneficiaries, regions, branches)
}

func exportSummary(ctx context.Context, app *bootstrap.App) error {
	beneficiaries, err := app.Store.Beneficiaries.Load(ctx)
	if err != nil {
		return err
	}
	branches, err := app.Store.Branches.Load(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create("summary.xlsx")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	now := time.Now().UTC()
	return reports.ExportSummary(f, reports.Summarize(beneficiaries, branches, now), now)
}
