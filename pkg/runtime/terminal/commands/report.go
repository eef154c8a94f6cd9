package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/de-tools/retail-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/retail-atlas/pkg/services/summary"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	configPath    string
	dataPath      string
	topN          int
	regions       []string
	categories    []string
	subCategories []string
	reporter      *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the summary report for a filter selection",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the application config file")
	cmd.Flags().StringVar(&rc.dataPath, "data", "", "Path to the transactions CSV (skips path probing)")
	cmd.Flags().IntVar(&rc.topN, "top", 0, "Number of top customers to include")
	cmd.Flags().StringArrayVar(&rc.regions, "region", nil, "Region to include (repeatable; none means all)")
	cmd.Flags().StringArrayVar(&rc.categories, "category", nil, "Category to include (repeatable; none means all)")
	cmd.Flags().StringArrayVar(&rc.subCategories, "sub-category", nil, "Sub-category to include (repeatable; none means all)")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	svc, err := buildService(rc.configPath, rc.dataPath, rc.topN)
	if err != nil {
		return err
	}

	sel := domain.FilterSelection{
		Regions:       rc.regions,
		Categories:    rc.categories,
		SubCategories: rc.subCategories,
	}

	report, err := svc.Report(ctx, sel)
	if errors.Is(err, summary.ErrEmptyResult) {
		fmt.Fprintln(cmd.OutOrStdout(), "No data matches the selected filters. Please adjust your selections.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	return rc.reporter.Handle(report)
}
