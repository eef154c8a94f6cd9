package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type OptionsCmd struct {
	configPath string
	dataPath   string
}

func NewOptionsCmd() *cobra.Command {
	oc := &OptionsCmd{}
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the selectable filter values per dimension",
		RunE:  oc.run,
	}

	cmd.Flags().StringVar(&oc.configPath, "config", "", "Path to the application config file")
	cmd.Flags().StringVar(&oc.dataPath, "data", "", "Path to the transactions CSV (skips path probing)")

	return cmd
}

func (oc *OptionsCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	svc, err := buildService(oc.configPath, oc.dataPath, 0)
	if err != nil {
		return err
	}

	opts, err := svc.Options(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute filter options: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Regions:\n%s\n\n", strings.Join(opts.Regions, "\n"))
	fmt.Fprintf(out, "Categories:\n%s\n\n", strings.Join(opts.Categories, "\n"))
	fmt.Fprintf(out, "Sub-Categories:\n%s\n", strings.Join(opts.SubCategories, "\n"))

	return nil
}
