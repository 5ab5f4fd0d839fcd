package cli

import (
	"cost-intelligence-service/internal/services"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show KPIs and cost breakdowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := a.pipeline.Report(cmd.Context(), a.filter)
			if err != nil {
				return err
			}
			a.writer.Summary(rep)
			return nil
		},
	}
}

func newLeakageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leakage",
		Short: "List orders whose cost per km is above the mean",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := a.pipeline.Report(cmd.Context(), a.filter)
			if err != nil {
				return err
			}
			a.writer.Leakage(rep)
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the detailed cost report as CSV",
		Long: `Write the filtered enriched table, with Total_Cost_INR and Cost_per_KM
appended, as CSV. Use --out - to write to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := a.pipeline.Report(cmd.Context(), a.filter)
			if err != nil {
				return err
			}

			if out == "-" {
				return services.WriteCSV(cmd.OutOrStdout(), rep)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := services.WriteCSV(f, rep); err != nil {
				_ = f.Close()
				return fmt.Errorf("export: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d orders to %s\n", len(rep.Records), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", services.ExportFileName, "output file, or - for stdout")
	return cmd
}

func newFiltersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the available priorities and product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priorities, categories, err := a.pipeline.FilterOptions(cmd.Context())
			if err != nil {
				return err
			}
			a.writer.Filters(priorities, categories)
			return nil
		},
	}
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "costreport v%s\n", version)
		},
	}
}
