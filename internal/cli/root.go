// Package cli provides the costreport command-line interface.
package cli

import (
	"cost-intelligence-service/internal/adapters/csvsource"
	"cost-intelligence-service/internal/domain"
	"cost-intelligence-service/internal/platform/config"
	"cost-intelligence-service/internal/platform/obs"
	"cost-intelligence-service/internal/report"
	"cost-intelligence-service/internal/services"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// app holds what PersistentPreRunE builds for the subcommands.
type app struct {
	pipeline *services.Pipeline
	filter   domain.Filter
	writer   *report.Writer
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "costreport",
		Short: "NexGen logistics cost analysis",
		Long: `costreport joins the orders, routes, delivery and cost CSV files,
derives total cost and cost per km, and prints KPIs, cost leakage and the
detailed cost export for the selected priorities and categories.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	config.RegisterFlags(flags)
	flags.StringSlice("priority", nil, "only include these priorities (repeat or comma-separate)")
	flags.StringSlice("category", nil, "only include these product categories (repeat or comma-separate)")
	flags.StringP("output", "o", report.FormatTable, "table output format (table|markdown|csv)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{report.FormatTable, report.FormatMarkdown, report.FormatCSV}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("zero-distance-policy", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(domain.PolicyExclude), string(domain.PolicyZero)}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newLeakageCommand(a))
	rootCmd.AddCommand(newExportCommand(a))
	rootCmd.AddCommand(newFiltersCommand(a))
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	cfg, err := config.Load("", flags)
	if err != nil {
		return err
	}
	if _, err := obs.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
		return err
	}

	priorities, _ := flags.GetStringSlice("priority")
	categories, _ := flags.GetStringSlice("category")
	format, _ := flags.GetString("output")

	w, err := report.NewWriter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}

	orders, routes, delivery, costs := cfg.SourcePaths()
	source := csvsource.NewFileSource(csvsource.Paths{Orders: orders, Routes: routes, Delivery: delivery, Costs: costs})

	a.pipeline = services.NewPipeline(source, nil, services.Options{ZeroDistancePolicy: cfg.Policy()})
	a.filter = domain.NewFilter(priorities, categories)
	a.writer = w
	return nil
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
