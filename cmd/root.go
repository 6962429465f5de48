package cmd

import (
	"fmt"
	"os"

	"inventory-reconciler/core/console"
	"inventory-reconciler/core/logger"
	"inventory-reconciler/core/metrics"
	"inventory-reconciler/core/storage"
	"inventory-reconciler/feature/inventory"
	"inventory-reconciler/feature/inventory/terminal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X inventory-reconciler/cmd.Version=...".
var Version = "dev"

var (
	spacesFile string
	verbose    bool
	xlsx       bool
)

// RootCmd counts every inventory file given as argument, one session each.
var RootCmd = &cobra.Command{
	Use:   "inventory-reconciler [flags] FILE...",
	Short: "Physical inventory count against an inventory system export",
	Long: `Inventory reconciler compares the items found in each physical space with
the inventory exported by the inventory system.

Scan (or type) the space you are in, then the tag of every item you find.
Unknown items are recorded as foreign with a label. When the session ends
(empty line) the file is backed up (FILE.000, FILE.001, ...) and rewritten
with the found counters, so the count can be resumed later.

Examples:
  # Count one export, using the space equivalence table
  inventory-reconciler -e espacios.tsv inventario.tsv

  # Print the final report and write FILE.report.xlsx
  inventory-reconciler -b --xlsx inventario.tsv`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCount,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, as for any CLI failure
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().StringVarP(&spacesFile, "spaces", "e", "", "Space equivalence file (canonical<TAB>alias per line)")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "b", false, "Print the categorized report after each file")
	RootCmd.Flags().BoolVar(&xlsx, "xlsx", false, "Write FILE.report.xlsx next to each processed file")
}

func runCount(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	fs := afero.NewOsFs()
	table, err := inventory.LoadSpaces(fs, cfg.Inventory.SpacesFile, cfg.Inventory.Layout.Separator, logg)
	if err != nil {
		return err
	}

	out := terminal.New(cmd.OutOrStdout())
	opts := []inventory.Option{
		inventory.WithPresenter(out),
		inventory.WithReportOutput(cmd.OutOrStdout()),
	}
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		opts = append(opts, inventory.WithArchiver(inventory.NewArchiver(client, cfg.Storage)))
		logg.Info("Archiving enabled", zap.String("endpoint", cfg.Storage.Endpoint), zap.String("bucket", cfg.Storage.Bucket))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Textfile != "" {
		m = metrics.New()
		opts = append(opts, inventory.WithMetrics(m))
	}

	svc := inventory.NewService(fs, cfg.Inventory, table, console.NewLineReader(cmd.InOrStdin()), logg, opts...)
	results, err := svc.ProcessAll(cmd.Context(), args)
	logg.Info("Inventory count finished", zap.Int("files", len(args)), zap.Int("processed", len(results)))

	if m != nil {
		if werr := m.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			logg.Warn("Metrics not written", zap.Error(werr))
		}
	}
	return err
}
