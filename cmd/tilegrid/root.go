package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/young1lin/tilegrid/internal/config"
	"github.com/young1lin/tilegrid/internal/layout"
	"github.com/young1lin/tilegrid/internal/store"
	"github.com/young1lin/tilegrid/internal/version"
)

// newRootCmd creates the tilegrid command. deps builds the application
// dependencies from the merged configuration.
func newRootCmd(deps func(config.Config) *AppDependencies) *cobra.Command {
	var cfgFile string
	conf := &settings{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "tilegrid [layout]",
		Short: "Navigate a grid of tiles in the terminal",
		Long: `tilegrid draws a layout file (YAML, TOML or XLSX) as a grid of tiles
that can be navigated with the arrow keys and pressed with enter or the mouse.
Presses and the focused tile are remembered between runs.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf.v = config.New(cfgFile)
			if err := config.Read(conf.v); err != nil {
				return err
			}
			return bindFlags(conf.v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				conf.v.Set("layout", args[0])
			}
			cfg, err := config.Decode(conf.v)
			if err != nil {
				return err
			}
			return run(deps(cfg))
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.toml in the user config directory)")
	cmd.PersistentFlags().String("sheet", "", "Workbook sheet to read from xlsx layouts")

	flags := cmd.Flags()
	flags.String("layout", "", "Layout file to open")
	flags.String("theme", "default", "Color theme (default, mono, ocean)")
	flags.Int("tile-width", 14, "Tile width in cells")
	flags.Int("tile-height", 5, "Tile height in lines")
	flags.Int("spacing-x", 1, "Columns between tiles")
	flags.Int("spacing-y", 1, "Lines between rows")
	flags.Int("padding", 1, "Padding around the grid")
	flags.Int("inset", 1, "Inset of the pressable inside its tile")
	flags.Bool("show-hidden", false, "Draw rows marked hidden")
	flags.Bool("mouse", true, "Enable mouse presses and wheel scrolling")
	flags.Bool("watch", true, "Reload the layout when the file changes")
	flags.Bool("restore", true, "Restore the last focused tile")
	flags.Int("history", 5, "Number of recent presses to keep")
	flags.String("db", "", "State database path")
	flags.String("log-file", "", "Log file path")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newValidateCmd(conf), newHistoryCmd(conf))
	return cmd
}

// settings holds the merged configuration once flags are parsed
type settings struct {
	v *viper.Viper
}

// bindFlags makes explicitly set flags override the config file and environment
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" || f.Name == "help" || f.Name == "version" {
			return
		}
		if bindErr := v.BindPFlag(f.Name, f); bindErr != nil {
			err = fmt.Errorf("failed to bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

// newValidateCmd creates the command that checks layout files
func newValidateCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <layout>...",
		Short: "Check that layout files load",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := layout.NewLoader().WithSheet(s.v.GetString("sheet"))
			out := cmd.OutOrStdout()

			var failed []string
			for _, path := range args {
				l, err := loader.Load(path)
				if err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
					failed = append(failed, path)
					continue
				}
				fmt.Fprintf(out, "ok   %s: %s, %d rows, %d tiles, %d hidden\n",
					path, l.Name, len(l.Rows), l.TileCount(), l.HiddenCount())
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d invalid layout(s): %s", len(failed), strings.Join(failed, ", "))
			}
			return nil
		},
	}
}

// newHistoryCmd creates the command that lists or clears stored presses
func newHistoryCmd(s *settings) *cobra.Command {
	var (
		limit int
		wipe  bool
	)

	cmd := &cobra.Command{
		Use:   "history <layout>",
		Short: "Show the presses recorded for a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Decode(s.v)
			if err != nil {
				return err
			}
			l, err := loadLayout(args[0], cfg.Sheet)
			if err != nil {
				return fmt.Errorf("failed to load layout: %w", err)
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if wipe {
				if err := db.ClearPresses(l.Name); err != nil {
					return fmt.Errorf("failed to clear history: %w", err)
				}
				fmt.Fprintf(out, "cleared history for %s\n", l.Name)
				return nil
			}

			count, err := db.PressCount(l.Name)
			if err != nil {
				return fmt.Errorf("failed to count presses: %w", err)
			}
			presses, err := db.RecentPresses(l.Name, limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			fmt.Fprintf(out, "%s: %d press(es)\n", l.Name, count)
			for _, p := range presses {
				fmt.Fprintf(out, "%s  %-16s %s\n", p.Timestamp.Format("2006-01-02 15:04:05"), p.Label, p.Position)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of presses to list")
	cmd.Flags().BoolVar(&wipe, "clear", false, "Delete the recorded presses")
	return cmd
}
