package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/commentary/internal/config"
)

func newConfigCommand(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(newConfigShowCommand(global))
	cmd.AddCommand(newConfigPathCommand(global))
	return cmd
}

func newConfigShowCommand(global *globalOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration after merging the user and project files.
With --watch, print it again each time one of the files changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printConfig(out, a.config.Current()); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			a.config.Subscribe(func(cfg *config.Config) {
				fmt.Fprintln(out, "---")
				if err := printConfig(out, cfg); err != nil {
					a.logger.Warn("print config", "error", err)
				}
			})
			w, err := config.NewWatcher(a.config, config.WithWatcherLogger(a.logger))
			if err != nil {
				return err
			}
			defer w.Close()
			return ignoreCanceled(w.Run(signalContext(cmd)))
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "reprint when a configuration file changes")
	return cmd
}

func newConfigPathCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List the configuration files in precedence order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, l := range a.config.Layers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", l.Name, l.Path)
			}
			return nil
		},
	}
}

func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := toml.Marshal(cfg.Encode())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
