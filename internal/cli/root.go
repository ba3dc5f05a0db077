// Package cli implements the commentary command tree.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrFailed is returned by a command that already printed its failure.
var ErrFailed = errors.New("command failed")

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the commentary command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "commentary",
		Short: "Toggle, analyze and convert source code comments",
		Long: `commentary comments and uncomments line ranges in source files using
the comment syntax of the file's language, including embedded languages
such as <script> blocks in HTML, fenced code in Markdown and JSX markup.

Per-language markers can be overridden in ~/.config/commentary/config.toml
or a .commentary.toml in the working directory.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to the user configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (text, json)")

	cmd.AddCommand(newToggleCommand(opts))
	cmd.AddCommand(newAnalyzeCommand(opts))
	cmd.AddCommand(newConvertCommand(opts))
	cmd.AddCommand(newResolveCommand(opts))
	cmd.AddCommand(newLanguagesCommand(opts))
	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newConfigCommand(opts))
	cmd.AddCommand(newScriptsCommand())

	return cmd
}
