// Package commands implements the CLI commands for upkeep.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/upkeep/internal/adapters/detector"
	"go.trai.ch/upkeep/internal/build"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for upkeep.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts domain.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "upkeep",
		Short: "Update every package ecosystem on this machine",
		Long: "upkeep updates Homebrew, pip, APT, RubyGems, a directory of git repositories\n" +
			"and Apple software updates, asking for the sudo password at most once.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("no-input", "y", false, "Update everything without asking first")
	rootCmd.Flags().Bool("debug", false, "Print every command and its output")
	rootCmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, table, or linear")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	noInput, _ := cmd.Flags().GetBool("no-input")
	debug, _ := cmd.Flags().GetBool("debug")
	outputMode, _ := cmd.Flags().GetString("output-mode")

	if !detector.ValidMode(outputMode) {
		return zerr.Wrap(domain.ErrInvalidOutputMode, "--output-mode "+outputMode)
	}

	return c.app.Run(cmd.Context(), domain.RunOptions{
		Interactive: !noInput,
		Debug:       debug,
		OutputMode:  outputMode,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
