// Package commands implements the CLI commands for wrotag.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wrotag/internal/build"
	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports"
)

// Application is the part of app.App the commands drive.
type Application interface {
	Configure(settingsPath string, strict bool) error
	ListGroups(ctx context.Context) error
	ShowGroup(ctx context.Context, name string) error
	Check(ctx context.Context) (domain.LoadStats, error)
	GroupCache() (ports.GroupCache, error)
	SetOutput(w io.Writer)
}

// configurableLogger is implemented by loggers whose output can be tuned from flags.
type configurableLogger interface {
	SetQuiet(quiet bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for wrotag.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wrotag",
		Short:         "Inspect and serve the resource groups of a wro model",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "wrotag.yaml", "Path to the settings file")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when a minified file name does not follow the <group>-<suffix>.<ext> convention")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGroupsCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// configure applies the persistent flags and creates the cache. Commands that
// read the cache use it as their PreRunE.
func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	if l, ok := c.logger.(configurableLogger); ok {
		quiet, _ := cmd.Flags().GetBool("quiet")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		l.SetQuiet(quiet)
		l.SetJSON(jsonLogs)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}
	return c.app.Configure(configPath, strict)
}

// SetOutput redirects command results and cobra's own output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.app.SetOutput(w)
}
