package cmd

import (
	"context"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

const rootDescription = `coda turns an instruction into file edits and shell commands inside one
project directory. The model picks one tool per turn; every tool call is
checked against the workspace sandbox before it runs.`

// Execute runs the command tree. The caller passes ExitCode(err) to os.Exit.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:           "coda [instruction]",
		Short:         "coda: a terminal coding agent that works through sandboxed tools",
		Long:          figure.NewColorFigure("coda", "standard", "blue", true).String() + "\n" + rootDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAgent(cmd, app, opts, args)
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.closeLog()
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Keep asking for follow-up instructions after each run")
	flags.BoolVar(&opts.resume, "resume", false, "Continue the saved session for this directory")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Run destructive-looking commands without asking")
	flags.StringVarP(&opts.workDir, "workdir", "C", "", "Project directory (defaults to the current directory)")
	flags.StringVar(&opts.model, "model", "", "Model name (overrides model.name)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newSessionCmd(app),
		newTemplatesCmd(),
	)

	return rootCmd
}
