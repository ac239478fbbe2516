package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ebrahas/smartcli/internal/app"
	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

type rootFlags struct {
	model      string
	timeout    int
	showModels bool
	freeText   bool
	dryRun     bool
	debug      bool
}

// NewRootCmd builds the container and wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	return NewRootCmdWithContainer(container), nil
}

// NewRootCmdWithContainer wires the root command around an existing container.
func NewRootCmdWithContainer(container *app.Container) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "smartcli [query]",
		Short: "smartcli - natural language to shell commands via Ollama",
		Long: "smartcli asks a local Ollama model to translate an instruction into a single\n" +
			"shell command, shows it, and runs it only after you confirm with 'y'.",
		Example: "  smartcli list all files larger than 100MB\n" +
			"  smartcli --model codellama:latest\n" +
			"  smartcli --timeout 30",
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.debug && container.Logger != nil {
				container.Logger.SetVerbose(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, container, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&flags.model, "model", "m", "", "Set the default model and exit")
	root.Flags().IntVarP(&flags.timeout, "timeout", "t", 0, "Set the default request timeout in seconds and exit")
	root.Flags().BoolVarP(&flags.showModels, "show-models", "s", false, "Show available models and exit")
	root.Flags().BoolVar(&flags.freeText, "free-text", false, "Ask for a free-text reply instead of structured JSON")
	root.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the suggested command without prompting to run it")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable verbose logging")

	root.AddCommand(
		commands.NewConfigCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewVersionCommand(),
	)
	return root
}

func runRoot(cmd *cobra.Command, args []string, container *app.Container, flags rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	render := NewRenderer(out)

	if cmd.Flags().Changed("model") || cmd.Flags().Changed("timeout") {
		return updateDefaults(ctx, cmd, container, flags, render)
	}

	if flags.showModels {
		return container.ModelLister.List(ctx, out)
	}

	prompter := NewPrompter(cmd.InOrStdin(), out)
	cfg, err := container.ConfigService.Require(ctx)
	if errors.Is(err, domain.ErrConfigMissing) {
		menu := &setupMenu{
			container: container,
			prompter:  prompter,
			out:       out,
			tty:       interactive(cmd.InOrStdin(), out),
		}
		return menu.Run(ctx)
	}
	if err != nil {
		return err
	}

	instruction := strings.TrimSpace(strings.Join(args, " "))
	if instruction == "" {
		return cmd.Help()
	}

	render.Interpreting(instruction)

	spinner := NewSpinner(cmd.ErrOrStderr(), "Asking "+cfg.Model+"...")
	spinner.Start()
	suggestion, err := container.QueryService.Synthesize(ctx, cfg, domain.QueryRequest{
		Instruction: instruction,
		FreeText:    flags.freeText,
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	render.Suggestion(suggestion)

	if flags.dryRun {
		container.QueryService.Record(suggestion)
		return nil
	}

	container.QueryService.Prompter = prompter
	result, err := container.QueryService.ConfirmAndExecute(ctx, suggestion)
	if err != nil {
		return err
	}
	if result.Cancelled {
		render.Cancelled()
	}
	return nil
}

func updateDefaults(ctx context.Context, cmd *cobra.Command, container *app.Container, flags rootFlags, render *Renderer) error {
	var update domain.ConfigUpdate
	if cmd.Flags().Changed("model") {
		update.Model = &flags.model
	}
	if cmd.Flags().Changed("timeout") {
		update.Timeout = &flags.timeout
	}

	cfg, err := container.ConfigService.Update(ctx, update)
	if err != nil {
		return err
	}
	if update.Model != nil {
		render.Notice("Default model set to %s", cfg.Model)
	}
	if update.Timeout != nil {
		render.Notice("Default timeout set to %d seconds", cfg.Timeout)
	}
	return nil
}
