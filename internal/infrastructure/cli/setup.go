package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ebrahas/smartcli/internal/app"
	"github.com/ebrahas/smartcli/internal/domain"
)

const (
	setupSetModel   = "model"
	setupShowModels = "show"
	setupCancel     = "cancel"
)

const modelExample = "codellama:latest"

// setupMenu is offered when no model is configured. Choosing a model stores
// it; cancelling reports the missing configuration as an error.
type setupMenu struct {
	container *app.Container
	prompter  *Prompter
	out       io.Writer
	tty       bool
}

func (m *setupMenu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "There is no model defined to use smartcli.")

	choice, err := m.choose()
	if err != nil {
		return err
	}

	switch choice {
	case setupSetModel:
		name, err := m.modelName(ctx)
		if err != nil {
			return err
		}
		if name == "" {
			return domain.ErrConfigMissing
		}
		cfg, err := m.container.ConfigService.Update(ctx, domain.ConfigUpdate{Model: &name})
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Default model set to %s\n", cfg.Model)
		return nil
	case setupShowModels:
		return m.container.ModelLister.List(ctx, m.out)
	default:
		fmt.Fprintln(m.out, "Exiting...")
		return domain.ErrConfigMissing
	}
}

func (m *setupMenu) choose() (string, error) {
	if m.tty {
		var choice string
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Would you like to:").
				Options(
					huh.NewOption("Set a default model", setupSetModel),
					huh.NewOption("Show available models", setupShowModels),
					huh.NewOption("Cancel", setupCancel),
				).
				Value(&choice),
		)).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return setupCancel, nil
		}
		return choice, err
	}

	fmt.Fprintln(m.out, "Would you like to:")
	fmt.Fprintln(m.out, "[1] Set a default model")
	fmt.Fprintln(m.out, "[2] Show available models")
	fmt.Fprintln(m.out, "[3] Cancel")
	line, err := m.prompter.ReadLine("Choose option: ")
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		return setupCancel, nil
	}
	if err != nil {
		return "", err
	}
	switch line {
	case "1":
		return setupSetModel, nil
	case "2":
		return setupShowModels, nil
	default:
		return setupCancel, nil
	}
}

func (m *setupMenu) modelName(ctx context.Context) (string, error) {
	if !m.tty {
		line, err := m.prompter.ReadLine(fmt.Sprintf("Enter the model name (e.g., %s): ", modelExample))
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return line, err
	}

	var name string
	installed := m.installedModels(ctx)
	var field huh.Field
	if len(installed) > 0 {
		options := make([]huh.Option[string], 0, len(installed))
		for _, model := range installed {
			options = append(options, huh.NewOption(model, model))
		}
		field = huh.NewSelect[string]().Title("Default model").Options(options...).Value(&name)
	} else {
		field = huh.NewInput().
			Title("Default model").
			Placeholder(modelExample).
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("model name is required")
				}
				return nil
			})
	}

	err := huh.NewForm(huh.NewGroup(field)).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", nil
	}
	return strings.TrimSpace(name), err
}

// installedModels asks the server for its models; failure just means the
// operator types the name instead.
func (m *setupMenu) installedModels(ctx context.Context) []string {
	if m.container.Prober == nil {
		return nil
	}
	probeCtx, cancel := context.WithTimeout(ctx, domain.DefaultProbeTimeout)
	defer cancel()
	models, err := m.container.Prober.InstalledModels(probeCtx)
	if err != nil {
		return nil
	}
	return models
}
