package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/petspa/salonsite/pkg/config"
	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/resolver"
)

// check is one named validation step.
type check struct {
	name string
	run  func() error
}

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var configPath, contentFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the registry, templates, content and config",
		Long: `Check that every profile has a complete configuration, that every
variant the registry can name has a renderer and template, and optionally
that a content file and a server config are valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), configPath, contentFile)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "also validate this server config")
	cmd.Flags().StringVar(&contentFile, "content", "", "also validate this content file")
	return cmd
}

func runValidate(ctx context.Context, configPath, contentFile string) error {
	checks := []check{
		{"registry totality", layout.Validate},
		{"resolver consistency", func() error { return resolver.Consistent(resolver.Default()) }},
	}
	if contentFile != "" {
		checks = append(checks, check{"content " + contentFile, func() error {
			_, err := content.Load(contentFile)
			return err
		}})
	}
	if configPath != "" {
		checks = append(checks, check{"config " + configPath, func() error {
			_, err := config.Load(configPath)
			return err
		}})
	}

	logger := loggerFromContext(ctx)
	var failed []error
	for _, ch := range checks {
		if err := ch.run(); err != nil {
			printError("%s", ch.name)
			for _, line := range splitJoined(err) {
				printDetail("%s", line)
			}
			failed = append(failed, err)
			continue
		}
		logger.Debug("check passed", "check", ch.name)
		printSuccess("%s", ch.name)
	}
	if len(failed) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%d of %d checks failed", len(failed), len(checks))
	}
	return nil
}

// splitJoined unpacks an errors.Join result into one message per error.
func splitJoined(err error) []string {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range j.Unwrap() {
			out = append(out, errors.UserMessage(e))
		}
		return out
	}
	return []string{errors.UserMessage(err)}
}
