package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/profile"
)

// Output formats for profiles show.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// profilesCommand creates the profiles command.
func (c *CLI) profilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   "Inspect the layout profiles",
	}
	cmd.AddCommand(c.profilesListCommand())
	cmd.AddCommand(c.profilesShowCommand())
	return cmd
}

func (c *CLI) profilesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every layout profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := pickedProfile(cmd.Context())
			profileTable(cmd.OutOrStdout(), current)
			return nil
		},
	}
}

func (c *CLI) profilesShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <profile>",
		Short: "Print one profile's configuration",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return profileNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := layout.ParseProfile(args[0])
			if err != nil {
				return err
			}
			return writeConfiguration(cmd.OutOrStdout(), p, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format: json, yaml or toml")
	return cmd
}

// writeConfiguration encodes p's configuration in format.
func writeConfiguration(w io.Writer, p layout.Profile, format string) error {
	cfg, err := layout.Lookup(p)
	if err != nil {
		return err
	}
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want json, yaml or toml)", format)
	}
}

func profileNames() []string {
	ps := layout.Profiles()
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// pickedProfile returns the profile chosen with pick, or the default when
// nothing was chosen or the preference store is unavailable.
func pickedProfile(ctx context.Context) layout.Profile {
	prefs, err := openPreferences()
	if err != nil {
		loggerFromContext(ctx).Debug("preferences unavailable", "err", err)
		return layout.DefaultProfile
	}
	defer prefs.Close()
	s := profile.New(prefs, nil, profile.WithLogger(loggerFromContext(ctx)))
	s.Rehydrate(ctx)
	return s.Profile()
}
