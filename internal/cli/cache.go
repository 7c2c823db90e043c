package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered page cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached page",
		Long: `Remove every cached page.

Without --config the CLI's own file cache is cleared. With --config the
cache that server config uses is cleared instead, which may be Redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearCache(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "clear the cache configured in this server config")
	return cmd
}

func clearCache(ctx context.Context, configPath string) error {
	var (
		pc    cache.Cache
		where string
	)
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.Cache.Backend == "none" {
			printInfo("Cache is disabled in %s", configPath)
			return nil
		}
		if pc, err = openCache(ctx, cfg.Cache); err != nil {
			return err
		}
		where = cfg.Cache.Backend
	} else {
		dir, err := pageCacheDir()
		if err != nil {
			return fmt.Errorf("get cache dir: %w", err)
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			printInfo("Cache is empty")
			return nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return err
		}
		pc, where = fc, dir
	}
	defer pc.Close()

	clearer, ok := pc.(cache.Clearer)
	if !ok {
		return fmt.Errorf("cache backend %s cannot be cleared", where)
	}
	if err := clearer.Clear(ctx); err != nil {
		return err
	}
	printSuccess("Cleared cached pages")
	printDetail("Location: %s", where)
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the page cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := pageCacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
