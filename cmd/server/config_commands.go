package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"legenda/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := ctx.configPath + " (not found, using defaults)"
			if ctx.configExists {
				source = ctx.configPath
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n", source)
			fmt.Fprintln(out, renderSettings(configRows(cfg)))
			return nil
		},
	}
}

func configRows(cfg *config.Config) [][2]string {
	return [][2]string{
		{"server.address", cfg.Server.Address()},
		{"server.allowed_origins", strings.Join(cfg.Server.AllowedOrigins, ", ")},
		{"server.max_body_bytes", strconv.FormatInt(cfg.Server.MaxBodyBytes, 10)},
		{"server.read_header_timeout", cfg.Server.ReadHeaderTimeout().String()},
		{"server.read_timeout", cfg.Server.ReadTimeout().String()},
		{"server.write_timeout", cfg.Server.WriteTimeout().String()},
		{"server.idle_timeout", cfg.Server.IdleTimeout().String()},
		{"captions.backend", cfg.Captions.Backend},
		{"captions.language", cfg.Captions.Language},
		{"captions.http_timeout", cfg.Captions.HTTPTimeout().String()},
		{"captions.ytdlp_binary", cfg.Captions.YtDlpBinary},
		{"logging.format", cfg.Logging.Format},
		{"logging.level", cfg.Logging.Level},
	}
}
