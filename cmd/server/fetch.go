package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"legenda/internal/core/domain"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Download captions for one video without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			svc := newSubtitleService(cfg, logger)
			out, err := svc.Export(cmd.Context(), domain.DownloadRequest{URL: args[0], Format: format})
			if err != nil {
				if errors.Is(err, domain.ErrInvalidVideoURL) {
					return fmt.Errorf("invalid YouTube URL: %s", args[0])
				}
				return fmt.Errorf("failed to fetch subtitles: %w", err)
			}

			target := strings.TrimSpace(output)
			if target == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), out.Content)
				return err
			}
			if target == "" {
				target = out.Filename
			} else if info, err := os.Stat(target); err == nil && info.IsDir() {
				target = filepath.Join(target, out.Filename)
			}

			if err := os.WriteFile(target, []byte(out.Content), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(domain.FormatSRT), "Output format: srt or txt")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (default <id>.<ext>, - for stdout)")
	return cmd
}
