package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mental-health-mirror/mood-core/orchestrator"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		audioPath string
		text      string
		save      bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [audio-file]",
		Short: "Analyze one recording or one text entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if audioPath == "" && len(args) > 0 {
				audioPath = args[0]
			}
			if (audioPath == "") == (text == "") {
				return errors.New("pass exactly one of --audio or --text")
			}

			c, log, err := setup()
			if err != nil {
				return err
			}
			p, err := newPipeline(c, log)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			var (
				kind, source string
				full, result any
			)
			if audioPath != "" {
				data, err := os.ReadFile(audioPath)
				if err != nil {
					return err
				}
				res, err := p.AnalyzeVoice(ctx, data, filepath.Base(audioPath))
				if err != nil {
					return err
				}
				kind, source, full, result = "voice", audioPath, res, res.Result
			} else {
				est, err := p.AnalyzeText(ctx, text)
				if err != nil {
					return err
				}
				kind, full, result = "text", est, est
			}

			if save {
				path, err := orchestrator.Persist(c.Paths.Outputs, kind, source, full)
				if err != nil {
					return err
				}
				log.WithField("path", path).Info("analysis saved")
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&audioPath, "audio", "", "path to a wav/mp3/ogg recording")
	cmd.Flags().StringVar(&text, "text", "", "text to analyze")
	cmd.Flags().BoolVar(&save, "save", false, "write a JSON bundle under paths.outputs")
	return cmd
}
