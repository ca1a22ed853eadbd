package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	var (
		moodLabel string
		energy    float64
		emotions  []string
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print recommendations for a mood and energy level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if moodLabel == "" {
				return errors.New("--mood is required")
			}
			c, _, err := setup()
			if err != nil {
				return err
			}
			sel, err := newSelector(c)
			if err != nil {
				return err
			}
			recs := sel.Select(moodLabel, energy, emotions)
			return printJSON(cmd.OutOrStdout(), map[string]any{"recommendations": recs})
		},
	}
	cmd.Flags().StringVar(&moodLabel, "mood", "", "mood label, e.g. happy or stressed")
	cmd.Flags().Float64Var(&energy, "energy", 5, "energy level 1-10")
	cmd.Flags().StringSliceVar(&emotions, "emotions", nil, "detected emotions, comma separated")
	return cmd
}
