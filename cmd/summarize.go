package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mental-health-mirror/mood-core/summary"
)

func newSummarizeCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a week of check-ins from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				return errors.New("--checkins is required")
			}
			records, err := readCheckIns(path)
			if err != nil {
				return err
			}
			w, err := summary.Summarize(records)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}
	cmd.Flags().StringVar(&path, "checkins", "", `JSON file: an array of check-ins or {"checkIns": [...]}`)
	return cmd
}

func readCheckIns(path string) ([]summary.CheckIn, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var records []summary.CheckIn
		if err := json.Unmarshal(b, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return records, nil
	}
	var wrapped struct {
		CheckIns []summary.CheckIn `json:"checkIns"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return wrapped.CheckIns, nil
}
