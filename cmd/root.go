// Package cmd holds the moodcore command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mental-health-mirror/mood-core/config"
	"github.com/mental-health-mirror/mood-core/orchestrator"
	"github.com/mental-health-mirror/mood-core/recommend"
)

var (
	cfgPath  string
	logLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moodcore",
		Short:         "Mood inference from voice and text check-ins",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: config/$CONFIG_ENV/config.yaml or ./config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override pipeline.log_level (debug|info|warn|error)")

	root.AddCommand(
		newServeCmd(),
		newAnalyzeCmd(),
		newRecommendCmd(),
		newSummarizeCmd(),
	)
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads config and builds the logger every subcommand shares.
func setup() (*config.Root, *logrus.Logger, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	level := c.Pipeline.LogLvl
	if logLevel != "" {
		level = logLevel
	}
	log, err := newLogger(level, c.Pipeline.LogFormat, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return c, log, nil
}

func newLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}

func newPipeline(c *config.Root, log logrus.FieldLogger) (*orchestrator.Pipeline, error) {
	col, err := orchestrator.CollaboratorsFromConfig(c)
	if err != nil {
		return nil, err
	}
	return orchestrator.NewPipeline(c, col, log), nil
}

func newSelector(c *config.Root) (*recommend.Selector, error) {
	if p := c.Recommendations.CatalogPath; p != "" {
		cat, err := recommend.LoadCatalog(p)
		if err != nil {
			return nil, err
		}
		return recommend.NewSelector(cat), nil
	}
	return recommend.NewSelector(recommend.DefaultCatalog()), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
