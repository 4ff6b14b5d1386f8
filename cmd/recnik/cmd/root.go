// Package cmd contains the CLI commands of recnik.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/darkclainer/recnik/pkg/querier"
	"github.com/darkclainer/recnik/pkg/render"
	"github.com/darkclainer/recnik/pkg/search"
)

const (
	formatTerm = "term"
	formatJSON = "json"
	formatHTML = "html"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recnik",
	Short: "Serbian word lookup with accents and morphology",
	Long: `recnik looks up Serbian words in the dictionary service and shows
their grammatical description, frequency and inflection tables.

Example:
  recnik lookup čoveka
  recnik lookup --format json sto
  recnik random`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file")
	flags.StringP("format", "f", formatTerm, "output format: term, json or html")
	flags.String("api-host", "localhost:8000", "host of the dictionary service")
	flags.String("api-protocol", "http", "protocol of the dictionary service")
	flags.String("api-path", "/api", "path prefix of the dictionary service")
	flags.Duration("api-timeout", 0, "request timeout, zero means none")
	flags.String("cache-path", "", "directory of the response cache, empty disables it")
	flags.Bool("cache-inmemory", false, "keep the response cache in memory")
	flags.Duration("cache-ttl", 0, "how long responses stay cached, zero means forever")
	flags.String("zapconfig", "", "zap logger config as JSON")

	for key, flag := range map[string]string{
		"format":         "format",
		"api.host":       "api-host",
		"api.protocol":   "api-protocol",
		"api.path":       "api-path",
		"api.timeout":    "api-timeout",
		"cache.path":     "cache-path",
		"cache.inmemory": "cache-inmemory",
		"cache.ttl":      "cache-ttl",
		"zapconfig":      "zapconfig",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
	}
	viper.SetEnvPrefix("RECNIK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func newLogger() (*zap.Logger, error) {
	raw := viper.GetString("zapconfig")
	if raw == "" {
		return zap.NewNop(), nil
	}
	var zapConf zap.Config
	if err := json.Unmarshal([]byte(raw), &zapConf); err != nil {
		return nil, fmt.Errorf("invalid zap config: %w", err)
	}
	return zapConf.Build()
}

func newQuerier(logger *zap.Logger) (querier.Querier, error) {
	var q querier.Querier
	q = querier.NewRemote(nil, nil, &querier.Config{
		Host:     viper.GetString("api.host"),
		Protocol: viper.GetString("api.protocol"),
		APIPath:  viper.GetString("api.path"),
		Timeout:  viper.GetDuration("api.timeout"),
	})
	cached := &querier.CachedConfig{
		Path:     viper.GetString("cache.path"),
		InMemory: viper.GetBool("cache.inmemory"),
		TTL:      viper.GetDuration("cache.ttl"),
	}
	if cached.Path == "" && !cached.InMemory {
		return q, nil
	}
	c, err := querier.NewCached(q, cached, logger.Named("cache"))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newRenderer(format string, w io.Writer) (render.Renderer, error) {
	switch format {
	case formatTerm:
		return render.NewTerminal(w), nil
	case formatHTML:
		return render.NewHTML(w), nil
	case formatJSON:
		return jsonRenderer{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// runSearch wires querier, searcher and renderer around a single search.
func runSearch(cmd *cobra.Command, do func(context.Context, *search.Searcher) (*search.Outcome, error)) error {
	out := cmd.OutOrStdout()
	renderer, err := newRenderer(viper.GetString("format"), out)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() // nolint:errcheck // nothing to do on failure

	q, err := newQuerier(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := q.Close(context.Background()); err != nil {
			logger.Warn("querier close failed", zap.Error(err))
		}
	}()

	searcher := search.New(q, search.WithLogger(logger.Named("search")))
	outcome, err := do(cmd.Context(), searcher)
	if err != nil {
		return err
	}
	return renderer.RenderOutcome(outcome)
}
