package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/fontgen/internal/catalog"
	"github.com/pdiddy/fontgen/internal/icons"
	"github.com/pdiddy/fontgen/internal/secrets"
	"github.com/pdiddy/fontgen/internal/variable"
	"github.com/pdiddy/fontgen/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "fontgen/0.1"
)

var variableCmd = &cobra.Command{
	Use:   "variable",
	Short: "Fetch variable-font axes and write data/variable-response.json",
	Long: `Variable queries the Google Fonts Developer API for every variable family,
drops icon fonts and families without axes, and writes the family name, id and
axis ranges to a JSON file. The file is replaced on every successful run and
left untouched when the run fails.

The API key is taken from --key, the FONTGEN_API_KEY environment variable, or
.secrets/google-fonts-api-key, in that order.`,
	RunE: runVariable,
}

func init() {
	variableCmd.Flags().String("key", "", "Google Fonts Developer API key")
	variableCmd.Flags().String("output", variable.DefaultOutputPath, "output JSON file")
	variableCmd.Flags().String("base-url", variable.DefaultBaseURL, "API endpoint; the key is appended")
	variableCmd.Flags().String("icons", "", "YAML file listing icon-font families to exclude")
	variableCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	variableCmd.Flags().String("catalog", "", "SQLite catalog to update after a successful run")

	viper.BindPFlag("api_key", variableCmd.Flags().Lookup("key"))
	viper.BindPFlag("variable.output", variableCmd.Flags().Lookup("output"))
	viper.BindPFlag("variable.base_url", variableCmd.Flags().Lookup("base-url"))
	viper.BindPFlag("variable.icons", variableCmd.Flags().Lookup("icons"))
	viper.BindPFlag("variable.timeout", variableCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("variable.catalog", variableCmd.Flags().Lookup("catalog"))

	rootCmd.AddCommand(variableCmd)
}

// variableConfig assembles the command configuration from flags, config
// file and environment.
func variableConfig() types.VariableConfig {
	timeout := viper.GetDuration("variable.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return types.VariableConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL:     viper.GetString("variable.base_url"),
		OutputPath:  viper.GetString("variable.output"),
		IconsFile:   viper.GetString("variable.icons"),
		CatalogPath: viper.GetString("variable.catalog"),
	}
}

func runVariable(cmd *cobra.Command, args []string) error {
	cfg := variableConfig()
	key := secrets.Resolve(loadedSecrets, secrets.GoogleFontsAPIKey, viper.GetString("api_key"))

	classifier, err := icons.LoadList(cfg.IconsFile)
	if err != nil {
		return err
	}

	f := variable.New(cfg,
		variable.WithClassifier(classifier),
		variable.WithLogger(logger))

	fonts, err := f.Fetch(cmd.Context(), key)
	if err != nil {
		logger.Error("variable fetch failed", zap.Stringer("kind", variable.Classify(err)), zap.Error(err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d variable families to %s\n", len(fonts), f.OutputPath())

	if cfg.CatalogPath == "" {
		return nil
	}
	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Replace(cmd.Context(), fonts); err != nil {
		return fmt.Errorf("updating catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d families in %s\n", len(fonts), cfg.CatalogPath)
	return nil
}
