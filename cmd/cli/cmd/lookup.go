package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"titlelookup/pkg/core/imdb"
	"titlelookup/pkg/core/langdetect"
	"titlelookup/pkg/core/prompt"
	"titlelookup/pkg/session"
)

// NewMetadataClientFunc allows overriding metadata client creation for testing.
var NewMetadataClientFunc = func(cfg imdb.Config) session.MetadataAPI {
	return imdb.NewClient(cfg, nil)
}

// NewDetectorFunc allows overriding detection client creation for testing.
var NewDetectorFunc = func(cfg langdetect.Config) session.LanguageDetector {
	return langdetect.NewDetector(cfg, nil)
}

var lookupVerbose bool

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Interactively look up a production's credits and alternate titles",
	Long: `Runs one interactive lookup session. You are prompted for a search
mode (production title or IMDb ID), then for the search data itself.
Title searches show the top hits for disambiguation before fetching
credits and alternate titles.

Alternate titles are annotated with a language code from the
translation service's detection endpoint.`,
	RunE: runLookup,
}

func init() {
	RootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().BoolVarP(&lookupVerbose, "verbose", "v", false, "Enable debug logging")
}

func runLookup(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if lookupVerbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	metadataKey := viper.GetString(CfgKeyMetadataAPIKey)
	if metadataKey == "" {
		return fmt.Errorf("metadata API key not configured. Set key '%s' or env TITLELOOKUP_METADATA_APIKEY", CfgKeyMetadataAPIKey)
	}
	translateKey := viper.GetString(CfgKeyTranslateAPIKey)
	if translateKey == "" {
		return fmt.Errorf("translate API key not configured. Set key '%s' or env TITLELOOKUP_TRANSLATE_APIKEY", CfgKeyTranslateAPIKey)
	}

	metadataClient := NewMetadataClientFunc(imdb.Config{
		APIKey:  metadataKey,
		APIHost: viper.GetString(CfgKeyMetadataAPIHost),
		BaseURL: viper.GetString(CfgKeyMetadataBaseURL),
	})
	detector := NewDetectorFunc(langdetect.Config{
		APIKey:  translateKey,
		APIHost: viper.GetString(CfgKeyTranslateAPIHost),
		URL:     viper.GetString(CfgKeyTranslateURL),
	})

	prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	sess := session.New(metadataClient, detector, prompter, cmd.OutOrStdout(), logger)

	if err := sess.Run(context.Background()); err != nil {
		logger.WithError(err).Debug("Lookup session aborted")
		return fmt.Errorf("lookup failed: %w", err)
	}
	return nil
}
