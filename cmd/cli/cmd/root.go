package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"titlelookup/internal/constants"
)

// Define configuration keys
const (
	CfgKeyMetadataAPIKey   = "metadata.apikey"
	CfgKeyMetadataAPIHost  = "metadata.apihost"
	CfgKeyMetadataBaseURL  = "metadata.baseurl"
	CfgKeyTranslateAPIKey  = "translate.apikey"
	CfgKeyTranslateAPIHost = "translate.apihost"
	CfgKeyTranslateURL     = "translate.detecturl"
)

var (
	// Used for flags.
	cfgFile string

	// RootCmd represents the base command when called without any subcommands.
	// Exported for use in tests.
	RootCmd = &cobra.Command{
		Use:   "titlelookup",
		Short: "Look up production credits and alternate titles interactively.",
		Long: `titlelookup queries a remote movie metadata service for a production
(by title or by IMDb ID), shows its main credits, and lists its
alternate titles annotated with their detected language.`,
		// PersistentPreRun runs after Viper has loaded everything, so the
		// API-key prompt sees the final configuration.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			checkAndPromptAPIKey()
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.titlelookup/config.yaml or ./config.yaml)")
}

// initConfig reads in config file and ENV variables if set.
// This runs *before* PersistentPreRun.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".titlelookup")
		viper.AddConfigPath(configDir) // Add $HOME/.titlelookup
		viper.AddConfigPath(".")       // Add current directory as fallback/alternative
		viper.SetConfigType("yaml")
		viper.SetConfigName("config") // Look for config.yaml (or config)
	}

	viper.AutomaticEnv()              // read in environment variables that match
	viper.SetEnvPrefix("TITLELOOKUP") // e.g. TITLELOOKUP_METADATA_APIKEY

	// Service hosts and endpoints have sensible defaults; only the keys
	// are genuinely per-user.
	viper.SetDefault(CfgKeyMetadataAPIHost, "imdb8.p.rapidapi.com")
	viper.SetDefault(CfgKeyMetadataBaseURL, constants.DefaultMetadataBaseURL)
	viper.SetDefault(CfgKeyTranslateAPIHost, "google-translate1.p.rapidapi.com")
	viper.SetDefault(CfgKeyTranslateURL, constants.DefaultDetectURL)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; checkAndPromptAPIKey will handle it
		} else if os.IsNotExist(err) {
			// Config directory might not exist yet
		} else {
			fmt.Fprintf(os.Stderr, "Error reading config file (%s): %v\n", viper.ConfigFileUsed(), err)
		}
	}
}

// checkAndPromptAPIKey checks if the metadata API key is set and prompts if not.
// This runs via PersistentPreRun after initConfig.
func checkAndPromptAPIKey() {
	apiKey := viper.GetString(CfgKeyMetadataAPIKey)
	if apiKey == "" {
		fmt.Println("Metadata API Key not found.")
		fmt.Print("Please enter your API Key: ")

		reader := bufio.NewReader(os.Stdin)
		inputKey, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read API Key: %v", err)
		}
		inputKey = strings.TrimSpace(inputKey)

		if inputKey == "" {
			log.Fatalf("API Key cannot be empty.")
		}

		// Set the key in viper instance for the current run (though we exit)
		viper.Set(CfgKeyMetadataAPIKey, inputKey)

		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Could not get home directory: %v", err)
		}
		configDir := filepath.Join(home, ".titlelookup")
		configPath := filepath.Join(configDir, "config.yaml")

		if err := os.MkdirAll(configDir, 0750); err != nil {
			log.Fatalf("Could not create config directory %s: %v", configDir, err)
		}

		// WriteConfigAs saves *all* current viper settings, not just the key.
		if err := viper.WriteConfigAs(configPath); err != nil {
			log.Fatalf("Failed to save API Key to %s: %v", configPath, err)
		}

		fmt.Printf("API Key saved successfully to %s\n", configPath)
		fmt.Println("Please re-run your command.")
		os.Exit(0)
	}
}
