package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/tkdgloss/internal/belt"
	"github.com/ppiankov/tkdgloss/internal/cache"
	"github.com/ppiankov/tkdgloss/internal/model"
)

// Version is set at build time with -ldflags "-X ...cli.Version=..."
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tkdgloss",
	Short: "tkdgloss - Taekwondo glossary and technique-name analyzer",
	Long: `tkdgloss is a Taekwondo terminology reference.

It lists the glossary by category, searches it with typo tolerance, and
breaks compound technique names such as "Dollyeo Chagi" or
"Apgubi Momtong Jireugi" into the terms they are made of.

Belt (faixa) curricula can be browsed and checked against the glossary.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tkdgloss v%s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.tkdgloss/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// TKDGLOSS_MATCHING_MAX_DISTANCE overrides matching.max_distance
	viper.SetEnvPrefix("TKDGLOSS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: cannot read config file %s: %v\n", cfgFile, err)
	}
}

// setDefaults registers every key so environment variables can override
// values that no config file mentions
func setDefaults(cfg *model.Config) {
	viper.SetDefault("matching.max_distance", cfg.Matching.MaxDistance)
	viper.SetDefault("matching.search_max_distance", cfg.Matching.SearchMaxDistance)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.dir", cfg.Cache.Dir)
	viper.SetDefault("cache.memory_ttl", cfg.Cache.MemoryTTL)
	viper.SetDefault("cache.disk_ttl", cfg.Cache.DiskTTL)
	viper.SetDefault("belts.dir", cfg.Belts.Dir)
	viper.SetDefault("belts.pattern", cfg.Belts.Pattern)
	viper.SetDefault("concurrency.workers", cfg.Concurrency.Workers)
	viper.SetDefault("output.verbose", cfg.Output.Verbose)
	viper.SetDefault("output.show_descriptions", cfg.Output.ShowDescriptions)
	viper.SetDefault("output.include_footer", cfg.Output.IncludeFooter)
}

// loadConfig resolves defaults, config file and environment into a Config.
// Commands apply their own flags on top.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configDir is ~/.tkdgloss
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tkdgloss"), nil
}

// openCache builds the report cache, or returns nil when caching is off
func openCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	return cache.New(cfg.Cache.Dir, cfg.Cache.MemoryTTL, cfg.Cache.DiskTTL)
}

// openBelts loads the belt curriculum the config points at
func openBelts(cfg *model.Config) (*belt.Registry, error) {
	reg, err := belt.Open(cfg.Belts.Dir, cfg.Belts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("load belts: %w", err)
	}
	if cfg.Output.Verbose {
		src := cfg.Belts.Dir
		if src == "" {
			src = "built-in curriculum"
		}
		fmt.Fprintf(os.Stderr, "Loaded %d belts from %s\n", reg.Len(), src)
	}
	return reg, nil
}
