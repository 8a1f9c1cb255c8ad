package cmd

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/filtering"
	"github.com/ravyz/matcher/internal/logger"
	"github.com/ravyz/matcher/internal/matching"
	"github.com/ravyz/matcher/internal/secrets"
	"github.com/ravyz/matcher/internal/store"
)

const (
	app = "ravyz-matcher"
)

type Config struct {
	Strategy  string            `mapstructure:"strategy"`
	Workers   int               `mapstructure:"workers"`
	ResultTTL time.Duration     `mapstructure:"result-ttl"`
	Filters   *filtering.Config `mapstructure:"filters"`
	Database  *DatabaseConfig   `mapstructure:"database"`
}

type DatabaseConfig struct {
	URL           string `mapstructure:"url"`
	URLFile       string `mapstructure:"url-file"`
	store.Options `mapstructure:",squash"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "ravyz-matcher scores candidates against jobs using behavioral pillars, experience and skills",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for key, env := range map[string]string{
		"database.url":      "DATABASE_URL",
		"database.url-file": "DATABASE_URL_FILE",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("strategy", matching.StrategyHybrid)
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("result-ttl", matching.DefaultTTL.String())
	defaults := store.DefaultOptions()
	viper.SetDefault("database.max-open-conns", defaults.MaxOpenConns)
	viper.SetDefault("database.max-idle-conns", defaults.MaxIdleConns)
	viper.SetDefault("database.conn-max-lifetime", defaults.ConnMaxLifetime.String())
	viper.SetDefault("database.ping-timeout", defaults.PingTimeout.String())

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is ravyz-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (cfgFile != "" || !errors.As(err, &notFound)) {
		// We can't proceed if the config file parsed with error.
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	if config.Filters == nil {
		config.Filters = &filtering.Config{}
	}
	if config.Database == nil {
		config.Database = &DatabaseConfig{}
	}

	return config, nil
}

// setup builds the logger and reads the configuration shared by every command.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Debug("configuration loaded",
		zap.String("config_file", viper.ConfigFileUsed()),
		zap.String("strategy", config.Strategy),
		zap.Int("workers", config.Workers),
		zap.Duration("result_ttl", config.ResultTTL),
	)

	return l, config
}

func openDatabase(ctx context.Context, config *Config, l *zap.Logger) (*sql.DB, error) {
	url, err := secrets.Load(secrets.Source{
		Name:  "database url",
		Value: config.Database.URL,
		File:  config.Database.URLFile,
		Env:   "DATABASE_URL",
	})
	if err != nil {
		return nil, err
	}

	l.Info("connecting to database", zap.String("url", secrets.RedactURL(url)))
	return store.Connect(ctx, url, config.Database.Options, l)
}
