package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stupiduntilnot/localagent/internal/agent"
	"github.com/stupiduntilnot/localagent/internal/config"
	"github.com/stupiduntilnot/localagent/internal/convo"
	"github.com/stupiduntilnot/localagent/internal/db"
	"github.com/stupiduntilnot/localagent/internal/llama"
	"github.com/stupiduntilnot/localagent/internal/model"
	"github.com/stupiduntilnot/localagent/internal/openai"
	"github.com/stupiduntilnot/localagent/internal/speech"
	"github.com/stupiduntilnot/localagent/internal/weather"
)

var (
	configFile  string
	verbose     bool
	speakFlag   bool
	historyDB   string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "agent",
	Short: "Local AI agent with task dispatch",
	Long: `agent is a single-user conversational assistant backed by a locally
hosted language model. Freeform input goes through a sliding-window
conversation prompt; recognized commands run task handlers:

  task: summarize <file_path>
  task: draft email <content>
  task: get weather <location>`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if historyDB != "" {
			cfg.HistoryDBPath = historyDB
		}
		if speakFlag {
			cfg.SpeechEnabled = true
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&speakFlag, "speak", false, "speak replies aloud")
	rootCmd.PersistentFlags().StringVar(&historyDB, "history-db", "", "persist conversation history to this SQLite file")

	rootCmd.AddCommand(consoleCmd, webCmd, askCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newSession wires provider, persistence, and handlers per config. The
// returned close function releases the history database, if any.
func newSession(ctx context.Context) (*agent.Session, func(), error) {
	provider, err := newModelProvider(ctx)
	if err != nil {
		return nil, nil, err
	}

	var store convo.Store
	var database *sql.DB
	if cfg.HistoryDBPath != "" {
		database, err = db.OpenDB(cfg.HistoryDBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.InitSchema(database); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to init history schema: %w", err)
		}
		store = &convo.SQLiteStore{DB: database}
	}
	closeFn := func() {
		if database != nil {
			database.Close()
		}
	}

	var weatherClient *weather.Client
	if cfg.WeatherAPIKey != "" {
		weatherClient = weather.NewClient(cfg.WeatherAPIBase, cfg.WeatherAPIKey, requestTimeout())
	}

	session, err := agent.NewSession(agent.Options{
		Provider:      provider,
		Params:        generationParams(),
		SystemPrompt:  cfg.SystemPrompt,
		HistoryWindow: cfg.HistoryWindow,
		Store:         store,
		Weather:       weatherClient,
		Logger:        logger,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return session, closeFn, nil
}

func newModelProvider(ctx context.Context) (model.Provider, error) {
	switch cfg.ModelProvider {
	case "llama":
		client := llama.NewClient(cfg.LlamaServerURL, requestTimeout())
		healthCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := client.Health(healthCtx); err != nil {
			return nil, fmt.Errorf("model failed to load: %w", err)
		}
		logger.Info("model ready",
			zap.String("provider", "llama"),
			zap.String("server", cfg.LlamaServerURL))
		return client, nil
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIChatCompURL, cfg.OpenAIModel, requestTimeout()), nil
	case "dummy":
		return model.NewDummy(cfg.DummyScript)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", cfg.ModelProvider)
	}
}

func newSynthesizer() (speech.Synthesizer, error) {
	if !cfg.SpeechEnabled {
		return nil, nil
	}
	return speech.NewCommandSynthesizer(cfg.SpeakCommand, requestTimeout())
}

func generationParams() model.Params {
	return model.Params{
		Temperature: cfg.Temperature,
		TopK:        cfg.TopK,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxTokens,
	}
}

func requestTimeout() time.Duration {
	return time.Duration(cfg.RequestTimeoutSeconds) * time.Second
}
