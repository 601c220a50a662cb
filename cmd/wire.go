package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	openaiadapter "github.com/bnema/dmbot/internal/adapters/openai"
	statusadapter "github.com/bnema/dmbot/internal/adapters/render/status"
	"github.com/bnema/dmbot/internal/adapters/repo/jsonfile"
	chainstore "github.com/bnema/dmbot/internal/adapters/secrets/chain"
	"github.com/bnema/dmbot/internal/application"
	"github.com/bnema/dmbot/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	configDirName  = ".dmbot"
	configFileName = "config.toml"
)

type app struct {
	cfg            *viper.Viper
	log            *zap.Logger
	configDir      string
	registry       *application.Registry
	combat         *application.Combat
	secretStore    ports.SecretStore
	statusRenderer func(statusadapter.Snapshot) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	cfg.SetDefault("storage.characters_path", filepath.Join(configDir, "character_data.json"))
	cfg.SetDefault("storage.combat_path", filepath.Join(configDir, "combat_data.json"))
	cfg.SetDefault("discord.token_ref", "discord_token")
	cfg.SetDefault("openai.api_key_ref", "openai_api_key")
	cfg.SetDefault("openai.base_url", "")
	cfg.SetDefault("openai.model", openaiadapter.DefaultModel)
	cfg.SetDefault("openai.max_tokens", openaiadapter.DefaultMaxTokens)
	cfg.SetDefault("openai.temperature", openaiadapter.DefaultTemperature)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	log, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	characterRepo, err := jsonfile.NewCharacterRepository(cfg.GetString("storage.characters_path"), log)
	if err != nil {
		return nil, fmt.Errorf("wire character repository: %w", err)
	}

	combatRepo, err := jsonfile.NewCombatRepository(cfg.GetString("storage.combat_path"), log)
	if err != nil {
		return nil, fmt.Errorf("wire combat repository: %w", err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(filepath.Join(configDir, "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	ctx := context.Background()

	return &app{
		cfg:            cfg,
		log:            log,
		configDir:      configDir,
		registry:       application.NewRegistry(ctx, characterRepo),
		combat:         application.NewCombat(ctx, combatRepo, nil),
		secretStore:    secretStore,
		statusRenderer: statusadapter.Render,
	}, nil
}

func (a *app) configFilePath() string {
	return filepath.Join(a.configDir, configFileName)
}

func (a *app) discordToken(ctx context.Context) (string, error) {
	token, err := a.secretStore.Get(ctx, a.cfg.GetString("discord.token_ref"))
	if err != nil {
		return "", fmt.Errorf("resolve discord token: %w", err)
	}

	return token, nil
}

func (a *app) narrator(ctx context.Context) (ports.Narrator, error) {
	apiKey, err := a.secretStore.Get(ctx, a.cfg.GetString("openai.api_key_ref"))
	if err != nil {
		return nil, fmt.Errorf("resolve openai api key: %w", err)
	}

	narrator, err := openaiadapter.NewNarrator(openaiadapter.Config{
		APIKey:      apiKey,
		BaseURL:     a.cfg.GetString("openai.base_url"),
		Model:       a.cfg.GetString("openai.model"),
		MaxTokens:   a.cfg.GetInt("openai.max_tokens"),
		Temperature: float32(a.cfg.GetFloat64("openai.temperature")),
	})
	if err != nil {
		return nil, fmt.Errorf("wire narrator: %w", err)
	}

	return narrator, nil
}

func (a *app) snapshot() statusadapter.Snapshot {
	return statusadapter.Snapshot{
		Characters: a.registry.Snapshot(),
		Encounter:  a.combat.Status(),
	}
}
