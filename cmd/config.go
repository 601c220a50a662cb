package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const (
	configFileMode = 0o600
	configDirMode  = 0o700
)

type configSchema struct {
	Storage storageConfigSchema `toml:"storage"`
	Discord discordConfigSchema `toml:"discord"`
	OpenAI  openaiConfigSchema  `toml:"openai"`
}

type storageConfigSchema struct {
	CharactersPath string `toml:"characters_path"`
	CombatPath     string `toml:"combat_path"`
}

type discordConfigSchema struct {
	TokenRef string `toml:"token_ref"`
}

type openaiConfigSchema struct {
	APIKeyRef   string  `toml:"api_key_ref"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
}

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the dmbot configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(app))

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := app.configFilePath()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config file: %w", err)
			}

			data, err := toml.Marshal(defaultConfig(app))
			if err != nil {
				return fmt.Errorf("encode config file: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			if err := os.WriteFile(path, data, configFileMode); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func defaultConfig(app *app) configSchema {
	return configSchema{
		Storage: storageConfigSchema{
			CharactersPath: app.cfg.GetString("storage.characters_path"),
			CombatPath:     app.cfg.GetString("storage.combat_path"),
		},
		Discord: discordConfigSchema{
			TokenRef: app.cfg.GetString("discord.token_ref"),
		},
		OpenAI: openaiConfigSchema{
			APIKeyRef:   app.cfg.GetString("openai.api_key_ref"),
			Model:       app.cfg.GetString("openai.model"),
			MaxTokens:   app.cfg.GetInt("openai.max_tokens"),
			Temperature: app.cfg.GetFloat64("openai.temperature"),
		},
	}
}
