package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	OutputFormatText = "text"
	OutputFormatYAML = "yaml"
)

type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text yaml"`
	Romaji bool   `mapstructure:"romaji"`
	Color  bool   `mapstructure:"color"`
}

type AnalysisConfig struct {
	// UseReading classifies verbs by the kana reading from the morphological analyzer
	UseReading     bool   `mapstructure:"use_reading"`
	UserDictionary string `mapstructure:"user_dictionary" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/katsuyo")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("output.format", OutputFormatText)
	v.SetDefault("output.romaji", false)
	v.SetDefault("output.color", true)
	v.SetDefault("analysis.use_reading", false)
	// An empty user dictionary means only the bundled dictionary is used
	v.SetDefault("analysis.user_dictionary", "")

	if err := v.BindEnv("output.format", "KATSUYO_OUTPUT_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KATSUYO_OUTPUT_FORMAT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads the configuration from configFile, or from the default locations when it's empty
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}
