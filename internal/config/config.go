package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Frames  FramesConfig  `yaml:"frames"`
	Logging LoggingConfig `yaml:"logging"`

	// GeminiKeys comes from the GEMINI_API_KEY environment variable
	// (comma-separated for rotation), never from the yaml file.
	GeminiKeys []string `yaml:"-"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Inbox  string `yaml:"inbox"`
}

type FramesConfig struct {
	// ExtractAll enables the bulk capture mode (one frame every
	// IntervalSeconds) in addition to the analyzer-selected frames.
	ExtractAll      bool    `yaml:"extract_all"`
	IntervalSeconds float64 `yaml:"interval_seconds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the yaml config file and the environment. A missing config
// file is not an error; defaults apply. A .env file is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	for _, key := range strings.Split(os.Getenv("GEMINI_API_KEY"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.GeminiKeys = append(cfg.GeminiKeys, key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills defaults for the fields every stage shares.
func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = 120
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "conteudo_video"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Frames.IntervalSeconds <= 0 {
		c.Frames.IntervalSeconds = 5
	}
	if c.Whisper.Threads <= 0 {
		c.Whisper.Threads = 8
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// ValidateWhisper checks the fields the transcription stage requires.
func (c *Config) ValidateWhisper() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.Language == "" {
		return fmt.Errorf("whisper.language is required")
	}
	return nil
}

// GeminiTimeout returns the remote-call timeout as a duration.
func (c *Config) GeminiTimeout() time.Duration {
	return time.Duration(c.Gemini.TimeoutSeconds) * time.Second
}
