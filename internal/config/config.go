package config

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`

	// Optional outbound proxies for the Telegram API and generic fetches.
	HTTPProxy  string `envconfig:"HTTP_PROXY"`
	HTTPSProxy string `envconfig:"HTTPS_PROXY"`

	// Base URL of the recognition API.
	RecognizerURL string `envconfig:"RECOGNIZER_URL" default:"https://api.shazam.com"`

	// Directory for transient working files.
	TempDir string `envconfig:"TEMP_DIR" default:"temp"`

	EnableYouTubeDownload   bool `envconfig:"ENABLE_YOUTUBE_DOWNLOAD" default:"true"`
	EnableInstagramDownload bool `envconfig:"ENABLE_INSTAGRAM_DOWNLOAD" default:"true"`
	EnableMetadataEditing   bool `envconfig:"ENABLE_METADATA_EDITING" default:"true"`
}

// Load reads configuration from environment variables, with optional
// .env file support.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}

// ProxyClient builds the HTTP client used for the bot transport and
// generic downloads, honoring the configured proxy if any.
func (c *Config) ProxyClient(timeout time.Duration) (*http.Client, error) {
	client := &http.Client{Timeout: timeout}

	proxy := c.HTTPSProxy
	if proxy == "" {
		proxy = c.HTTPProxy
	}
	if proxy == "" {
		return client, nil
	}

	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return nil, fmt.Errorf("parse proxy URL: %w", err)
	}
	client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	return client, nil
}
