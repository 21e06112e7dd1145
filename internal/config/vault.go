package config

import (
	"fmt"
	"os"
	"strings"

	"cvision/internal/errors"

	"github.com/hashicorp/vault/api"
)

// VaultConfig holds Vault connection configuration
type VaultConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"tokenFile"`
	Namespace string `mapstructure:"namespace"`

	Secrets VaultSecrets `mapstructure:"secrets"`
}

// VaultSecrets defines where to find secrets in Vault
type VaultSecrets struct {
	GeminiKey string `mapstructure:"geminiKey"` // KV path holding the Gemini API key under "api_key"
}

// VaultClient wraps the Vault API client
type VaultClient struct {
	client *api.Client
	config VaultConfig
	logger *errors.Logger
}

// NewVaultClient creates a new Vault client from configuration. Returns
// (nil, nil) when Vault integration is disabled.
func NewVaultClient(config VaultConfig, logger *errors.Logger) (*VaultClient, error) {
	if !config.Enabled {
		if logger != nil {
			logger.Debug("Vault integration disabled")
		}
		return nil, nil
	}

	vaultConfig := api.DefaultConfig()
	if config.Address != "" {
		vaultConfig.Address = config.Address
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	if config.Namespace != "" {
		client.SetNamespace(config.Namespace)
	}

	token, err := resolveVaultToken(config)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	if logger != nil {
		logger.Debug("Vault client initialized",
			"address", vaultConfig.Address,
			"namespace", config.Namespace)
	}

	return &VaultClient{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// resolveVaultToken resolves the Vault token from config or file
func resolveVaultToken(config VaultConfig) (string, error) {
	token := config.Token

	if token == "" && config.TokenFile != "" {
		tokenBytes, err := os.ReadFile(config.TokenFile)
		if err != nil {
			return "", fmt.Errorf("failed to read vault token file: %w", err)
		}
		token = strings.TrimSpace(string(tokenBytes))
	}

	if token == "" {
		return "", fmt.Errorf("vault token is required when vault is enabled")
	}

	return token, nil
}

// GetGeminiKey reads the Gemini API key from the configured secret path.
func (vc *VaultClient) GetGeminiKey() (string, error) {
	if vc.config.Secrets.GeminiKey == "" {
		return "", fmt.Errorf("vault gemini key path is not configured")
	}

	secret, err := vc.client.Logical().Read(vc.config.Secrets.GeminiKey)
	if err != nil {
		return "", fmt.Errorf("failed to read secret at %s: %w", vc.config.Secrets.GeminiKey, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("no secret found at %s", vc.config.Secrets.GeminiKey)
	}

	// KV v2 nests the payload under "data"
	data := secret.Data
	if nested, ok := data["data"].(map[string]any); ok {
		data = nested
	}

	key, ok := data["api_key"].(string)
	if !ok || key == "" {
		return "", fmt.Errorf("secret at %s has no api_key field", vc.config.Secrets.GeminiKey)
	}

	return key, nil
}

// ApplyVaultOverrides fetches secrets from Vault and applies them to the
// configuration. A disabled Vault is a no-op; a configured but unreachable
// Vault is an error, since the operator asked for it.
func (c *Config) ApplyVaultOverrides(logger *errors.Logger) error {
	vc, err := NewVaultClient(c.Vault, logger)
	if err != nil {
		return err
	}
	if vc == nil {
		return nil
	}

	if c.Vault.Secrets.GeminiKey != "" {
		key, err := vc.GetGeminiKey()
		if err != nil {
			return errors.NewConfigError(errors.ErrCodeInvalidConfig,
				"Failed to fetch Gemini API key from Vault", err)
		}
		c.AI.APIKey = key
		if logger != nil {
			logger.Info("AI API key loaded from Vault")
		}
	}

	return nil
}
