package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string

	// Price oracle. Without a Redis URL the static prices are used.
	RedisURL       string
	PriceKeyPrefix string
	StaticPrices   map[domain.AssetID]decimal.Decimal

	// Audit relay sinks. Empty brokers disable Kafka publishing.
	KafkaBrokers       []string
	AuditTopic         string
	AuditRelayInterval time.Duration

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	// Deployment of the ledger and the security token
	BootstrapAdmin     domain.Address
	CustodyAddress     domain.Address
	SecurityTokenAsset domain.AssetID
	DefaultPartition   domain.Partition
	VaultAssets        []domain.DepositLimitUpdate
	SingleVaultAsset   domain.AssetID // Optional; zero disables the single-asset vault
	SingleVaultLimit   decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "securities-vault")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PRICE_KEY_PREFIX", "price:")
	viper.SetDefault("STATIC_PRICES", "")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("AUDIT_TOPIC", "vault.audit")
	viper.SetDefault("AUDIT_RELAY_INTERVAL", "1s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("BOOTSTRAP_ADMIN", "")
	viper.SetDefault("CUSTODY_ADDRESS", "")
	viper.SetDefault("SECURITY_TOKEN_ASSET", "")
	viper.SetDefault("DEFAULT_PARTITION", string(domain.DefaultPartition))
	viper.SetDefault("VAULT_ASSETS", "")
	viper.SetDefault("SINGLE_VAULT_ASSET", "")
	viper.SetDefault("SINGLE_VAULT_LIMIT", "0")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Audit events will not be persisted.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.PriceKeyPrefix = viper.GetString("PRICE_KEY_PREFIX")
	prices, err := ParseStaticPrices(viper.GetString("STATIC_PRICES"))
	if err != nil {
		return nil, err
	}
	cfg.StaticPrices = prices

	cfg.KafkaBrokers = splitList(viper.GetString("KAFKA_BROKERS"))
	cfg.AuditTopic = viper.GetString("AUDIT_TOPIC")
	relayStr := viper.GetString("AUDIT_RELAY_INTERVAL")
	cfg.AuditRelayInterval, err = time.ParseDuration(relayStr)
	if err != nil || cfg.AuditRelayInterval <= 0 {
		cfg.AuditRelayInterval = time.Second
		log.Printf("Warning: Invalid value for AUDIT_RELAY_INTERVAL ('%s'). Defaulting to %s.\n", relayStr, cfg.AuditRelayInterval)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.BootstrapAdmin, err = domain.ParseAddress(viper.GetString("BOOTSTRAP_ADMIN")); err != nil {
		return nil, fmt.Errorf("BOOTSTRAP_ADMIN: %w", err)
	}
	if cfg.CustodyAddress, err = domain.ParseAddress(viper.GetString("CUSTODY_ADDRESS")); err != nil {
		return nil, fmt.Errorf("CUSTODY_ADDRESS: %w", err)
	}
	if cfg.SecurityTokenAsset, err = domain.ParseAddress(viper.GetString("SECURITY_TOKEN_ASSET")); err != nil {
		return nil, fmt.Errorf("SECURITY_TOKEN_ASSET: %w", err)
	}
	cfg.DefaultPartition = domain.Partition(viper.GetString("DEFAULT_PARTITION"))

	if cfg.VaultAssets, err = ParseVaultAssets(viper.GetString("VAULT_ASSETS")); err != nil {
		return nil, err
	}

	if single := viper.GetString("SINGLE_VAULT_ASSET"); single != "" {
		if cfg.SingleVaultAsset, err = domain.ParseAddress(single); err != nil {
			return nil, fmt.Errorf("SINGLE_VAULT_ASSET: %w", err)
		}
		if cfg.SingleVaultLimit, err = parseLimit(viper.GetString("SINGLE_VAULT_LIMIT")); err != nil {
			return nil, fmt.Errorf("SINGLE_VAULT_LIMIT: %w", err)
		}
	}

	if err := cfg.CheckAssetsDistinct(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CheckAssetsDistinct rejects a deployment where the security token, the
// single-asset vault and the multi-asset vault name the same asset. They
// would otherwise share balance entries in one store.
func (c *Config) CheckAssetsDistinct() error {
	owners := make(map[domain.AssetID]string)
	claim := func(asset domain.AssetID, owner string) error {
		if asset.IsZero() {
			return nil
		}
		if prev, ok := owners[asset]; ok {
			return fmt.Errorf("%w: asset %s is configured for both %s and %s", apperrors.ErrValidation, asset, prev, owner)
		}
		owners[asset] = owner
		return nil
	}
	if err := claim(c.SecurityTokenAsset, "SECURITY_TOKEN_ASSET"); err != nil {
		return err
	}
	if err := claim(c.SingleVaultAsset, "SINGLE_VAULT_ASSET"); err != nil {
		return err
	}
	for _, a := range c.VaultAssets {
		if err := claim(a.Asset, "VAULT_ASSETS"); err != nil {
			return err
		}
	}
	return nil
}

// ParseVaultAssets parses a comma separated list of asset:limit pairs.
func ParseVaultAssets(raw string) ([]domain.DepositLimitUpdate, error) {
	var assets []domain.DepositLimitUpdate
	for _, entry := range splitList(raw) {
		addr, limitStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("VAULT_ASSETS: entry %q is not asset:limit", entry)
		}
		asset, err := domain.ParseAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("VAULT_ASSETS: %w", err)
		}
		limit, err := parseLimit(limitStr)
		if err != nil {
			return nil, fmt.Errorf("VAULT_ASSETS: %w", err)
		}
		assets = append(assets, domain.DepositLimitUpdate{Asset: asset, Limit: limit})
	}
	return assets, nil
}

// ParseStaticPrices parses a comma separated list of asset:price pairs.
func ParseStaticPrices(raw string) (map[domain.AssetID]decimal.Decimal, error) {
	prices := make(map[domain.AssetID]decimal.Decimal)
	for _, entry := range splitList(raw) {
		addr, priceStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("STATIC_PRICES: entry %q is not asset:price", entry)
		}
		asset, err := domain.ParseAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("STATIC_PRICES: %w", err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("STATIC_PRICES: invalid price %q for %s", priceStr, asset)
		}
		prices[asset] = price
	}
	return prices, nil
}

func parseLimit(raw string) (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid limit %q", raw)
	}
	if err := domain.ValidateLimit(limit); err != nil {
		return decimal.Zero, err
	}
	return limit, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
