package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	SessionStoreMemory   = "memory"
	SessionStoreDynamoDB = "dynamodb"
)

type ServerConfig struct {
	Port               int      `mapstructure:"port"`
	Mode               string   `mapstructure:"mode"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type TablesConfig struct {
	CostFactors    string `mapstructure:"cost_factors"`
	BudgetRequests string `mapstructure:"budget_requests"`
	AdminUsers     string `mapstructure:"admin_users"`
	Sessions       string `mapstructure:"sessions"`
	Payments       string `mapstructure:"payments"`
	Counters       string `mapstructure:"counters"`
}

type DynamoDBConfig struct {
	Region           string       `mapstructure:"region"`
	AccessKeyID      string       `mapstructure:"access_key_id"`
	SecretAccessKey  string       `mapstructure:"secret_access_key"`
	Endpoint         string       `mapstructure:"endpoint"`
	AutoCreateTables bool         `mapstructure:"-"`
	Tables           TablesConfig `mapstructure:"tables"`
}

type AuthConfig struct {
	SessionStore         string `mapstructure:"session_store"`
	DefaultAdminUsername string `mapstructure:"default_admin_username"`
	DefaultAdminPassword string `mapstructure:"default_admin_password"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
	TestPayerEmail         string `mapstructure:"test_payer_email"`
	TestPayerUserID        string `mapstructure:"test_payer_user_id"`
	Mock                   bool   `mapstructure:"-"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Payments PaymentsConfig `mapstructure:"payments"`
}

// envBindings maps config keys to the environment variables that override
// them. When several names are listed the first one set wins.
var envBindings = map[string][]string{
	"server.port":                       {"SERVER_PORT", "PORT"},
	"server.mode":                       {"GIN_MODE"},
	"server.cors_allowed_origins":       {"CORS_ALLOWED_ORIGINS"},
	"dynamodb.region":                   {"AWS_REGION"},
	"dynamodb.access_key_id":            {"AWS_ACCESS_KEY_ID"},
	"dynamodb.secret_access_key":        {"AWS_SECRET_ACCESS_KEY"},
	"dynamodb.endpoint":                 {"DYNAMODB_ENDPOINT"},
	"dynamodb.auto_create_tables":       {"DYNAMODB_AUTO_CREATE_TABLES"},
	"dynamodb.tables.cost_factors":      {"COST_FACTORS_TABLE"},
	"dynamodb.tables.budget_requests":   {"BUDGET_REQUESTS_TABLE"},
	"dynamodb.tables.admin_users":       {"ADMIN_USERS_TABLE"},
	"dynamodb.tables.sessions":          {"SESSIONS_TABLE"},
	"dynamodb.tables.payments":          {"PAYMENTS_TABLE"},
	"dynamodb.tables.counters":          {"COUNTERS_TABLE"},
	"auth.session_store":                {"SESSION_STORE"},
	"auth.default_admin_username":       {"DEFAULT_ADMIN_USERNAME"},
	"auth.default_admin_password":       {"DEFAULT_ADMIN_PASSWORD"},
	"payments.mercadopago_access_token": {"MERCADOPAGO_ACCESS_TOKEN"},
	"payments.test_payer_email":         {"MERCADOPAGO_TEST_PAYER_EMAIL"},
	"payments.test_payer_user_id":       {"MERCADOPAGO_TEST_PAYER_USER_ID"},
	"payments.mock":                     {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:3000", "http://localhost:9002"})

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.auto_create_tables", "false")
	v.SetDefault("dynamodb.tables.cost_factors", "cost_factors")
	v.SetDefault("dynamodb.tables.budget_requests", "budget_requests")
	v.SetDefault("dynamodb.tables.admin_users", "admin_users")
	v.SetDefault("dynamodb.tables.sessions", "sessions")
	v.SetDefault("dynamodb.tables.payments", "payments")
	v.SetDefault("dynamodb.tables.counters", "counters")

	v.SetDefault("auth.session_store", SessionStoreMemory)
	v.SetDefault("auth.default_admin_username", "admin")
	v.SetDefault("auth.default_admin_password", "1234")

	v.SetDefault("payments.mercadopago_access_token", "")
	v.SetDefault("payments.test_payer_email", "")
	v.SetDefault("payments.test_payer_user_id", "")
	v.SetDefault("payments.mock", "false")
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.DynamoDB.AutoCreateTables = enabled(v.GetString("dynamodb.auto_create_tables"))
	c.Payments.Mock = enabled(v.GetString("payments.mock"))
	c.Auth.SessionStore = strings.ToLower(strings.TrimSpace(c.Auth.SessionStore))
	c.Server.CORSAllowedOrigins = trimAll(c.Server.CORSAllowedOrigins)

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Auth.SessionStore {
	case SessionStoreMemory, SessionStoreDynamoDB:
	default:
		return fmt.Errorf("invalid session store %q", c.Auth.SessionStore)
	}
	if strings.TrimSpace(c.Auth.DefaultAdminUsername) == "" || c.Auth.DefaultAdminPassword == "" {
		return fmt.Errorf("default admin credentials cannot be empty")
	}
	return nil
}

func enabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
