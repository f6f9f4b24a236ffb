// Package config loads the service configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Session configures the server-side cookie session store.
	Session SessionConfig `json:"session" yaml:"session"`

	// Admin is the hardcoded back-office identity. Login with this email
	// bypasses the users table entirely.
	Admin AdminConfig `json:"admin" yaml:"admin"`

	// Razorpay credentials. When absent, payment order creation reports the
	// gateway as unavailable instead of failing inside the SDK.
	Razorpay *RazorpayConfig `json:"razorpay" yaml:"razorpay"`

	// Mail configures the transactional SMTP sender. Optional; when absent
	// every notification becomes a logged no-op.
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Upload configures the blob bucket for customer and delivery files.
	Upload UploadConfig `json:"upload" yaml:"upload"`

	// Assistant configures the Bruno chat assistant.
	Assistant AssistantConfig `json:"assistant" yaml:"assistant"`

	// Redis backs the chat history store when configured; otherwise an
	// in-process TTL cache is used.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// GoogleOAuth enables Google sign-in when a client id is present.
	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// Tokens holds the reward amounts for the loyalty ledger.
	Tokens TokensConfig `json:"tokens" yaml:"tokens"`
}

// Log defines logger behavior.
type Log struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// SessionConfig defines cookie session behavior.
type SessionConfig struct {
	Secret string `json:"secret" yaml:"secret"`
	// MaxAge is the sliding session lifetime. Defaults to 7 days.
	MaxAge time.Duration `json:"maxAge" yaml:"maxAge"`
	Secure bool          `json:"secure" yaml:"secure"`
}

// AdminConfig holds the single back-office login pair. PasswordHash is a
// bcrypt hash, never a plaintext password.
type AdminConfig struct {
	Email        string `json:"email" yaml:"email"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
}

// RazorpayConfig holds the payment gateway key pair.
type RazorpayConfig struct {
	KeyID     string `json:"keyId" yaml:"keyId"`
	KeySecret string `json:"keySecret" yaml:"keySecret"`
}

// MailConfig holds SMTP settings for transactional email.
type MailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// UploadConfig defines the blob bucket and per-file limits.
type UploadConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "s3://sagedo-orders",
	// "gs://sagedo-orders" or "file:///var/sagedo/uploads".
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// MaxFileBytes caps a single uploaded file. Defaults to 10MB.
	MaxFileBytes int64 `json:"maxFileBytes" yaml:"maxFileBytes"`
	// MaxFiles caps the number of files in one request. Defaults to 10.
	MaxFiles int `json:"maxFiles" yaml:"maxFiles"`
}

// AssistantConfig configures the chat assistant.
type AssistantConfig struct {
	// APIKey enables LLM-backed replies when set; the keyword table is the
	// fallback either way.
	APIKey string `json:"apiKey" yaml:"apiKey"`
	Model  string `json:"model" yaml:"model"`
	// HistoryTTL bounds how long an idle conversation is kept.
	HistoryTTL time.Duration `json:"historyTtl" yaml:"historyTtl"`
}

// RedisConfig holds the optional redis connection for chat history.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// GoogleOAuthConfig enables Google sign-in. Only the client id is needed for
// ID token verification.
type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// TokensConfig holds reward amounts, in tokens.
type TokensConfig struct {
	Welcome    int `json:"welcome" yaml:"welcome"`
	DailyLogin int `json:"dailyLogin" yaml:"dailyLogin"`
	Referral   int `json:"referral" yaml:"referral"`
	Survey     int `json:"survey" yaml:"survey"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: RAZORPAY_KEYSECRET -> razorpay.keySecret (not razorpay.keysecret)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Session.MaxAge <= 0 {
		cfg.Session.MaxAge = 7 * 24 * time.Hour
	}
	if cfg.Upload.MaxFileBytes <= 0 {
		cfg.Upload.MaxFileBytes = 10 << 20
	}
	if cfg.Upload.MaxFiles <= 0 {
		cfg.Upload.MaxFiles = 10
	}
	if cfg.Assistant.HistoryTTL <= 0 {
		cfg.Assistant.HistoryTTL = 30 * time.Minute
	}
	if cfg.Tokens.Welcome <= 0 {
		cfg.Tokens.Welcome = 150
	}
	if cfg.Tokens.DailyLogin <= 0 {
		cfg.Tokens.DailyLogin = 10
	}
	if cfg.Tokens.Referral <= 0 {
		cfg.Tokens.Referral = 50
	}
	if cfg.Tokens.Survey <= 0 {
		cfg.Tokens.Survey = 25
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
