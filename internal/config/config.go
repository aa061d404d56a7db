package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ConfigName = "salesgen.config"
	ConfigFile = ConfigName + ".json"
	EnvPrefix  = "SALESGEN"
)

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Seed     uint64   `json:"seed" mapstructure:"seed"`
	Counts   Counts   `json:"counts" mapstructure:"counts"`
	Output   Output   `json:"output" mapstructure:"output"`
	Database Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Customers int `json:"customers" mapstructure:"customers" validate:"gte=0"`
	Sellers   int `json:"sellers" mapstructure:"sellers" validate:"gte=0"`
	Products  int `json:"products" mapstructure:"products" validate:"gte=0"`
	Orders    int `json:"orders" mapstructure:"orders" validate:"gte=0"`
}

type Output struct {
	Dir      string `json:"dir" mapstructure:"dir" validate:"required"`
	Format   string `json:"format" mapstructure:"format" validate:"oneof=csv json sqlite"`
	Manifest bool   `json:"manifest" mapstructure:"manifest"` // write manifest.yaml next to the data
}

type Database struct {
	Provider  string `json:"provider" mapstructure:"provider" validate:"oneof=postgresql postgres mysql sqlite sqlite3"`
	URLEnv    string `json:"url_env" mapstructure:"url_env" validate:"required"`
	BatchSize int    `json:"batch_size" mapstructure:"batch_size" validate:"gt=0"`
}

var validate = newValidator()

// newValidator reports fields by their config key rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Seed:    42,
		Counts: Counts{
			Customers: 200,
			Sellers:   50,
			Products:  100,
			Orders:    1000,
		},
		Output: Output{
			Dir:      "data",
			Format:   "csv",
			Manifest: true,
		},
		Database: Database{
			Provider:  "sqlite",
			URLEnv:    "DATABASE_URL",
			BatchSize: 500,
		},
	}
}

// SetDefaults registers every key with viper so that environment overrides
// and Unmarshal see them even without a config file.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("counts.customers", d.Counts.Customers)
	v.SetDefault("counts.sellers", d.Counts.Sellers)
	v.SetDefault("counts.products", d.Counts.Products)
	v.SetDefault("counts.orders", d.Counts.Orders)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.manifest", d.Output.Manifest)
	v.SetDefault("database.provider", d.Database.Provider)
	v.SetDefault("database.url_env", d.Database.URLEnv)
	v.SetDefault("database.batch_size", d.Database.BatchSize)
}

// Init loads .env files and points the global viper instance at the config
// file. A missing config file is not an error.
func Init(cfgFile string) error {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(ConfigName)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func Load() (*Config, error) {
	SetDefaults(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Database.Provider = strings.ToLower(cfg.Database.Provider)

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if c.Counts.Orders > 0 {
		if c.Counts.Customers == 0 {
			return fmt.Errorf("counts.customers must be positive when orders are generated")
		}
		if c.Counts.Sellers == 0 {
			return fmt.Errorf("counts.sellers must be positive when orders are generated")
		}
		if c.Counts.Products < 3 {
			return fmt.Errorf("counts.products must be at least 3 when orders are generated, got %d", c.Counts.Products)
		}
	}

	return nil
}

func fieldError(fe validator.FieldError) error {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "gte":
		return fmt.Errorf("%s cannot be negative: %v", key, fe.Value())
	case "gt":
		return fmt.Errorf("%s must be positive", key)
	case "required":
		return fmt.Errorf("%s cannot be empty", key)
	case "oneof":
		return fmt.Errorf("unsupported %s: %v. Supported values: %s", key, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Errorf("%s failed %s validation", key, fe.Tag())
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) EnsureDirectories() error {
	if c.Output.Dir == "" || c.Output.Dir == "." {
		return nil
	}
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.Output.Dir, err)
	}
	return nil
}

// IsInitialized reports whether a config file exists in the working directory.
func IsInitialized() bool {
	_, err := os.Stat(ConfigFile)
	return err == nil
}

// InitializeProject writes the default config file, the output directory and
// an .env template. It refuses to overwrite an existing config.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("%s already exists", ConfigFile)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(ConfigFile, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFile, err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	envPath := filepath.Join(".", ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		env := fmt.Sprintf("# Used by `salesgen load`\n%s=sqlite://%s\n",
			cfg.Database.URLEnv, filepath.ToSlash(filepath.Join(cfg.Output.Dir, "fixtures.db")))
		if err := os.WriteFile(envPath, []byte(env), 0644); err != nil {
			return fmt.Errorf("failed to write .env: %w", err)
		}
	}

	return nil
}
