package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Drivers de almacenamiento soportados.
const (
	DriverJSONFile = "jsonfile"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LogConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Port         int `yaml:"port"`
	ReadTimeout  int `yaml:"read_timeout"`  // segundos
	WriteTimeout int `yaml:"write_timeout"` // segundos
	IdleTimeout  int `yaml:"idle_timeout"`  // segundos

	// Swagger monta /swagger/* (HTML). Apagado por defecto.
	Swagger bool `yaml:"swagger"`
}

// Addr devuelve la dirección de escucha (":7000").
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Second
}

type StorageConfig struct {
	Driver  string `yaml:"driver"`   // jsonfile | postgres | memory
	DataDir string `yaml:"data_dir"` // jsonfile
	DSN     string `yaml:"dsn"`      // postgres
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // json | text
	LogToFile   bool   `yaml:"log_to_file"`
	LogFilePath string `yaml:"log_file_path"`
	MaxSize     int    `yaml:"max_size"`    // megabytes
	MaxBackups  int    `yaml:"max_backups"`
	MaxAge      int    `yaml:"max_age"`     // días
	Compress    bool   `yaml:"compress"`
}

// Default devuelve la configuración por defecto.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         7000,
			ReadTimeout:  5,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Storage: StorageConfig{
			Driver:  DriverJSONFile,
			DataDir: "./dados",
		},
		Logging: LogConfig{
			Level:       "info",
			Format:      "json",
			LogToFile:   false,
			LogFilePath: "capivaras-api.log",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
			Compress:    true,
		},
	}
}

// Override ajusta la configuración después de env y antes de validar (flags de CLI).
type Override func(*Config)

// Load arma la configuración: defaults, luego el YAML (si path no está vacío),
// luego variables de entorno, luego overrides. Valida una sola vez al final.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.merge(fileCfg)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	for _, o := range overrides {
		if o != nil {
			o(cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge pisa solo los valores no-cero del archivo.
func (c *Config) merge(f Config) {
	if f.Server.Port > 0 {
		c.Server.Port = f.Server.Port
	}
	if f.Server.ReadTimeout > 0 {
		c.Server.ReadTimeout = f.Server.ReadTimeout
	}
	if f.Server.WriteTimeout > 0 {
		c.Server.WriteTimeout = f.Server.WriteTimeout
	}
	if f.Server.IdleTimeout > 0 {
		c.Server.IdleTimeout = f.Server.IdleTimeout
	}
	if f.Server.Swagger {
		c.Server.Swagger = true
	}

	if f.Storage.Driver != "" {
		c.Storage.Driver = f.Storage.Driver
	}
	if f.Storage.DataDir != "" {
		c.Storage.DataDir = f.Storage.DataDir
	}
	if f.Storage.DSN != "" {
		c.Storage.DSN = f.Storage.DSN
	}

	if f.Logging.Level != "" {
		c.Logging.Level = f.Logging.Level
	}
	if f.Logging.Format != "" {
		c.Logging.Format = f.Logging.Format
	}
	if f.Logging.LogToFile {
		c.Logging.LogToFile = true
	}
	if f.Logging.LogFilePath != "" {
		c.Logging.LogFilePath = f.Logging.LogFilePath
	}
	if f.Logging.MaxSize > 0 {
		c.Logging.MaxSize = f.Logging.MaxSize
	}
	if f.Logging.MaxBackups > 0 {
		c.Logging.MaxBackups = f.Logging.MaxBackups
	}
	if f.Logging.MaxAge > 0 {
		c.Logging.MaxAge = f.Logging.MaxAge
	}
	if f.Logging.Compress {
		c.Logging.Compress = true
	}
}

// applyEnv:
// - PORT, DATA_DIR, STORAGE_DRIVER, DB_DSN
// - SWAGGER_ENABLED=true|false
// - LOG_LEVEL=debug|info|warn|error, LOG_FORMAT=json|text
func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(strings.TrimPrefix(v, ":"))
		if err != nil {
			return fmt.Errorf("invalid PORT value: %q", v)
		}
		c.Server.Port = port
	}
	if v := strings.TrimSpace(os.Getenv("SWAGGER_ENABLED")); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SWAGGER_ENABLED value: %q", v)
		}
		c.Server.Swagger = on
	}
	if v := strings.TrimSpace(os.Getenv("DATA_DIR")); v != "" {
		c.Storage.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("STORAGE_DRIVER")); v != "" {
		c.Storage.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		c.Storage.DSN = v
		// DSN sin driver explícito => postgres
		if os.Getenv("STORAGE_DRIVER") == "" {
			c.Storage.Driver = DriverPostgres
		}
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		c.Logging.Format = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverJSONFile:
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("storage.data_dir is required for driver %q", DriverJSONFile)
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("storage.dsn is required for driver %q", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}
	return nil
}
