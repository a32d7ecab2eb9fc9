package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Data    DataConfig
	Columns ColumnsConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type AuthConfig struct {
	// APIKey guards /enrich via the X-API-Key header. Empty disables
	// the check (dev mode).
	APIKey string
}

type DataConfig struct {
	ZonesDir               string
	FreguesiasGzPath       string
	FreguesiasUnzippedPath string
}

// ColumnsConfig names the input columns the enrichment reads. Callers
// may still override them per request via form fields.
type ColumnsConfig struct {
	AssetName string
	Lat       string
	Long      string
	Sector    string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Auth: AuthConfig{
			APIKey: viper.GetString("API_KEY"),
		},
		Data: DataConfig{
			ZonesDir:               viper.GetString("ZONES_DIR"),
			FreguesiasGzPath:       viper.GetString("FREGUESIAS_GZ_PATH"),
			FreguesiasUnzippedPath: viper.GetString("FREGUESIAS_UNZIPPED_PATH"),
		},
		Columns: ColumnsConfig{
			AssetName: viper.GetString("ASSET_NAME_COL"),
			Lat:       viper.GetString("LAT_COL"),
			Long:      viper.GetString("LONG_COL"),
			Sector:    viper.GetString("SECTOR_COL"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	dataDir := viper.GetString("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if cfg.Data.ZonesDir == "" {
		cfg.Data.ZonesDir = filepath.Join(dataDir, "zones")
	}
	if cfg.Data.FreguesiasGzPath == "" {
		cfg.Data.FreguesiasGzPath = filepath.Join(dataDir, "Freguesias.kml.gz")
	}
	if cfg.Data.FreguesiasUnzippedPath == "" {
		cfg.Data.FreguesiasUnzippedPath = filepath.Join(os.TempDir(), "Freguesias.kml")
	}

	if cfg.Columns.AssetName == "" {
		cfg.Columns.AssetName = "[Asset Name]"
	}
	if cfg.Columns.Lat == "" {
		cfg.Columns.Lat = "[Lat]"
	}
	if cfg.Columns.Long == "" {
		cfg.Columns.Long = "[Long]"
	}
	if cfg.Columns.Sector == "" {
		cfg.Columns.Sector = "[Sector]"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
