package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Storage      StorageConfig
	Admin        AdminConfig
	Notification NotificationConfig
	Log          LogConfig
}

type ServerConfig struct {
	Port int
}

type StorageConfig struct {
	DataDir    string
	UsersFile  string
	OrdersFile string
	BackupFile string
}

type AdminConfig struct {
	// Key gates the admin listing endpoints. Empty disables them entirely.
	Key string
}

type NotificationConfig struct {
	// Endpoint is the Formspree form URL. Empty disables notifications.
	Endpoint string
	Timeout  time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("DATA_DIR", ".")
	viper.SetDefault("USERS_FILE", "users.json")
	viper.SetDefault("ORDERS_FILE", "orders.json")
	viper.SetDefault("ORDERS_BACKUP_FILE", "orders.txt")
	viper.SetDefault("ADMIN_KEY", "")
	viper.SetDefault("FORMSPREE_ENDPOINT", "")
	viper.SetDefault("NOTIFY_TIMEOUT", "10s")
	viper.SetDefault("LOG_LEVEL", "info")

	notifyTimeout, err := time.ParseDuration(viper.GetString("NOTIFY_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("PORT"),
		},
		Storage: StorageConfig{
			DataDir:    viper.GetString("DATA_DIR"),
			UsersFile:  viper.GetString("USERS_FILE"),
			OrdersFile: viper.GetString("ORDERS_FILE"),
			BackupFile: viper.GetString("ORDERS_BACKUP_FILE"),
		},
		Admin: AdminConfig{
			Key: viper.GetString("ADMIN_KEY"),
		},
		Notification: NotificationConfig{
			Endpoint: viper.GetString("FORMSPREE_ENDPOINT"),
			Timeout:  notifyTimeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

// UsersPath resolves the credential document path against the data directory.
func (c StorageConfig) UsersPath() string {
	return filepath.Join(c.DataDir, c.UsersFile)
}

func (c StorageConfig) OrdersPath() string {
	return filepath.Join(c.DataDir, c.OrdersFile)
}

func (c StorageConfig) BackupPath() string {
	return filepath.Join(c.DataDir, c.BackupFile)
}
