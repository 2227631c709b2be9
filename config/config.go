package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Store struct {
		Backend string `yaml:"backend"` // "file" or "postgres"
		Path    string `yaml:"path"`    // file backend only
	} `yaml:"store"`
	Database struct {
		Host     string `yaml:"host"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		Port     string `yaml:"port"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
}

// GlobalConfig is the global configuration instance
var GlobalConfig Config

// DSN generates the PostgreSQL DSN from database config
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.Port,
		c.Database.SSLMode,
	)
}

// LoadConfig reads and parses the YAML configuration file into
// GlobalConfig, then applies environment overrides.
func LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, &GlobalConfig); err != nil {
		return err
	}

	// Environment overrides
	if v := os.Getenv("STORE_BACKEND"); v != "" {
		GlobalConfig.Store.Backend = v
	}
	if v := os.Getenv("STORE_PATH"); v != "" {
		GlobalConfig.Store.Path = v
	}

	// Validate required fields
	if GlobalConfig.Server.Port < 1 || GlobalConfig.Server.Port > 65535 {
		log.Fatal("server.port must be between 1 and 65535")
	}
	switch GlobalConfig.Store.Backend {
	case "file":
		if GlobalConfig.Store.Path == "" {
			log.Fatal("store.path is required for the file backend")
		}
	case "postgres":
		if GlobalConfig.Database.Host == "" {
			log.Fatal("database.host is required for the postgres backend")
		}
		if GlobalConfig.Database.User == "" {
			log.Fatal("database.user is required for the postgres backend")
		}
		if GlobalConfig.Database.DBName == "" {
			log.Fatal("database.dbname is required for the postgres backend")
		}
		if GlobalConfig.Database.Port == "" {
			log.Fatal("database.port is required for the postgres backend")
		}
		if GlobalConfig.Database.SSLMode == "" {
			log.Fatal("database.sslmode is required for the postgres backend")
		}
	default:
		log.Fatal("store.backend must be file or postgres")
	}

	return nil
}
