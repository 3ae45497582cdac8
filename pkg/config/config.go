package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/millworks/prodtrack/pkg/logutils"
)

type Config struct {
	// Port Settings
	ServerAddr string `yaml:"serverAddr"` // The address the server endpoint binds to.

	// DB Settings
	Postgres struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		DBName   string `yaml:"dbname"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslmode"`
		TimeZone string `yaml:"timeZone"`
	} `yaml:"postgres"`

	Cors struct {
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"cors"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads the configuration file. In debug mode it reads the local
// etc/debug-config.yaml (overridable via PRODTRACK_DEBUG_CONFIG_PATH),
// otherwise the deployed config file.
func initConfig() *Config {
	config := &Config{}
	var configPath string
	if IsDebugMode() {
		if os.Getenv("PRODTRACK_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("PRODTRACK_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		configPath = "/etc/prodtrack/config.yaml"
	}
	logutils.Log.Info("config path: ", configPath)

	if err := readConfig(configPath, config); err != nil {
		logutils.Log.Error("init config: ", err)
		panic(err)
	}
	return config
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}
