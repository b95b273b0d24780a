package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"mywhiskies"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port          int    `default:"8080"`
	BaseURL       string `default:"http://localhost:8080"`
	SecureCookies bool
}

type Auth struct {
	SecretKey       string        `validate:"required"`
	SessionLifetime time.Duration `default:"720h"`
	TokenLifetime   time.Duration `default:"1h"`
}

type Images struct {
	Driver    string        `default:"s3"`
	Bucket    string
	Prefix    string        `default:"bottle-images"`
	Region    string        `default:"us-east-1"`
	Endpoint  string
	Directory string        `default:"./data/images"`
	BaseURL   string
	MaxWidth  int           `default:"1400"`
	Format    string        `default:"jpeg"`
	Quality   int           `default:"90"`
	Timeout   time.Duration `default:"30s"`
}

type Mail struct {
	Enabled  bool
	Host     string `default:"localhost"`
	Port     int    `default:"587"`
	Username string
	Password string
	From     string `default:"noreply@mywhiskies.local"`
}

type Integrations struct {
	Distillery        string `default:"whisky_web"`
	DistilleryBaseURL string `default:"https://www.whiskydirectory.com"`
}

type Config struct {
	DB           DB
	Server       Server
	Auth         Auth
	Images       Images
	Mail         Mail
	Integrations Integrations
}

const envPrefix = "MYWHISKIES" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.Images.check(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (i Images) check() error {
	switch i.Driver {
	case "s3":
		if i.Bucket == "" {
			return fmt.Errorf("%w: Images.Bucket is required for the s3 driver", ErrConfiguration)
		}
	case "local", "memory":
	default:
		return fmt.Errorf("%w: Images.Driver must be one of s3, local, memory", ErrConfiguration)
	}

	switch i.Format {
	case "jpeg", "png":
	default:
		return fmt.Errorf("%w: Images.Format must be jpeg or png", ErrConfiguration)
	}

	return nil
}

// Extension is the file extension used for stored images.
func (i Images) Extension() string {
	if i.Format == "png" {
		return "png"
	}

	return "jpg"
}
