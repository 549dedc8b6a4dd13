package core

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host            string
		Port            int
		ShutdownTimeout time.Duration
	}

	GradingConfig struct {
		MinimumAttendance float64
		ExtraPointValue   float64
	}

	Config struct {
		Env            string // DEV (local; default), TEST, QA, PROD
		AppName        string
		Build          string
		Debug          bool
		TestMode       bool
		RollbarToken   string
		LoadSampleData bool
		Server         ServerConfig
		Grading        GradingConfig
	}
)

func (sc ServerConfig) Address() string {
	return net.JoinHostPort(sc.Host, strconv.Itoa(sc.Port))
}

// NewConfig reads the configuration from the environment, optionally seeded by
// `config/.env.<env>` under the project root.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "GradeCalc")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("loadSampleData", true)
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", 8080)
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("minimumAttendance", 80.0)
	v.SetDefault("extraPointValue", 1.0)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	if root, err := Getwd(); err == nil {
		dotEnvPath := filepath.Join(root, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
		}
	}
	v.AutomaticEnv()

	return &Config{
		Env:            env,
		AppName:        v.GetString("appName"),
		Build:          v.GetString("build"),
		Debug:          v.GetBool("debug"),
		TestMode:       v.GetBool("testMode"),
		RollbarToken:   v.GetString("rollbarToken"),
		LoadSampleData: v.GetBool("loadSampleData"),
		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			Port:            v.GetInt("serverPort"),
			ShutdownTimeout: v.GetDuration("serverShutdownTimeout"),
		},
		Grading: GradingConfig{
			MinimumAttendance: v.GetFloat64("minimumAttendance"),
			ExtraPointValue:   v.GetFloat64("extraPointValue"),
		},
	}, nil
}
