package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// Config holds all runtime settings. It is built once by NewConfig at
	// startup and passed down to whoever needs it.
	Config struct {
		AppName string
		Env     string // DEV (default), TEST, QA, PROD
		Debug   bool
		Build   string

		SecretKey    string
		RollbarToken string

		Server struct {
			Host               string
			DebugHost          string
			ShutdownTimeout    time.Duration
			JWTExpirationDelta time.Duration
		}

		Dashboard struct {
			// DueSoonWindowDays is the number of days ahead of today (inclusive)
			// within which an open order is flagged as due soon.
			DueSoonWindowDays int
		}

		// AccessDirectory is the static credential directory consumed by the
		// access gate. Mutating it after startup has no effect.
		AccessDirectory []Credential
	}

	// Credential is one raw access directory entry as found in configuration.
	// PasswordHash is a bcrypt hash; Password is a DEV convenience that gets
	// hashed at load time and must stay empty in real deployments.
	Credential struct {
		Username     string `mapstructure:"username"`
		Password     string `mapstructure:"password"`
		PasswordHash string `mapstructure:"password_hash"`
		Expires      string `mapstructure:"expires"` // YYYY-MM-DD
	}
)

// defaultAccessDirectory reproduces the two historical entries; real
// deployments override it (with password_hash) via configuration.
var defaultAccessDirectory = []map[string]interface{}{
	{"username": "admin", "password": "1234", "expires": "2025-12-31"},
	{"username": "usuario1", "password": "abcd", "expires": "2025-11-30"},
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Prioriza")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "k#2p$7vq)wz&+h5n8(x4c!uoy0m^sd1e9gj*r6tbfa3l")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("serverHost", ":8000")
	v.SetDefault("serverDebugHost", ":4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("dueSoonWindowDays", 2)
	v.SetDefault("accessDirectory", defaultAccessDirectory)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		Build:        v.GetString("build"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.DebugHost = v.GetString("serverDebugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
	conf.Dashboard.DueSoonWindowDays = v.GetInt("dueSoonWindowDays")
	if err := v.UnmarshalKey("accessDirectory", &conf.AccessDirectory); err != nil {
		log.Fatalf("config.UnmarshalKey(accessDirectory): %v", err)
	}
	return conf
}
