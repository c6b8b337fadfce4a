package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"ordertracker/internal/adapters/out/twilio"
	"ordertracker/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort    string
	StoreDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MongoURI      string
	MongoDatabase string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioChannel    twilio.Channel
	OperatorAddress  string

	SweepSchedule string
	SweepLocation *time.Location

	LogLevel string
	LogFile  string
}

// LoadConfig reads envFile into the process environment when it exists and
// then resolves every setting from the environment, falling back to defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "3000")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "ordertracker")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "ordertracker")
	v.SetDefault("TWILIO_CHANNEL", string(twilio.ChannelWhatsApp))
	v.SetDefault("SWEEP_SCHEDULE", jobs.DefaultDailySummarySchedule)
	v.SetDefault("SWEEP_TIMEZONE", "UTC")
	v.SetDefault("LOG_LEVEL", "info")

	driver := strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER")))
	switch driver {
	case StoreDriverPostgres, StoreDriverMongo, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", driver)
	}

	channel, err := twilio.ParseChannel(v.GetString("TWILIO_CHANNEL"))
	if err != nil {
		return Config{}, fmt.Errorf("TWILIO_CHANNEL: %w", err)
	}

	operator := strings.TrimSpace(v.GetString("OPERATOR_ADDRESS"))
	if operator == "" {
		return Config{}, errors.New("OPERATOR_ADDRESS is required")
	}

	location, err := time.LoadLocation(v.GetString("SWEEP_TIMEZONE"))
	if err != nil {
		return Config{}, fmt.Errorf("SWEEP_TIMEZONE: %w", err)
	}

	return Config{
		HTTPPort:         v.GetString("HTTP_PORT"),
		StoreDriver:      driver,
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSslMode:        v.GetString("DB_SSLMODE"),
		MongoURI:         v.GetString("MONGO_URI"),
		MongoDatabase:    v.GetString("MONGO_DATABASE"),
		TwilioAccountSID: v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  v.GetString("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       v.GetString("TWILIO_FROM"),
		TwilioChannel:    channel,
		OperatorAddress:  operator,
		SweepSchedule:    v.GetString("SWEEP_SCHEDULE"),
		SweepLocation:    location,
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFile:          v.GetString("LOG_FILE"),
	}, nil
}
