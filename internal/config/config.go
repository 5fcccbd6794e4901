package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Mail     MailConfig     `mapstructure:"mail"`
	Notifier NotifierConfig `mapstructure:"notifier"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// MailConfig holds SMTP settings for outbound email.
type MailConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	From        string        `mapstructure:"from"`
	SendTimeout time.Duration `mapstructure:"send_timeout"`
}

// NotifierConfig controls the Zumba session reminder loop.
// Timezone must be an IANA zone name; all tick arithmetic happens in that
// zone so minute boundaries stay stable across host-locale differences.
type NotifierConfig struct {
	Timezone           string        `mapstructure:"timezone"`
	PollSpec           string        `mapstructure:"poll_spec"`
	Lookahead          time.Duration `mapstructure:"lookahead"`
	DefaultLeadMinutes int           `mapstructure:"default_lead_minutes"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override file values,
	// e.g. mail.host -> MAIL_HOST, notifier.timezone -> NOTIFIER_TIMEZONE.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fittrack")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("mail.port", 587)
	viper.SetDefault("mail.send_timeout", "15s")
	viper.SetDefault("notifier.timezone", "Asia/Kolkata")
	viper.SetDefault("notifier.poll_spec", "@every 1m")
	viper.SetDefault("notifier.lookahead", "6h")
	viper.SetDefault("notifier.default_lead_minutes", 60)

	err = viper.ReadInConfig()
	// The config file is optional; env vars plus defaults may be enough.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
