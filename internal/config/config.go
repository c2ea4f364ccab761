package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	S3       S3Config
	Session  SessionConfig
	Encoder  EncoderConfig
	NATS     NATSConfig
	Database DatabaseConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// S3Config carries everything the storage gateway needs. Credentials and
// bucket are never read from ambient globals, only from here.
type S3Config struct {
	Region         string `envconfig:"S3_REGION" default:"us-east-1"`
	Endpoint       string `envconfig:"S3_ENDPOINT" required:"true"`
	AccessKey      string `envconfig:"S3_ACCESS_KEY" required:"true"`
	SecretKey      string `envconfig:"S3_SECRET_KEY" required:"true"`
	Bucket         string `envconfig:"S3_BUCKET" required:"true"`
	ForcePathStyle bool   `envconfig:"S3_FORCE_PATH_STYLE" default:"true"`
	UseSSL         bool   `envconfig:"S3_USE_SSL" default:"false"`
	// PublicBaseURL overrides the base used when building durable object
	// URLs. Empty means derive it from the endpoint and SSL flag.
	PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL" default:""`
}

type SessionConfig struct {
	MaxUploadSize int64         `envconfig:"SESSION_MAX_UPLOAD_SIZE" default:"536870912"` // 512MB, stems archives are large
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	CleanupEvery  time.Duration `envconfig:"SESSION_CLEANUP_EVERY" default:"15m"`
}

type EncoderConfig struct {
	Binary      string `envconfig:"ENCODER_BINARY" default:"ffmpeg"`
	BitrateKbps int    `envconfig:"ENCODER_BITRATE_KBPS" default:"320"`
	WorkDir     string `envconfig:"ENCODER_WORK_DIR" default:""`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"TRANSCODE"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"transcoder"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"transcode.requested"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" default:"transcoders"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
