package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16MB"

	defaultOTPLength     = 6
	defaultOTPExpiry     = 5 * time.Minute
	defaultOTPBcryptCost = 10
	defaultOTPLookback   = 5

	defaultSessionTTL = 30 * time.Minute

	defaultMinTrainingImages   = 5
	defaultFaceImageSize       = 200
	defaultConfidenceThreshold = 100.0
	defaultFaceBucketURL       = "mem://"
	defaultLockTTL             = 30 * time.Second
	defaultLockRetryInterval   = 100 * time.Millisecond
	defaultLockWaitTimeout     = 10 * time.Second

	defaultSMSQueue = "sms.dispatch"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker is the notifier's push endpoint listener
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	OTP *OTPConfig `json:"otp" yaml:"otp"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Face *FaceConfig `json:"face" yaml:"face"`

	// Redis backs the per-voter face lock and rate limiting; both degrade to in-process behaviour when nil
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// PubSub configuration for vote-cast events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for vote receipts
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Election *ElectionConfig `json:"election" yaml:"election"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// OTPConfig controls one-time code issuance
type OTPConfig struct {
	Length     int           `json:"length" yaml:"length"`
	Expiry     time.Duration `json:"expiry" yaml:"expiry"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	// Lookback caps how many unused codes are compared per validation
	Lookback int `json:"lookback" yaml:"lookback"`
}

// SessionConfig controls authentication sessions
type SessionConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// FaceConfig groups the enrollment, training and matching knobs
type FaceConfig struct {
	MinTrainingImages   int            `json:"minTrainingImages" yaml:"minTrainingImages"`
	ImageSize           int            `json:"imageSize" yaml:"imageSize"`
	ConfidenceThreshold float64        `json:"confidenceThreshold" yaml:"confidenceThreshold"`
	Detector            DetectorConfig `json:"detector" yaml:"detector"`
	Storage             FaceStorage    `json:"storage" yaml:"storage"`
	Lock                FaceLockConfig `json:"lock" yaml:"lock"`
}

// DetectorConfig tunes the pigo cascade
type DetectorConfig struct {
	CascadePath  string  `json:"cascadePath" yaml:"cascadePath"`
	MinSize      int     `json:"minSize" yaml:"minSize"`
	MaxSize      int     `json:"maxSize" yaml:"maxSize"`
	ShiftFactor  float64 `json:"shiftFactor" yaml:"shiftFactor"`
	ScaleFactor  float64 `json:"scaleFactor" yaml:"scaleFactor"`
	IoUThreshold float64 `json:"iouThreshold" yaml:"iouThreshold"`
	MinQuality   float64 `json:"minQuality" yaml:"minQuality"`
}

// FaceStorage points at the gocloud.dev bucket holding training crops and models
// (file:///var/lib/votegate/faces, gs://bucket, s3://bucket, mem://)
type FaceStorage struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// FaceLockConfig tunes the per-voter write lock
type FaceLockConfig struct {
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	RetryInterval time.Duration `json:"retryInterval" yaml:"retryInterval"`
	WaitTimeout   time.Duration `json:"waitTimeout" yaml:"waitTimeout"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	TLS      bool   `json:"tls" yaml:"tls"`
}

// RateLimitConfig defines the token bucket applied to authentication routes
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
	// KeyStrategy is one of ip, route, ip_route
	KeyStrategy string `json:"keyStrategy" yaml:"keyStrategy"`
}

// SMSConfig selects how one-time codes and receipts reach the voter's phone
type SMSConfig struct {
	// Provider: "log", "twilio" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	Twilio   *TwilioConfig   `json:"twilio" yaml:"twilio"`
	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`
}

// TwilioConfig holds Twilio REST credentials
type TwilioConfig struct {
	AccountSID string `json:"accountSid" yaml:"accountSid"`
	AuthToken  string `json:"authToken" yaml:"authToken"`
	FromNumber string `json:"fromNumber" yaml:"fromNumber"`
	BaseURL    string `json:"baseUrl" yaml:"baseUrl"`
}

// RabbitMQConfig holds the broker used to queue SMS jobs for the notifier
type RabbitMQConfig struct {
	URL   string `json:"url" yaml:"url"`
	Queue string `json:"queue" yaml:"queue"`
	// Prefetch bounds unacknowledged deliveries held by one notifier
	Prefetch int `json:"prefetch" yaml:"prefetch"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the notifier for development
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines receipt QR code generation
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ElectionConfig carries the candidate catalog seeded by cmd/migrate
type ElectionConfig struct {
	Candidates []CandidateSeed `json:"candidates" yaml:"candidates"`
}

// CandidateSeed is one catalog entry
type CandidateSeed struct {
	Name        string `json:"name" yaml:"name"`
	Party       string `json:"party" yaml:"party"`
	Description string `json:"description" yaml:"description"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// FACE_MINTRAININGIMAGES -> face.minTrainingImages
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml (after an optional .env) and fills defaults for optional sections.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills zero values with the documented policy defaults.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.OTP == nil {
		cfg.OTP = &OTPConfig{}
	}
	if cfg.OTP.Length <= 0 {
		cfg.OTP.Length = defaultOTPLength
	}
	if cfg.OTP.Expiry <= 0 {
		cfg.OTP.Expiry = defaultOTPExpiry
	}
	if cfg.OTP.BcryptCost <= 0 {
		cfg.OTP.BcryptCost = defaultOTPBcryptCost
	}
	if cfg.OTP.Lookback <= 0 {
		cfg.OTP.Lookback = defaultOTPLookback
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}

	if cfg.Face == nil {
		cfg.Face = &FaceConfig{}
	}
	if cfg.Face.MinTrainingImages <= 0 {
		cfg.Face.MinTrainingImages = defaultMinTrainingImages
	}
	if cfg.Face.ImageSize <= 0 {
		cfg.Face.ImageSize = defaultFaceImageSize
	}
	if cfg.Face.ConfidenceThreshold <= 0 {
		cfg.Face.ConfidenceThreshold = defaultConfidenceThreshold
	}
	if cfg.Face.Storage.BucketURL == "" {
		cfg.Face.Storage.BucketURL = defaultFaceBucketURL
	}
	if cfg.Face.Lock.TTL <= 0 {
		cfg.Face.Lock.TTL = defaultLockTTL
	}
	if cfg.Face.Lock.RetryInterval <= 0 {
		cfg.Face.Lock.RetryInterval = defaultLockRetryInterval
	}
	if cfg.Face.Lock.WaitTimeout <= 0 {
		cfg.Face.Lock.WaitTimeout = defaultLockWaitTimeout
	}

	if cfg.SMS != nil && cfg.SMS.RabbitMQ != nil && cfg.SMS.RabbitMQ.Queue == "" {
		cfg.SMS.RabbitMQ.Queue = defaultSMSQueue
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
