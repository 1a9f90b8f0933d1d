package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"khitma/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultCronSpec             = "*/5 * * * *"
	defaultTolerance            = 5 * time.Minute
	defaultLockTTL              = 5 * time.Minute
	defaultTimezoneConcurrency  = 4
	defaultUserConcurrency      = 8
	defaultVerseMaxPushDelay    = 30 * time.Second
	defaultReminderMaxPushDelay = 10 * time.Second
	defaultMaxDeliveryWait      = 60 * time.Second
	defaultPushRateLimit        = 50
	defaultPushBurst            = 100
	defaultWorkerPort           = 8081
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access verifies access tokens issued by the auth service
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for FCM push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Expo configuration for Expo push tokens
	Expo *ExpoConfig `json:"expo" yaml:"expo"`

	// Push delivery tuning shared by the gateways and the push worker
	Push *PushConfig `json:"push" yaml:"push"`

	// PubSub configuration for the push queue
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Scheduler configuration for the timezone-aware jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Dynamo configuration for the DynamoDB job lease backend
	Dynamo *DynamoConfig `json:"dynamo" yaml:"dynamo"`

	// Catalog configuration for the verse catalog importer
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// ExpoConfig defines the Expo push service client
type ExpoConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Host        string `json:"host" yaml:"host"`
	AccessToken string `json:"accessToken" yaml:"accessToken"`
}

// PushConfig defines push throughput and delivery limits
type PushConfig struct {
	// Messages per second sent to a provider
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`

	// Longest time the worker holds a job waiting for its DeliverAfter
	MaxDeliveryWait time.Duration `json:"maxDeliveryWait" yaml:"maxDeliveryWait"`

	// Port of the push worker's HTTP server
	WorkerPort int `json:"workerPort" yaml:"workerPort"`
}

// PubSubConfig defines Pub/Sub configuration for the push queue
type PubSubConfig struct {
	// Provider type: "" disables push, "inline" delivers in process,
	// "local" posts to a local worker and "google" publishes to Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SchedulerConfig defines the timezone-aware scheduler
type SchedulerConfig struct {
	// Cron expression evaluated in UTC for every job
	CronSpec string `json:"cronSpec" yaml:"cronSpec"`

	// Half-width of the window around each job's local target hour
	Tolerance time.Duration `json:"tolerance" yaml:"tolerance"`

	// Lease lifetime; a crashed run's lease is reclaimed after it expires
	LockTTL time.Duration `json:"lockTTL" yaml:"lockTTL"`

	// Lease backend: "postgres" or "dynamodb"
	LockBackend string `json:"lockBackend" yaml:"lockBackend"`

	// Timezone used when no device reported one
	DefaultTimezone string `json:"defaultTimezone" yaml:"defaultTimezone"`

	TimezoneConcurrency int `json:"timezoneConcurrency" yaml:"timezoneConcurrency"`
	UserConcurrency     int `json:"userConcurrency" yaml:"userConcurrency"`

	// Upper bound of the random push delay per job kind
	VerseMaxPushDelay    time.Duration `json:"verseMaxPushDelay" yaml:"verseMaxPushDelay"`
	ReminderMaxPushDelay time.Duration `json:"reminderMaxPushDelay" yaml:"reminderMaxPushDelay"`
}

// DynamoConfig defines the DynamoDB client used by the lease backend
type DynamoConfig struct {
	Region      string `json:"region" yaml:"region"`
	EndpointURL string `json:"endpointUrl" yaml:"endpointUrl"`
	AccessKeyID string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretKey   string `json:"secretKey" yaml:"secretKey"`
	LockTable   string `json:"lockTable" yaml:"lockTable"`
}

// CatalogConfig defines where the verse catalog is read from
type CatalogConfig struct {
	// Bucket URL, e.g. file:///var/data/catalog or gs://bucket
	Source string `json:"source" yaml:"source"`
	Key    string `json:"key" yaml:"key"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the YAML; SCHEDULER_LOCKTTL maps to scheduler.lockTTL.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.RateLimit <= 0 {
		cfg.Push.RateLimit = defaultPushRateLimit
	}
	if cfg.Push.Burst <= 0 {
		cfg.Push.Burst = defaultPushBurst
	}
	if cfg.Push.MaxDeliveryWait <= 0 {
		cfg.Push.MaxDeliveryWait = defaultMaxDeliveryWait
	}
	if cfg.Push.WorkerPort <= 0 {
		cfg.Push.WorkerPort = defaultWorkerPort
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
	s := cfg.Scheduler
	if s.CronSpec == "" {
		s.CronSpec = defaultCronSpec
	}
	if s.Tolerance <= 0 {
		s.Tolerance = defaultTolerance
	}
	if s.LockTTL <= 0 {
		s.LockTTL = defaultLockTTL
	}
	if s.LockBackend == "" {
		s.LockBackend = constants.LockBackendPostgres
	}
	if s.DefaultTimezone == "" {
		s.DefaultTimezone = constants.DefaultTimezone
	}
	if s.TimezoneConcurrency <= 0 {
		s.TimezoneConcurrency = defaultTimezoneConcurrency
	}
	if s.UserConcurrency <= 0 {
		s.UserConcurrency = defaultUserConcurrency
	}
	if s.VerseMaxPushDelay <= 0 {
		s.VerseMaxPushDelay = defaultVerseMaxPushDelay
	}
	if s.ReminderMaxPushDelay <= 0 {
		s.ReminderMaxPushDelay = defaultReminderMaxPushDelay
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
