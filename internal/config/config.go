package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Backend struct {
	BaseURL string
	Timeout time.Duration
}

type Poll struct {
	Interval time.Duration
}

type UI struct {
	PreviewTTL      time.Duration
	ToastTTL        time.Duration
	ProductToastTTL time.Duration
	NotifyMax       int
	Lang            string
	WebDir          string
}

type Storage struct {
	Driver string
	Path   string
	Schema string
	Table  string
}

type Kafka struct {
	Brokers []string
	Topic   string
	Group   string
	Workers int
}

type Telegram struct {
	Token  string
	ChatID int64
}

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Cache struct {
	Cap int
	TTL time.Duration
}

type Config struct {
	HTTPAddr    string
	LogEnv      string
	MetricsKeep int

	Backend  Backend
	Poll     Poll
	UI       UI
	Storage  Storage
	Cache    Cache
	Pg       Postgres
	Kafka    Kafka
	Telegram Telegram
	Breaker  Breaker
	Retry    Retry
}

// Load keeps the original API and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

// LoadNotifier is Load for the notifier binary: Kafka and Telegram become mandatory.
func LoadNotifier() Config {
	cfg, err := load()
	if err == nil {
		err = cfg.validateNotifier()
	}
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")
	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:    envDefault("HTTP_ADDR", ":8081"),
		LogEnv:      envDefault("LOG_ENV", "development"),
		MetricsKeep: envInt("METRICS_KEEP", 500),

		Backend: Backend{
			BaseURL: strings.TrimRight(envDefault("BACKEND_URL", "http://localhost:8080"), "/"),
			Timeout: envDurationMS("BACKEND_TIMEOUT", 5*time.Second),
		},

		Poll: Poll{
			Interval: envDurationMS("POLL_INTERVAL", 10*time.Second),
		},

		UI: UI{
			PreviewTTL:      envDurationMS("PREVIEW_TTL", 6*time.Second),
			ToastTTL:        envDurationMS("TOAST_TTL", 6*time.Second),
			ProductToastTTL: envDurationMS("PRODUCT_TOAST_TTL", 5*time.Second),
			NotifyMax:       envInt("NOTIFY_MAX", 100),
			Lang:            envDefault("UI_LANG", "en"),
			WebDir:          envDefault("WEB_DIR", "web"),
		},

		Storage: Storage{
			Driver: strings.ToLower(envDefault("STORAGE_DRIVER", DriverFile)),
			Path:   strings.TrimSpace(os.Getenv("STORAGE_PATH")),
			Schema: envDefault("DB_SCHEMA", "public"),
			Table:  envDefault("TBL_STORAGE", "admin_local_storage"),
		},

		Cache: Cache{
			Cap: envInt("CACHE_CAP", 64),
			TTL: envDurationMS("CACHE_TTL", 30*time.Second),
		},

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     strings.TrimSpace(envDefault("PG_PORT", "5432")),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  strings.TrimSpace(envDefault("PG_SSLMODE", "disable")),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   envDefault("KAFKA_TOPIC", "bakeflow.notifications"),
			Group:   envDefault("KAFKA_GROUP", "bakeflow-notifier"),
			Workers: envInt("KAFKA_WORKERS", 4),
		},

		Telegram: Telegram{
			Token:  strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
			ChatID: envInt64("TELEGRAM_CHAT_ID", 0),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 2),
			Base:         envDurationMS("RETRY_BASE", 200*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 2*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	if cfg.Storage.Path == "" {
		switch cfg.Storage.Driver {
		case DriverSQLite:
			cfg.Storage.Path = "data/admin.db"
		default:
			cfg.Storage.Path = "data/local_storage.json"
		}
	}

	// Validate required envs and basic sanity.
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	req := map[string]string{
		"BACKEND_URL": c.Backend.BaseURL,
	}
	switch c.Storage.Driver {
	case DriverMemory, DriverFile, DriverSQLite:
	case DriverPostgres:
		req["PG_HOST"] = c.Pg.Host
		req["PG_DB"] = c.Pg.DB
		req["PG_USER"] = c.Pg.User
		req["PG_PASSWORD"] = c.Pg.Password
	default:
		return &invalidEnvError{Key: "STORAGE_DRIVER", Value: c.Storage.Driver}
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return &invalidEnvError{Key: "BACKEND_URL", Value: c.Backend.BaseURL}
	}

	if c.Poll.Interval <= 0 {
		log.Printf("POLL_INTERVAL is %v, adjusting to 10s", c.Poll.Interval)
		c.Poll.Interval = 10 * time.Second
	}
	if c.Cache.Cap <= 0 {
		log.Printf("CACHE_CAP is %d, adjusting to 1", c.Cache.Cap)
		c.Cache.Cap = 1
	}
	if c.Retry.Attempts < 1 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	if c.Kafka.Workers < 1 {
		c.Kafka.Workers = 1
	}
	return nil
}

func (c Config) validateNotifier() error {
	var missing []string
	if len(c.Kafka.Brokers) == 0 {
		missing = append(missing, "KAFKA_BROKERS")
	}
	if c.Telegram.Token == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.Telegram.ChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}
	return nil
}

// KafkaEnabled reports whether new-order batches should be published.
func (c Config) KafkaEnabled() bool { return len(c.Kafka.Brokers) > 0 }

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

type invalidEnvError struct{ Key, Value string }

func (e *invalidEnvError) Error() string {
	return "invalid env " + e.Key + "=" + strconv.Quote(e.Value)
}

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envInt64(k string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
