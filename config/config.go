package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string // dev|prod
	MongoURI  string
	MongoDB   string
	RedisAddr string

	JWTSecret        string
	JWTExpiry        time.Duration
	CookieExpireDays int

	FrontendURL string

	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPassword    string
	ContactReceiver string

	LogLevel string
}

var cfg *Config

// Load reads .env (if present) and the environment, applying defaults.
// Safe to call more than once; the first successful load wins.
func Load() *Config {
	if cfg != nil {
		return cfg
	}
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	expiry, err := time.ParseDuration(def(os.Getenv("JWT_EXPIRY"), "168h"))
	if err != nil {
		expiry = 168 * time.Hour
	}
	days, err := strconv.Atoi(def(os.Getenv("COOKIE_EXPIRE_DAYS"), "7"))
	if err != nil || days < 1 {
		days = 7
	}

	cfg = &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		Env:       strings.ToLower(def(os.Getenv("ENV"), "dev")),
		MongoURI:  def(os.Getenv("MONGODB_URI"), "mongodb://localhost:27017"),
		MongoDB:   def(os.Getenv("MONGODB_DB"), "foliodb"),
		RedisAddr: def(os.Getenv("REDIS_ADDR"), "localhost:6379"),

		JWTSecret:        def(os.Getenv("JWT_SECRET"), "change_this_secret"),
		JWTExpiry:        expiry,
		CookieExpireDays: days,

		FrontendURL: def(os.Getenv("FRONTEND_URL"), "http://localhost:5173"),

		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		ContactReceiver: os.Getenv("CONTACT_RECEIVER"),

		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
	}
	return cfg
}

// IsProd reports whether the server runs with production cookie/CORS settings.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
