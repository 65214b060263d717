package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

var gitSHA string
var buildDate string

const prefix = "YTDLP_DIRECT_"

// Config is read once at startup and never modified afterwards.
type Config struct {
	Port             string
	SessionAuthKey   []byte
	SessionKeySource string // "env" or "generated"
	Secure           bool
	YtdlpPath        string
	CookiesFile      string
	ExtractTimeout   time.Duration
	RateLimit        float64 // requests per second per client, 0 disables
	RateBurst        int
	VocabularyPath   string
	LogLevel         logrus.Level
}

func Load() (Config, error) {
	cfg := Config{
		Port:           GetPort(),
		Secure:         GetSecure(),
		YtdlpPath:      GetYtdlpPath(),
		CookiesFile:    os.Getenv(prefix + "COOKIES_FILE"),
		VocabularyPath: os.Getenv(prefix + "ERROR_VOCABULARY"),
	}

	var err error
	if cfg.SessionAuthKey, err = GetSessionAuthKey(); err == nil {
		cfg.SessionKeySource = "env"
	} else {
		// sessions only carry flash messages, so losing them on restart is tolerable
		cfg.SessionAuthKey = securecookie.GenerateRandomKey(32)
		if cfg.SessionAuthKey == nil {
			return Config{}, fmt.Errorf("couldn't generate a session key")
		}
		cfg.SessionKeySource = "generated"
	}

	if cfg.ExtractTimeout, err = GetExtractTimeout(); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = GetRateLimit(); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = GetRateBurst(); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = GetLogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func GetPort() string {
	value, exists := os.LookupEnv("PORT")
	if exists && value != "" {
		return value
	}
	return "5000"
}

func GetSessionAuthKey() ([]byte, error) {
	key := prefix + "SESSION_AUTH_KEY"
	value, exists := os.LookupEnv(key)
	if exists && value != "" {
		return []byte(value), nil
	}
	return []byte{}, fmt.Errorf("please set %s", key)
}

func GetSecure() bool {
	key := prefix + "SECURE"
	if value, exists := os.LookupEnv(key); exists {
		lower := strings.ToLower(value)
		if lower == "on" || lower == "1" || lower == "true" || lower == "yes" {
			return true
		}
	}
	return false
}

func GetYtdlpPath() string {
	value, exists := os.LookupEnv(prefix + "YTDLP_PATH")
	if exists && value != "" {
		return value
	}
	return "yt-dlp"
}

func GetExtractTimeout() (time.Duration, error) {
	key := prefix + "EXTRACT_TIMEOUT"
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return 60 * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return d, nil
}

func GetRateLimit() (float64, error) {
	key := prefix + "RATE_LIMIT"
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return 1, nil
	}
	r, err := strconv.ParseFloat(value, 64)
	if err != nil || r < 0 {
		return 0, fmt.Errorf("%s: invalid rate %q", key, value)
	}
	return r, nil
}

func GetRateBurst() (int, error) {
	key := prefix + "RATE_BURST"
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return 5, nil
	}
	b, err := strconv.Atoi(value)
	if err != nil || b < 1 {
		return 0, fmt.Errorf("%s: invalid burst %q", key, value)
	}
	return b, nil
}

func GetLogLevel() (logrus.Level, error) {
	key := prefix + "LOG_LEVEL"
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}

func GetGitSHA() string {
	if gitSHA == "" {
		return "<not provided>"
	} else {
		return gitSHA
	}
}

func GetBuildDate() string {
	if buildDate == "" {
		return "<not provided>"
	} else {
		return buildDate
	}
}
