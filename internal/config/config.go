package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultFeedURL = "https://docs.google.com/spreadsheets/d/1_gcqOi63S_9ghqJtChS6LsBFJxU0tYjsw8UaMTQMTQM/export?format=csv"

type Options struct {
	runAddr        string
	logLevel       string
	feedURL        string
	feedTimeout    time.Duration
	cacheTTL       time.Duration
	telegramToken  string
	telegramChatID string
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments
// and stores their values in the corresponding variables.
func (o *Options) ParseFlags() {
	// Load environment variables from the .env file
	loadEnvFile()

	// Override variable values with values from command line flags
	regStringVar(&o.runAddr, "a", getEnvOrDefault("RUN_ADDRESS", ":8080"), "address and port to run server")
	regStringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "debug"), "log level")
	regStringVar(&o.feedURL, "f", getEnvOrDefault("FEED_URL", defaultFeedURL), "product feed export url")
	regDurationVar(&o.feedTimeout, "t", getEnvDurationOrDefault("FEED_TIMEOUT", 10*time.Second), "feed fetch timeout")
	regDurationVar(&o.cacheTTL, "c", getEnvDurationOrDefault("CACHE_TTL", 5*time.Minute), "catalog cache freshness window")
	regStringVar(&o.telegramToken, "tg-token", getEnvOrDefault("TELEGRAM_BOT_TOKEN", ""), "telegram bot token for order notifications")
	regStringVar(&o.telegramChatID, "tg-chat", getEnvOrDefault("TELEGRAM_CHAT_ID", ""), "telegram chat id for order notifications")

	// parse the arguments passed to the server into registered variables
	flag.Parse()
}

func (o *Options) RunAddr() string {
	return o.runAddr
}

func (o *Options) LogLevel() string {
	return o.logLevel
}

func (o *Options) FeedURL() string {
	return o.feedURL
}

func (o *Options) FeedTimeout() time.Duration {
	return o.feedTimeout
}

func (o *Options) CacheTTL() time.Duration {
	return o.cacheTTL
}

func (o *Options) TelegramToken() string {
	return o.telegramToken
}

func (o *Options) TelegramChatID() string {
	return o.telegramChatID
}

func regStringVar(p *string, name string, value string, usage string) {
	flag.StringVar(p, name, value, usage)
}

func regDurationVar(p *time.Duration, name string, value time.Duration, usage string) {
	flag.DurationVar(p, name, value, usage)
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvDurationOrDefault reads a duration environment variable ("5m", "10s"),
// falling back to the default on absence or parse failure.
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid duration in %s: %v, using default %s", key, err, defaultValue)
		return defaultValue
	}
	return d
}

// loadEnvFile loads environment variables from a .env file
func loadEnvFile() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, proceeding without it")
	}
}
