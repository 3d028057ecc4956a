package config

import (
	"os"
	"strconv"
)

type Config struct {
	ListenAddr string

	MongoURI string
	MongoDB  string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	// PresignExpiryMinutes is the default lifetime of presigned image URLs.
	PresignExpiryMinutes int

	LogLevel string
	LogFile  string
}

func Load() *Config {
	return &Config{
		ListenAddr:           getEnv("LISTEN_ADDR", ":8080"),
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:              getEnv("MONGO_DB", "sri-karthikeya-caterers"),
		S3Endpoint:           getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:          getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:          getEnv("S3_SECRET_KEY", ""),
		S3Bucket:             getEnv("S3_BUCKET", "caterers"),
		S3UseSSL:             getBoolEnv("S3_USE_SSL", false),
		PresignExpiryMinutes: getIntEnv("PRESIGN_EXPIRY_MINUTES", 60),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFile:              getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getIntEnv(key string, defaultVal int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
