package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	RedisPassword  string
	RabbitURL      string
	RabbitExchange string
	ConsulAddress  string
	ServiceName    string
	ServiceID      string
	ServiceAddress string
	BotURL         string
	AllowedOrigins string
}

func New() *Config {
	return &Config{
		Port:           getEnv("PORT", "6660"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDatabase:  getEnv("MONGO_DATABASE", "cardquest"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PWD", ""),
		RabbitURL:      getEnv("RABBITMQ_URI", ""),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		ConsulAddress:  getEnv("CONSUL_ADDR", ""),
		ServiceName:    getEnv("QUEST_SERVICE_NAME", "cardquest-service"),
		ServiceID:      getEnv("QUEST_SERVICE_NAME", "cardquest-service") + "-" + getEnv("QUEST_HOSTNAME", "1"),
		ServiceAddress: getEnv("QUEST_SERVICE_ADDRESS", "cardquest-service"),
		BotURL:         getEnv("BOT_URL", "https://t.me/cardquest_bot"),
		AllowedOrigins: getEnv("FE_ADDR", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if fallback == "" {
		log.Printf("ENV %s not set and has no default", key)
	}
	return fallback
}
