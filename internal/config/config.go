package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Ai      AIConfig
	Rag     RAGConfig
	Memory  MemoryConfig
	Weather WeatherConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	IndexTopicName     string
}

type AIConfig struct {
	LLMProvider       string // "groq" or "ollama"
	LLMModel          string // e.g. "llama3-8b-8192"
	LLMBaseURL        string
	LLMTimeout        time.Duration
	GroqAPIKey        string
	EmbeddingProvider string // "hash" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
}

type RAGConfig struct {
	VectorStore   string // "memory" or "chromem"
	DocumentsPath string
	ChunkSize     int
	TopK          int
}

type MemoryConfig struct {
	MaxMessages   int
	HistoryWindow int
	SessionTTL    time.Duration
}

type WeatherConfig struct {
	Provider string // "static" or "openweather"
	APIKey   string
	Timeout  time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			IndexTopicName:     getEnv("INDEX_TOPIC_NAME", "INDEX_DOCUMENT"),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
			LLMModel:          getEnv("LLM_MODEL", "llama3-8b-8192"),
			LLMBaseURL:        getEnv("LLM_BASE_URL", ""),
			LLMTimeout:        getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
			GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "hash"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		},
		Rag: RAGConfig{
			VectorStore:   getEnv("VECTOR_STORE", "memory"),
			DocumentsPath: getEnv("DOCUMENTS_PATH", "./documents"),
			ChunkSize:     getEnvAsInt("CHUNK_SIZE", 500),
			TopK:          getEnvAsInt("RAG_TOP_K", 3),
		},
		Memory: MemoryConfig{
			MaxMessages:   getEnvAsInt("MAX_MEMORY_MESSAGES", 10),
			HistoryWindow: getEnvAsInt("HISTORY_WINDOW", 6),
			SessionTTL:    getEnvAsDuration("SESSION_TTL", time.Hour),
		},
		Weather: WeatherConfig{
			Provider: getEnv("WEATHER_PROVIDER", "static"),
			APIKey:   getEnv("OPENWEATHER_API_KEY", ""),
			Timeout:  getEnvAsDuration("WEATHER_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
