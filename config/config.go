package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	Port          string
	// Insurer aggregator external API settings
	ProviderBaseURL  string
	ProviderLogin    string
	ProviderPassword string
	ProviderPartner  string
	// Reference data files
	CountriesFile string
	RegionsFile   string
	// Development convenience: pre-fill traveler forms with sample values
	SeedTravelers bool
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		RedisAddr:        getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Port:             getenvOrDefault("PORT", "8080"),
		ProviderBaseURL:  getenvOrDefault("PROVIDER_BASE_URL", "https://api.insurer-aggregator.example"),
		ProviderLogin:    os.Getenv("PROVIDER_LOGIN"),
		ProviderPassword: os.Getenv("PROVIDER_PASSWORD"),
		ProviderPartner:  os.Getenv("PROVIDER_PARTNER_ID"),
		CountriesFile:    getenvOrDefault("COUNTRIES_FILE", "staticData/countries.json"),
		RegionsFile:      getenvOrDefault("REGIONS_FILE", "staticData/regions.json"),
		SeedTravelers:    os.Getenv("SEED_TRAVELERS") == "true",
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
