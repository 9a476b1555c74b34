package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                          string   `mapstructure:"PORT"`
	DatabasePath                  string   `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string   `mapstructure:"JWT_SECRET"`
	FrontendURL                   string   `mapstructure:"FRONTEND_URL"`
	EnableCORS                    bool     `mapstructure:"ENABLE_CORS"`
	AdminUsername                 string   `mapstructure:"ADMIN_USERNAME"`
	SeedUsers                     []string `mapstructure:"SEED_USERS"`
	LoginRatePerMinute            int      `mapstructure:"LOGIN_RATE_PER_MINUTE"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	AssetBaseURL                  string   `mapstructure:"ASSET_BASE_URL"`
	DefaultBrand                  string   `mapstructure:"DEFAULT_BRAND"`
	PageSize                      int      `mapstructure:"PAGE_SIZE"`
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment")
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "itinerary.db")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:5173")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	viper.SetDefault("ASSET_BASE_URL", "http://127.0.0.1:8080/assets")
	viper.SetDefault("DEFAULT_BRAND", "enroute")
	viper.SetDefault("PAGE_SIZE", 10)

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("ENABLE_CORS")
	viper.BindEnv("SEED_USERS")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if config.JWTSecret == "" {
		log.Println("JWT_SECRET is not set; tokens will be signed with an empty key")
	}

	return &config
}
