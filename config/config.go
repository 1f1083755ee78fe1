package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Legacy flat-file import location (searched only when the store is empty)
	LegacyDataDir string

	// Economy tunables
	DailyReward    int64
	SlotStake      int64
	GuessStake     int64
	GuessPrize     int64
	ProposalCost   int64
	MarriageBonus  int64
	DivorceCost    int64
	SpouseGiftCost int64

	// Relationship windows
	DivorceCooldown   time.Duration
	HoneymoonDuration time.Duration

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		LegacyDataDir: os.Getenv("LEGACY_DATA_DIR"),

		// Economy defaults
		DailyReward:    500,
		SlotStake:      50,
		GuessStake:     30,
		GuessPrize:     150,
		ProposalCost:   2000,
		MarriageBonus:  1000,
		DivorceCost:    5000,
		SpouseGiftCost: 100,

		DivorceCooldown:   7 * 24 * time.Hour,
		HoneymoonDuration: 7 * 24 * time.Hour,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if reward := os.Getenv("DAILY_REWARD"); reward != "" {
		if parsedReward, err := strconv.ParseInt(reward, 10, 64); err == nil {
			config.DailyReward = parsedReward
		}
	}

	if config.LegacyDataDir == "" {
		config.LegacyDataDir = "."
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
