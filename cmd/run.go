package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"mingle/bot"
	"mingle/config"
	"mingle/database"
	"mingle/events"
	"mingle/repository"
	"mingle/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting mingle bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Load the ledger from storage
	log.Println("Loading ledger...")
	store := repository.NewStore(db, cfg.LegacyDataDir)
	ledger, err := service.NewLedger(ctx, store, eventBus)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	// Initialize services
	economyService := service.NewEconomyService(ledger)
	relationshipService := service.NewRelationshipService(ledger)
	shipService := service.NewShipService(ledger)
	callService := service.NewCallService(ledger)
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}
	discordBot, err := bot.New(botConfig, economyService, relationshipService, shipService, callService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	// Close Discord bot connection
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
