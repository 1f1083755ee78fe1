package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mingle/bot/features/calls"
	"mingle/bot/features/economy"
	"mingle/bot/features/fun"
	"mingle/bot/features/games"
	"mingle/bot/features/gifts"
	"mingle/bot/features/info"
	"mingle/bot/features/marriage"
	"mingle/bot/features/ships"
	"mingle/events"
	"mingle/service"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	eventBus *events.Bus

	callsFeature    *calls.Feature
	economyFeature  *economy.Feature
	gamesFeature    *games.Feature
	shipsFeature    *ships.Feature
	marriageFeature *marriage.Feature
	giftsFeature    *gifts.Feature
	funFeature      *fun.Feature
	infoFeature     *info.Feature
}

func New(config Config, economyService *service.EconomyService, relationshipService *service.RelationshipService, shipService *service.ShipService, callService *service.CallService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsAll

	bot := &Bot{
		config:          config,
		session:         dg,
		eventBus:        eventBus,
		callsFeature:    calls.New(callService),
		economyFeature:  economy.New(economyService),
		gamesFeature:    games.New(economyService),
		shipsFeature:    ships.New(shipService),
		marriageFeature: marriage.New(relationshipService),
		giftsFeature:    gifts.New(relationshipService),
		funFeature:      fun.New(),
		infoFeature:     info.New(),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleComponents)

	// Announcement embeds refresh when rosters change
	bot.callsFeature.SubscribeEvents(dg, eventBus)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "call":
		b.callsFeature.HandleCommand(s, i)
	case "daily", "balance", "transfer":
		b.economyFeature.HandleCommand(s, i)
	case "slot", "coinflip", "dice", "rps", "guess":
		b.gamesFeature.HandleCommand(s, i)
	case "ship", "zodiac":
		b.shipsFeature.HandleCommand(s, i)
	case "marry":
		b.marriageFeature.HandleCommand(s, i)
	case "gift":
		b.giftsFeature.HandleCommand(s, i)
	case "ping", "calc", "8ball", "joke", "advice", "fact", "pat", "kiss", "hug":
		b.funFeature.HandleCommand(s, i)
	case "userinfo", "serverinfo", "avatar", "help":
		b.infoFeature.HandleCommand(s, i)
	}
}

func (b *Bot) handleComponents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	if strings.HasPrefix(customID, calls.ConfirmButtonPrefix) {
		b.callsFeature.HandleComponent(s, i)
	}
}
