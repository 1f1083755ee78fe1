package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	userOpt := func(name, description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        name,
			Description: description,
			Required:    required,
		}
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "call",
			Description: "Organize attendance calls",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Announce a new call in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "title",
							Description: "What the call is about",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "schedule",
							Description: "When it happens",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "location",
							Description: "Where it happens",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "Extra details",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "emoji",
							Description: "Emoji shown on the confirm button",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "info",
					Description: "Show details of a call, or recent calls in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message_id",
							Description: "Announcement message ID",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster",
					Description: "List everyone confirmed for a call",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message_id",
							Description: "Announcement message ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Cancel a call you created",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message_id",
							Description: "Announcement message ID",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "ship",
			Description: "Ship people and see how compatible they are",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "match",
					Description: "Calculate compatibility between two people",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("person1", "First person", true),
						userOpt("person2", "Second person", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Register a ship between two people",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("person1", "First person", true),
						userOpt("person2", "Second person", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "like",
					Description: "Like an existing ship",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("person1", "First person", true),
						userOpt("person2", "Second person", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "info",
					Description: "Show details of a ship",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("person1", "First person", true),
						userOpt("person2", "Second person", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "mine",
					Description: "List ships you created",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "top",
					Description: "Show the most liked ships",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List all registered ships",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "analyze",
					Description: "Run a full relationship analysis on a couple",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("person1", "First person", true),
						userOpt("person2", "Second person", true),
					},
				},
			},
		},
		{
			Name:        "zodiac",
			Description: "Compatibility between two zodiac signs",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "sign1",
					Description: "First sign",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "sign2",
					Description: "Second sign",
					Required:    true,
				},
			},
		},
		{
			Name:        "marry",
			Description: "Marriage life",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "propose",
					Description: "Propose to someone (costs 2,000 coins)",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("user", "Who to propose to", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "accept",
					Description: "Accept a proposal",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("user", "Who proposed to you", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "decline",
					Description: "Decline a proposal",
					Options: []*discordgo.ApplicationCommandOption{
						userOpt("user", "Who proposed to you", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "divorce",
					Description: "End your marriage (costs 5,000 coins)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show your marriage status",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "gift",
					Description: "Send your spouse a gift (costs 100 coins)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "gift",
							Description: "What to give",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "anniversary",
					Description: "Celebrate your wedding anniversary",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "honeymoon",
					Description: "Check your honeymoon status",
				},
			},
		},
		{
			Name:        "gift",
			Description: "The gift shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "shop",
					Description: "Browse the gift catalog",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "buy",
					Description: "Buy a gift for someone",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "gift",
							Description: "Gift name from the shop",
							Required:    true,
						},
						userOpt("user", "Who receives it", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "inventory",
					Description: "Show the gifts you have received",
				},
			},
		},
		{
			Name:        "daily",
			Description: "Claim your daily 500 coins",
		},
		{
			Name:        "balance",
			Description: "Check a balance",
			Options: []*discordgo.ApplicationCommandOption{
				userOpt("user", "Whose balance (defaults to yours)", false),
			},
		},
		{
			Name:        "transfer",
			Description: "Send coins to another member",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "How many coins",
					Required:    true,
				},
				userOpt("user", "Who receives them", true),
			},
		},
		{
			Name:        "slot",
			Description: "Spin the slot machine (50 coins a spin)",
		},
		{
			Name:        "coinflip",
			Description: "Bet on a coin flip",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "Heads or tails",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Heads", Value: "heads"},
						{Name: "Tails", Value: "tails"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "stake",
					Description: "How many coins to bet",
					Required:    true,
				},
			},
		},
		{
			Name:        "dice",
			Description: "Roll a die",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "sides",
					Description: "Number of sides (default 6)",
					Required:    false,
				},
			},
		},
		{
			Name:        "rps",
			Description: "Rock, paper, scissors against the bot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "Your hand",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Rock", Value: "rock"},
						{Name: "Paper", Value: "paper"},
						{Name: "Scissors", Value: "scissors"},
					},
				},
			},
		},
		{
			Name:        "guess",
			Description: "Guess a number from 1 to 10 (30 coins a round)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "number",
					Description: "Your guess",
					Required:    true,
				},
			},
		},
		{
			Name:        "ping",
			Description: "Check if the bot is alive",
		},
		{
			Name:        "userinfo",
			Description: "Show information about a member",
			Options: []*discordgo.ApplicationCommandOption{
				userOpt("user", "Which member (defaults to you)", false),
			},
		},
		{
			Name:        "serverinfo",
			Description: "Show information about this server",
		},
		{
			Name:        "avatar",
			Description: "Show a member's avatar",
			Options: []*discordgo.ApplicationCommandOption{
				userOpt("user", "Which member (defaults to you)", false),
			},
		},
		{
			Name:        "calc",
			Description: "Do some quick math",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "num1",
					Description: "First number",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "operator",
					Description: "+, -, * or /",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "num2",
					Description: "Second number",
					Required:    true,
				},
			},
		},
		{
			Name:        "8ball",
			Description: "Ask the magic 8 ball",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "Your question",
					Required:    true,
				},
			},
		},
		{
			Name:        "joke",
			Description: "Hear a joke",
		},
		{
			Name:        "advice",
			Description: "Get some advice",
		},
		{
			Name:        "fact",
			Description: "Learn a random fact",
		},
		{
			Name:        "pat",
			Description: "Pat someone",
			Options: []*discordgo.ApplicationCommandOption{
				userOpt("user", "Who to pat", true),
			},
		},
		{
			Name:        "kiss",
			Description: "Kiss someone",
			Options: []*discordgo.ApplicationCommandOption{
				userOpt("user", "Who to kiss", true),
			},
		},
		{
			Name:        "hug",
			Description: "Hug someone",
			Options: []*discordgo.ApplicationCommandOption{
				userOpt("user", "Who to hug", true),
			},
		},
		{
			Name:        "help",
			Description: "List every command",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
