package games

import (
	"github.com/bwmarrin/discordgo"

	"mingle/service"
)

type Feature struct {
	economyService *service.EconomyService
}

func New(economyService *service.EconomyService) *Feature {
	return &Feature{
		economyService: economyService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "slot":
		f.handleSlot(s, i)
	case "coinflip":
		f.handleCoinFlip(s, i)
	case "dice":
		f.handleDice(s, i)
	case "rps":
		f.handleRPS(s, i)
	case "guess":
		f.handleGuess(s, i)
	}
}
