package economy

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
	case "daily":
		f.handleDaily(s, i)
	case "balance":
		f.handleBalance(s, i)
	case "transfer":
		f.handleTransfer(s, i)
	}
}
