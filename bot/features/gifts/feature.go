package gifts

import (
	"github.com/bwmarrin/discordgo"

	"mingle/service"
)

type Feature struct {
	relationshipService *service.RelationshipService
}

func New(relationshipService *service.RelationshipService) *Feature {
	return &Feature{
		relationshipService: relationshipService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "shop":
		f.handleShop(s, i)
	case "buy":
		f.handleBuy(s, i, options[0].Options)
	case "inventory":
		f.handleInventory(s, i)
	}
}
