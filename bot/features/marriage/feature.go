package marriage

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
	case "propose":
		f.handlePropose(s, i, options[0].Options)
	case "accept":
		f.handleAccept(s, i, options[0].Options)
	case "decline":
		f.handleDecline(s, i, options[0].Options)
	case "divorce":
		f.handleDivorce(s, i)
	case "status":
		f.handleStatus(s, i)
	case "gift":
		f.handleGift(s, i, options[0].Options)
	case "anniversary":
		f.handleAnniversary(s, i)
	case "honeymoon":
		f.handleHoneymoon(s, i)
	}
}
