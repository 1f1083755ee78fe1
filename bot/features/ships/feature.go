package ships

import (
	"github.com/bwmarrin/discordgo"

	"mingle/service"
)

type Feature struct {
	shipService *service.ShipService
}

func New(shipService *service.ShipService) *Feature {
	return &Feature{
		shipService: shipService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name == "zodiac" {
		f.handleZodiac(s, i)
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "match":
		f.handleMatch(s, i, options[0].Options)
	case "create":
		f.handleCreate(s, i, options[0].Options)
	case "like":
		f.handleLike(s, i, options[0].Options)
	case "info":
		f.handleInfo(s, i, options[0].Options)
	case "mine":
		f.handleMine(s, i)
	case "top":
		f.handleTop(s, i)
	case "list":
		f.handleList(s, i)
	case "analyze":
		f.handleAnalyze(s, i, options[0].Options)
	}
}
