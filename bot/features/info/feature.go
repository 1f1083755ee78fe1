package info

import (
	"github.com/bwmarrin/discordgo"
)

type Feature struct{}

func New() *Feature {
	return &Feature{}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "userinfo":
		f.handleUserInfo(s, i)
	case "serverinfo":
		f.handleServerInfo(s, i)
	case "avatar":
		f.handleAvatar(s, i)
	case "help":
		f.handleHelp(s, i)
	}
}
