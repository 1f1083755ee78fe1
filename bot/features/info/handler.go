package info

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"mingle/bot/common"
)

const (
	colorBlue   = 0x3498db
	colorOrange = 0xe67e22
)

func (f *Feature) handleUserInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := i.Member.User
	joined := i.Member.JoinedAt
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}
	if target.ID != i.Member.User.ID {
		if member, err := s.GuildMember(i.GuildID, target.ID); err == nil {
			joined = member.JoinedAt
		}
	}

	created, err := discordgo.SnowflakeTimestamp(target.ID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to parse user snowflake"), false)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("👤 %s", target.Username),
		Color: colorBlue,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL("256"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "ID", Value: target.ID, Inline: true},
			{Name: "Account created", Value: common.FormatDiscordTimestamp(created, "D"), Inline: true},
			{Name: "Joined server", Value: common.FormatDiscordTimestamp(joined, "D"), Inline: true},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to userinfo command")
	}
}

func (f *Feature) handleServerInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
		if err != nil {
			common.HandleError(s, i, common.NewSystemError(err, "failed to fetch guild"), false)
			return
		}
	}

	created, err := discordgo.SnowflakeTimestamp(guild.ID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to parse guild snowflake"), false)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🏠 %s", guild.Name),
		Color: colorOrange,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: guild.IconURL("256"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "ID", Value: guild.ID, Inline: true},
			{Name: "Owner", Value: common.GetUserMention(guild.OwnerID), Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "Channels", Value: fmt.Sprintf("%d", len(guild.Channels)), Inline: true},
			{Name: "Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
			{Name: "Created", Value: common.FormatDiscordTimestamp(created, "D"), Inline: true},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to serverinfo command")
	}
}

func (f *Feature) handleAvatar(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🖼️ %s's avatar", target.Username),
		Color: colorBlue,
		Image: &discordgo.MessageEmbedImage{
			URL: target.AvatarURL("1024"),
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to avatar command")
	}
}

func (f *Feature) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "📖 Commands",
		Description: "Everything the bot can do, by category.",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📢 Calls",
				Value: "`/call create` `/call info` `/call roster` `/call cancel`",
			},
			{
				Name: "💕 Ships",
				Value: "`/ship match` `/ship create` `/ship like` `/ship info` `/ship mine` `/ship top` `/ship list` `/ship analyze` `/zodiac`",
			},
			{
				Name: "💍 Marriage",
				Value: "`/marry propose` `/marry accept` `/marry decline` `/marry divorce` `/marry status` `/marry gift` `/marry anniversary` `/marry honeymoon`",
			},
			{
				Name: "🎁 Gifts",
				Value: "`/gift shop` `/gift buy` `/gift inventory`",
			},
			{
				Name: "💰 Economy",
				Value: "`/daily` `/balance` `/transfer`",
			},
			{
				Name: "🎰 Games",
				Value: "`/slot` `/coinflip` `/dice` `/rps` `/guess`",
			},
			{
				Name: "🎉 Fun",
				Value: "`/8ball` `/joke` `/advice` `/fact` `/pat` `/kiss` `/hug` `/calc`",
			},
			{
				Name: "ℹ️ Info",
				Value: "`/ping` `/userinfo` `/serverinfo` `/avatar` `/help`",
			},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to help command")
	}
}
