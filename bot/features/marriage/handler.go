package marriage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"mingle/bot/common"
	"mingle/service"
)

const (
	colorGold = 0xf1c40f
	colorGray = 0x607d8b
	colorPink = 0xff69b4
)

func userOption(s *discordgo.Session, options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.User {
	for _, opt := range options {
		if opt.Name == name {
			return opt.UserValue(s)
		}
	}
	return nil
}

func (f *Feature) handlePropose(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	target := userOption(s, options, "user")
	if target == nil {
		common.RespondWithError(s, i, "Pick someone to propose to.")
		return
	}
	if target.Bot {
		common.RespondWithError(s, i, "You cannot marry a bot!")
		return
	}

	err := f.relationshipService.Propose(ctx, i.Member.User.ID, target.ID)
	switch {
	case errors.Is(err, service.ErrSelfTarget):
		common.RespondWithError(s, i, "You cannot marry yourself!")
		return
	case errors.Is(err, service.ErrAlreadyMarried):
		common.RespondWithError(s, i, "You two are already married!")
		return
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "You need 2,000 coins to propose!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to propose"), false)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "💍 MARRIAGE PROPOSAL!",
		Description: fmt.Sprintf("%s proposed to %s!", i.Member.User.Mention(), target.Mention()),
		Color:       colorPink,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "💝 What now?",
				Value: fmt.Sprintf("%s\n`/marry accept` to say yes\n`/marry decline` to say no",
					target.Mention()),
				Inline: false,
			},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to marry propose")
	}
}

func (f *Feature) handleAccept(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	proposer := userOption(s, options, "user")
	if proposer == nil {
		common.RespondWithError(s, i, "Pick whose proposal you are accepting.")
		return
	}

	_, err := f.relationshipService.Accept(ctx, proposer.ID, i.Member.User.ID, time.Now())
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to accept proposal"), false)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "💞 JUST MARRIED!",
		Description: fmt.Sprintf("🎉 %s and %s are now married!", proposer.Mention(), i.Member.User.Mention()),
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💰 Bonus", Value: "You both received 1,000 coins!", Inline: false},
			{Name: "🌙 Honeymoon", Value: "Active for 7 days!", Inline: false},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to marry accept")
	}
}

func (f *Feature) handleDecline(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	proposer := userOption(s, options, "user")
	if proposer == nil {
		common.RespondWithError(s, i, "Pick whose proposal you are declining.")
		return
	}

	// Declining keeps the proposal fee. Harsh, but that is the deal.
	embed := &discordgo.MessageEmbed{
		Title:       "💔 PROPOSAL DECLINED",
		Description: fmt.Sprintf("%s declined %s...", i.Member.User.Mention(), proposer.Mention()),
		Color:       colorGray,
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to marry decline")
	}
}

func (f *Feature) handleDivorce(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	result, err := f.relationshipService.Divorce(ctx, i.Member.User.ID, time.Now())
	switch {
	case errors.Is(err, service.ErrNotMarried):
		common.RespondWithError(s, i, "You are not married!")
		return
	case errors.Is(err, service.ErrCooldownActive):
		common.RespondWithError(s, i, "Wait 7 days between divorces!")
		return
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "You need 5,000 coins to divorce!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to divorce"), false)
		return
	}

	message := fmt.Sprintf("💔 Divorced! %s coins deducted.", common.FormatBalance(result.Cost))
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to marry divorce")
	}
}

func (f *Feature) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	marriage, err := f.relationshipService.MarriageOf(i.Member.User.ID)
	if err != nil {
		common.RespondWithError(s, i, "You are not married!")
		return
	}

	spouseID := marriage.SpouseOf(i.Member.User.ID)
	marriedFor := time.Since(marriage.MarriedAt)
	days := int(marriedFor.Hours() / 24)
	hours := int(marriedFor.Hours()) % 24

	embed := &discordgo.MessageEmbed{
		Title:       "💒 Marriage",
		Description: fmt.Sprintf("%s ❤️ %s", i.Member.User.Mention(), common.GetUserMention(spouseID)),
		Color:       colorPink,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📅 Married for", Value: fmt.Sprintf("**%d days** and **%d hours**", days, hours), Inline: true},
			{Name: "💝 Anniversaries", Value: fmt.Sprintf("**%d**", marriage.AnniversariesCelebrated), Inline: true},
		},
	}

	if len(marriage.Gifts) > 0 {
		recent := marriage.Gifts
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🎁 Recent gifts",
			Value:  strings.Join(recent, "\n"),
			Inline: false,
		})
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to marry status")
	}
}

func (f *Feature) handleGift(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var gift string
	for _, opt := range options {
		if opt.Name == "gift" {
			gift = opt.StringValue()
		}
	}

	spouseID, err := f.relationshipService.GiftSpouse(ctx, i.Member.User.ID, i.Member.User.Username, gift)
	switch {
	case errors.Is(err, service.ErrNotMarried):
		common.RespondWithError(s, i, "You are not married!")
		return
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "You need 100 coins to gift your spouse!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to gift spouse"), false)
		return
	}

	message := fmt.Sprintf("🎁 Gift sent to %s!", common.GetUserMention(spouseID))
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to marry gift")
	}
}

func (f *Feature) handleAnniversary(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	result, err := f.relationshipService.CelebrateAnniversary(ctx, i.Member.User.ID, time.Now())
	switch {
	case errors.Is(err, service.ErrNotMarried):
		common.RespondWithError(s, i, "You are not married!")
		return
	case errors.Is(err, service.ErrNotAnniversary):
		common.RespondWithError(s, i, "Today is not your anniversary!")
		return
	case errors.Is(err, service.ErrAlreadyCelebrated):
		common.RespondWithError(s, i, "Anniversary already celebrated!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to celebrate anniversary"), false)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎂 HAPPY ANNIVERSARY!",
		Description: fmt.Sprintf("**%d** years together!", result.Years),
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "💰 Bonus",
				Value:  fmt.Sprintf("You both received %s coins!", common.FormatBalance(result.Bonus)),
				Inline: false,
			},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to marry anniversary")
	}
}

func (f *Feature) handleHoneymoon(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	status, err := f.relationshipService.HoneymoonStatus(ctx, i.Member.User.ID, time.Now())
	switch {
	case errors.Is(err, service.ErrNotMarried):
		common.RespondWithError(s, i, "You are not married!")
		return
	case errors.Is(err, service.ErrHoneymoonOver):
		common.RespondWithError(s, i, "The honeymoon is over!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to check honeymoon"), false)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🌙 HONEYMOON",
		Description: fmt.Sprintf("%s ❤️ %s", i.Member.User.Mention(), common.GetUserMention(status.SpouseID)),
		Color:       colorPink,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "⏳ Days remaining", Value: fmt.Sprintf("**%d** days", status.DaysRemaining), Inline: false},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to marry honeymoon")
	}
}
