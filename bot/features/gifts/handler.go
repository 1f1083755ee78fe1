package gifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"mingle/bot/common"
	"mingle/service"
)

const colorGold = 0xf1c40f

func (f *Feature) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title: "🎁 Gift Shop",
		Color: colorGold,
	}

	for _, item := range f.relationshipService.GiftCatalog() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   item.Name,
			Value:  fmt.Sprintf("%s coins", common.FormatBalance(item.Price)),
			Inline: true,
		})
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to gift shop")
	}
}

func (f *Feature) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var giftName string
	var recipient *discordgo.User
	for _, opt := range options {
		switch opt.Name {
		case "gift":
			giftName = opt.StringValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Pick someone to receive the gift.")
		return
	}

	err := f.relationshipService.BuyGift(ctx, i.Member.User.ID, i.Member.User.Username, giftName, recipient.ID, time.Now())
	switch {
	case errors.Is(err, service.ErrNotFound):
		common.RespondWithError(s, i, "Gift not found! Check `/gift shop`.")
		return
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "Insufficient balance!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to buy gift"), false)
		return
	}

	message := fmt.Sprintf("🎁 %s delivered to %s!", giftName, recipient.Mention())
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to gift buy")
	}
}

func (f *Feature) handleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	gifts := f.relationshipService.GiftsFor(i.Member.User.ID)
	if len(gifts) == 0 {
		common.RespondWithError(s, i, "You have no gifts!")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📦 %s's Gifts", displayName),
		Color: colorGold,
	}

	// Latest ten, newest last.
	if len(gifts) > 10 {
		gifts = gifts[len(gifts)-10:]
	}
	for _, gift := range gifts {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   gift.Name,
			Value:  fmt.Sprintf("From: %s | %s", gift.From, common.FormatDiscordTimestamp(gift.GivenAt, "d")),
			Inline: false,
		})
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to gift inventory")
	}
}
