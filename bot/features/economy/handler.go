package economy

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

func (f *Feature) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	result, err := f.economyService.ClaimDaily(ctx, i.Member.User.ID, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrAlreadyClaimed) {
			common.RespondWithError(s, i, "You already claimed your daily reward today!")
			return
		}
		common.HandleError(s, i, common.NewSystemError(err, "failed to claim daily reward"), false)
		return
	}

	message := fmt.Sprintf("💰 You got **%s coins**! Balance: **%s coins**",
		common.FormatBalance(result.Reward), common.FormatBalance(result.NewBalance))
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to daily command")
	}
}

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Defaults to the caller; an explicit user option checks someone else.
	targetID := i.Member.User.ID
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			if u := opt.UserValue(s); u != nil {
				targetID = u.ID
			}
		}
	}

	balance := f.economyService.Balance(targetID)
	displayName := common.GetDisplayName(s, i.GuildID, targetID)

	message := fmt.Sprintf("💰 %s's balance: **%s coins**", displayName, common.FormatBalance(balance))
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to balance command")
	}
}

func (f *Feature) handleTransfer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var amount int64
	var recipient *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	result, err := f.economyService.Transfer(ctx, i.Member.User.ID, recipient.ID, amount)
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		common.RespondWithError(s, i, "Amount must be positive.")
		return
	case errors.Is(err, service.ErrSelfTarget):
		common.RespondWithError(s, i, "You cannot transfer coins to yourself.")
		return
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "Insufficient balance for this transfer.")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to transfer coins"), false)
		return
	}

	message := fmt.Sprintf("💸 **%s coins** transferred to %s!",
		common.FormatBalance(result.Amount), recipient.Mention())
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to transfer command")
	}
}
