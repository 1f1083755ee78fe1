package calls

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

func (f *Feature) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	if !common.CanMentionEveryone(i) {
		common.RespondWithError(s, i, "You need the `Mention @everyone` permission to create a call.")
		return
	}

	params := service.CreateCallParams{
		Emoji:       "✅",
		CreatorID:   i.Member.User.ID,
		CreatorName: i.Member.User.Username,
		ChannelID:   i.ChannelID,
		CreatedAt:   time.Now(),
	}
	for _, opt := range options {
		switch opt.Name {
		case "title":
			params.Title = opt.StringValue()
		case "schedule":
			params.Schedule = opt.StringValue()
		case "location":
			params.Location = opt.StringValue()
		case "description":
			params.Description = opt.StringValue()
		case "emoji":
			params.Emoji = opt.StringValue()
		}
	}

	call, err := f.callService.CreateCall(ctx, params)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			common.RespondWithError(s, i, "A call was just created in this channel. Wait a second and try again.")
			return
		}
		common.HandleError(s, i, common.NewSystemError(err, "failed to create call"), false)
		return
	}

	embed := announcementEmbed(call, nil)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         "@everyone 📢 **NEW CALL!** 📢",
			Embeds:          []*discordgo.MessageEmbed{embed},
			Components:      confirmButton(call.ID, params.Emoji),
			AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone}},
		},
	})
	if err != nil {
		log.WithError(err).Error("Failed to send call announcement")
		return
	}

	message, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.WithError(err).WithField("call_id", call.ID).Error("Failed to fetch call announcement message; roster sync disabled for this call")
	} else if err := f.callService.AttachMessage(ctx, call.ID, message.ID); err != nil {
		log.WithError(err).WithField("call_id", call.ID).Error("Failed to attach announcement message to call")
	}

	common.FollowUpWithSuccess(s, i, fmt.Sprintf("**%s** created! The attendance list lives in the announcement embed.", call.Title), true)
}

func (f *Feature) handleInfo(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var messageID string
	for _, opt := range options {
		if opt.Name == "message_id" {
			messageID = opt.StringValue()
		}
	}

	if messageID == "" {
		summaries := f.callService.RecentCallsInChannel(i.ChannelID, 5)
		if len(summaries) == 0 {
			common.RespondWithError(s, i, "No calls in this channel.")
			return
		}
		if err := common.RespondWithEmbed(s, i, recentCallsEmbed(summaries), nil, true); err != nil {
			log.WithError(err).Error("Failed to respond to call info")
		}
		return
	}

	call, err := f.callService.CallByMessageID(messageID)
	if err != nil {
		common.RespondWithError(s, i, "Call not found.")
		return
	}
	roster, err := f.callService.Roster(call.ID)
	if err != nil {
		common.RespondWithError(s, i, "Call not found.")
		return
	}

	if err := common.RespondWithEmbed(s, i, infoEmbed(call, roster), nil, true); err != nil {
		log.WithError(err).Error("Failed to respond to call info")
	}
}

func (f *Feature) handleRoster(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var messageID string
	for _, opt := range options {
		if opt.Name == "message_id" {
			messageID = opt.StringValue()
		}
	}

	call, err := f.callService.CallByMessageID(messageID)
	if err != nil {
		common.RespondWithError(s, i, "Call not found.")
		return
	}

	roster, err := f.callService.Roster(call.ID)
	if err != nil {
		common.RespondWithError(s, i, "Call not found.")
		return
	}
	if len(roster) == 0 {
		if err := common.RespondWithMessage(s, i, "📋 Nobody has confirmed yet!", true); err != nil {
			log.WithError(err).Error("Failed to respond to call roster")
		}
		return
	}

	if err := common.RespondWithEmbed(s, i, rosterEmbed(call, roster), nil, true); err != nil {
		log.WithError(err).Error("Failed to respond to call roster")
	}
}

func (f *Feature) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var messageID string
	for _, opt := range options {
		if opt.Name == "message_id" {
			messageID = opt.StringValue()
		}
	}

	call, err := f.callService.CallByMessageID(messageID)
	if err != nil {
		common.RespondWithError(s, i, "Call not found.")
		return
	}

	err = f.callService.Cancel(ctx, call.ID, i.Member.User.ID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		common.RespondWithError(s, i, "Call not found.")
	case errors.Is(err, service.ErrNotCreator):
		common.RespondWithError(s, i, "Only the creator can cancel this call.")
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to cancel call"), false)
	default:
		if err := common.RespondWithSuccess(s, i, "Call cancelled!", true); err != nil {
			log.WithError(err).Error("Failed to respond to call cancel")
		}
	}
}

func (f *Feature) handleConfirmButton(s *discordgo.Session, i *discordgo.InteractionCreate, callID string) {
	ctx := context.Background()
	userID := i.Member.User.ID

	total, err := f.callService.Confirm(ctx, callID, userID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		common.RespondWithError(s, i, "This call no longer exists!")
		return
	case errors.Is(err, service.ErrAlreadyConfirmed):
		common.RespondWithError(s, i, "You already confirmed your attendance!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to confirm attendance"), false)
		return
	}

	message := fmt.Sprintf("✅ **Attendance confirmed!** We are at **%d** confirmed!", total)
	if err := common.RespondWithMessage(s, i, message, true); err != nil {
		log.WithError(err).Error("Failed to respond to attendance confirmation")
	}

	// Private receipt, best effort.
	if call, err := f.callService.CallByMessageID(i.Message.ID); err == nil {
		go f.notifyConfirmed(s, userID, call, total)
	}
}
