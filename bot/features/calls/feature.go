package calls

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"mingle/events"
	"mingle/models"
	"mingle/service"
)

// ConfirmButtonPrefix is the custom ID prefix of the attendance button; the
// call ID follows it.
const ConfirmButtonPrefix = "call_confirm_"

type Feature struct {
	callService *service.CallService
}

func New(callService *service.CallService) *Feature {
	return &Feature{
		callService: callService,
	}
}

// SubscribeEvents wires the announcement-sync side effects: every roster
// change re-renders the announcement embed and every cancellation replaces
// it with a notice. Failures here are logged and never block anything.
func (f *Feature) SubscribeEvents(session *discordgo.Session, bus *events.Bus) {
	bus.Subscribe(events.EventTypeCallRosterChange, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.CallRosterChangeEvent)
		if !ok {
			return
		}
		f.refreshAnnouncement(session, e)
	})

	bus.Subscribe(events.EventTypeCallCancelled, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.CallCancelledEvent)
		if !ok {
			return
		}
		f.replaceWithCancelNotice(session, e)
	})
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "create":
		f.handleCreate(s, i, options[0].Options)
	case "info":
		f.handleInfo(s, i, options[0].Options)
	case "roster":
		f.handleRoster(s, i, options[0].Options)
	case "cancel":
		f.handleCancel(s, i, options[0].Options)
	}
}

// HandleComponent routes attendance button presses.
func (f *Feature) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, ConfirmButtonPrefix) {
		return
	}
	f.handleConfirmButton(s, i, strings.TrimPrefix(customID, ConfirmButtonPrefix))
}

func (f *Feature) refreshAnnouncement(session *discordgo.Session, e events.CallRosterChangeEvent) {
	if e.MessageID == "" {
		return
	}

	call, err := f.callService.CallByMessageID(e.MessageID)
	if err != nil {
		log.WithField("call_id", e.CallID).Debug("Call gone before announcement refresh")
		return
	}
	roster, err := f.callService.Roster(e.CallID)
	if err != nil {
		return
	}

	embed := announcementEmbed(call, roster)
	_, err = session.ChannelMessageEditEmbed(e.ChannelID, e.MessageID, embed)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"call_id":    e.CallID,
			"message_id": e.MessageID,
		}).Warn("Failed to refresh call announcement")
	}
}

func (f *Feature) replaceWithCancelNotice(session *discordgo.Session, e events.CallCancelledEvent) {
	if e.MessageID == "" {
		return
	}

	embed := cancelledEmbed(e.Title, e.CancelledByID)
	content := ""
	components := []discordgo.MessageComponent{}
	_, err := session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         e.MessageID,
		Channel:    e.ChannelID,
		Content:    &content,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"call_id":    e.CallID,
			"message_id": e.MessageID,
		}).Warn("Failed to replace cancelled call announcement")
	}
}

// notifyConfirmed DMs the attendee a private receipt. DMs are best effort;
// users with closed DMs just miss out.
func (f *Feature) notifyConfirmed(s *discordgo.Session, userID string, call *models.Call, total int) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Debug("Cannot open DM channel")
		return
	}

	if _, err := s.ChannelMessageSendEmbed(channel.ID, confirmationDMEmbed(call, total)); err != nil {
		log.WithError(err).WithField("user_id", userID).Debug("Failed to send confirmation DM")
	}
}
