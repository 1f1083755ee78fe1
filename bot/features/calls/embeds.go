package calls

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"mingle/bot/common"
	"mingle/models"
	"mingle/service"
)

const (
	colorBlue  = 0x3498db
	colorGreen = 0x2ecc71
	colorRed   = 0xe74c3c
)

// Roster display caps. The announcement embed shows more names than the
// compact info view; anything beyond the cap collapses into a counter.
const (
	announcementRosterCap = 20
	infoRosterCap         = 15
)

// announcementEmbed renders the public call announcement with the current
// roster.
func announcementEmbed(call *models.Call, roster []string) *discordgo.MessageEmbed {
	description := call.Description
	if description == "" {
		description = "Click the button below to confirm your attendance!"
	}

	rosterValue := "Nobody has confirmed yet"
	if len(roster) > 0 {
		var sb strings.Builder
		for _, userID := range roster[:min(len(roster), announcementRosterCap)] {
			sb.WriteString("• " + common.GetUserMention(userID) + "\n")
		}
		if extra := len(roster) - announcementRosterCap; extra > 0 {
			sb.WriteString(fmt.Sprintf("… and %d more", extra))
		}
		rosterValue = sb.String()
	}

	return &discordgo.MessageEmbed{
		Title:       "📢 " + call.Title,
		Description: description,
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📅 When", Value: call.Schedule, Inline: true},
			{Name: "📍 Where", Value: call.Location, Inline: true},
			{Name: "👤 Organizer", Value: common.GetUserMention(call.CreatorID), Inline: true},
			{Name: fmt.Sprintf("✅ **Confirmed: %d**", len(roster)), Value: rosterValue, Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Click the button below to confirm! The list updates automatically.",
		},
		Timestamp: call.CreatedAt.Format(time.RFC3339),
	}
}

// cancelledEmbed replaces the announcement after a cancellation.
func cancelledEmbed(title, cancelledByID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ CALL CANCELLED",
		Description: fmt.Sprintf("**%s** was cancelled by %s", title, common.GetUserMention(cancelledByID)),
		Color:       colorRed,
	}
}

// confirmationDMEmbed is the private receipt sent to a confirmed attendee.
func confirmationDMEmbed(call *models.Call, total int) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "📅 When", Value: call.Schedule, Inline: true},
		{Name: "📍 Where", Value: call.Location, Inline: true},
	}
	if call.Description != "" {
		description := call.Description
		if len(description) > 100 {
			description = description[:100]
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "📝 Details", Value: description, Inline: false})
	}
	fields = append(fields,
		&discordgo.MessageEmbedField{Name: "👤 Organizer", Value: common.GetUserMention(call.CreatorID), Inline: true},
		&discordgo.MessageEmbedField{Name: "📊 Total", Value: fmt.Sprintf("%d confirmed", total), Inline: true},
	)

	return &discordgo.MessageEmbed{
		Title:       "✅ Attendance confirmed!",
		Description: fmt.Sprintf("**%s**", call.Title),
		Color:       colorGreen,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Thanks for confirming! 🎉"},
	}
}

// infoEmbed is the compact per-call view for /call info with a message ID.
func infoEmbed(call *models.Call, roster []string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "📅 When", Value: call.Schedule, Inline: true},
		{Name: "📍 Where", Value: call.Location, Inline: true},
		{Name: "👤 Organizer", Value: common.GetUserMention(call.CreatorID), Inline: true},
		{Name: "✅ Confirmed", Value: fmt.Sprintf("%d", len(roster)), Inline: true},
	}

	if len(roster) > 0 {
		var sb strings.Builder
		for _, userID := range roster[:min(len(roster), infoRosterCap)] {
			sb.WriteString("• " + common.GetUserMention(userID) + "\n")
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "📋 Attendees", Value: sb.String(), Inline: false})
	}

	return &discordgo.MessageEmbed{
		Title:  "📊 " + call.Title,
		Color:  colorBlue,
		Fields: fields,
	}
}

// recentCallsEmbed lists the latest calls announced in the channel.
func recentCallsEmbed(summaries []service.CallSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📋 Recent Calls",
		Color: colorBlue,
	}

	for _, summary := range summaries {
		title := summary.Call.Title
		if len(title) > 30 {
			title = title[:30]
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📢 " + title,
			Value: fmt.Sprintf("📅 %s\n✅ %d confirmed\n📝 `%s`",
				summary.Call.Schedule, summary.Confirmed, summary.Call.MessageID),
			Inline: false,
		})
	}

	return embed
}

// rosterEmbed is the full numbered attendance list for /call roster.
func rosterEmbed(call *models.Call, roster []string) *discordgo.MessageEmbed {
	var sb strings.Builder
	for n, userID := range roster {
		sb.WriteString(fmt.Sprintf("%d. %s\n", n+1, common.GetUserMention(userID)))
	}

	return &discordgo.MessageEmbed{
		Title:       "📋 Attendance List",
		Description: fmt.Sprintf("**%s**", call.Title),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📅 When", Value: call.Schedule, Inline: true},
			{Name: "📍 Where", Value: call.Location, Inline: true},
			{Name: "✅ Total", Value: fmt.Sprintf("%d", len(roster)), Inline: true},
			{Name: "📋 Attendees", Value: sb.String(), Inline: false},
		},
	}
}

// confirmButton builds the attendance button row for an announcement.
func confirmButton(callID, emoji string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm attendance",
					Style:    discordgo.SuccessButton,
					CustomID: ConfirmButtonPrefix + callID,
					Emoji:    &discordgo.ComponentEmoji{Name: emoji},
				},
			},
		},
	}
}
