package ships

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mingle/bot/common"
	"mingle/models"
	"mingle/service"
)

const (
	colorBlue   = 0x3498db
	colorGold   = 0xf1c40f
	colorPurple = 0x9b59b6
	colorPink   = 0xff69b4
)

// matchTier maps a compatibility percentage to a verdict and embed color.
func matchTier(percent int) (string, int) {
	switch {
	case percent < 20:
		return "💔 Not even friends...", 0x607d8b
	case percent < 40:
		return "❤️‍🩹 Just friends", 0xe74c3c
	case percent < 60:
		return "💛 There is potential", 0xe67e22
	case percent < 70:
		return "💚 Interesting", colorGold
	case percent < 80:
		return "💙 Great combination", 0x2ecc71
	case percent < 90:
		return "💜 Almost perfect", 0x1abc9c
	case percent < 100:
		return "💝 Perfect", colorPurple
	default:
		return "✨ SOULMATES! ✨", colorPink
	}
}

// coupleName splices the first half of one display name onto the second
// half of the other.
func coupleName(name1, name2 string) string {
	r1 := []rune(name1)
	r2 := []rune(name2)
	return string(r1[:len(r1)/2]) + string(r2[len(r2)/2:])
}

func matchEmbed(person1, person2 *discordgo.User, name1, name2 string, result service.MatchResult) *discordgo.MessageEmbed {
	verdict, color := matchTier(result.Percent)

	return &discordgo.MessageEmbed{
		Title:       "💖 Love Test",
		Description: fmt.Sprintf("%s 💘 %s", person1.Mention(), person2.Mention()),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "📊 Compatibility",
				Value:  fmt.Sprintf("**%d%%**\n`%s`", result.Percent, common.ProgressBar(result.Percent)),
				Inline: false,
			},
			{Name: "💑 Couple Name", Value: fmt.Sprintf("**%s**", coupleName(name1, name2)), Inline: true},
			{Name: "📝 Verdict", Value: verdict, Inline: false},
		},
	}
}

func shipInfoEmbed(ship *models.Ship) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "ℹ️ Ship Info",
		Description: fmt.Sprintf("%s 💘 %s",
			common.GetUserMention(ship.PersonA), common.GetUserMention(ship.PersonB)),
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👍 Likes", Value: fmt.Sprintf("%d", ship.Likes), Inline: true},
			{Name: "👤 Created by", Value: common.GetUserMention(ship.CreatedBy), Inline: true},
			{Name: "📅 Created", Value: common.FormatDiscordTimestamp(ship.CreatedAt, "d"), Inline: true},
		},
	}
}

func shipListEmbed(title string, ships []*models.Ship) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: colorBlue,
	}

	for _, ship := range ships {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s 💘 %s",
				common.GetUserMention(ship.PersonA), common.GetUserMention(ship.PersonB)),
			Value:  fmt.Sprintf("👍 %d likes", ship.Likes),
			Inline: false,
		})
	}

	return embed
}

func topShipsEmbed(ships []*models.Ship) *discordgo.MessageEmbed {
	var sb strings.Builder
	medals := []string{"🥇", "🥈", "🥉"}
	for n, ship := range ships {
		rank := fmt.Sprintf("%d.", n+1)
		if n < len(medals) {
			rank = medals[n]
		}
		sb.WriteString(fmt.Sprintf("%s %s 💘 %s — 👍 %d\n",
			rank, common.GetUserMention(ship.PersonA), common.GetUserMention(ship.PersonB), ship.Likes))
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Top Ships",
		Description: sb.String(),
		Color:       colorGold,
	}
}

func analysisEmbed(person1, person2 *discordgo.User, result service.AnalysisResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🔮 Detailed Analysis",
		Description: fmt.Sprintf("%s ❤️ %s", person1.Mention(), person2.Mention()),
		Color:       colorPurple,
	}

	for _, category := range service.AnalysisCategories {
		score := result.Scores[category]
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   category,
			Value:  fmt.Sprintf("%d%% `%s`", score, common.ProgressBar(score)),
			Inline: false,
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "📊 Average",
		Value:  fmt.Sprintf("**%d%%**", result.Average),
		Inline: false,
	})

	return embed
}

func zodiacEmbed(sign1, sign2 string, score int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "♈ Zodiac Compatibility",
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Sign 1", Value: sign1, Inline: true},
			{Name: "Sign 2", Value: sign2, Inline: true},
			{Name: "Compatibility", Value: fmt.Sprintf("**%d%%**", score), Inline: true},
		},
	}
}
