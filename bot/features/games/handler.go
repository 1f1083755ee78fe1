package games

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"mingle/bot/common"
	"mingle/service"
)

const (
	colorBlue  = 0x3498db
	colorGreen = 0x2ecc71
	colorRed   = 0xe74c3c
)

var handEmojis = map[string]string{
	service.HandRock:     "🪨",
	service.HandPaper:    "📄",
	service.HandScissors: "✂️",
}

func (f *Feature) handleSlot(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	result, err := f.economyService.Slot(ctx, i.Member.User.ID)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			common.RespondWithError(s, i, "You need 50 coins to play the slots!")
			return
		}
		common.HandleError(s, i, common.NewSystemError(err, "failed to play slot"), false)
		return
	}

	text := fmt.Sprintf("` %s | %s | %s `\n", result.Reels[0], result.Reels[1], result.Reels[2])
	if result.Prize > 0 {
		text += fmt.Sprintf("🏆 You won %s coins!", common.FormatBalance(result.Prize))
	} else {
		text += "😢 Not this time!"
	}
	text += fmt.Sprintf("\n💰 Balance: %s", common.FormatBalance(result.NewBalance))

	if err := common.RespondWithMessage(s, i, "🎰 **Slots**\n"+text, false); err != nil {
		log.WithError(err).Error("Error responding to slot command")
	}
}

func (f *Feature) handleCoinFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var choice string
	var stake int64
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "choice":
			choice = opt.StringValue()
		case "stake":
			stake = opt.IntValue()
		}
	}

	result, err := f.economyService.CoinFlip(ctx, i.Member.User.ID, choice, stake)
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		common.RespondWithError(s, i, "Pick 'heads' or 'tails' and stake a positive amount.")
		return
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "Insufficient balance for that stake.")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to play coin flip"), false)
		return
	}

	var message string
	if result.Won {
		message = fmt.Sprintf("🎉 It's **%s**! You won %s coins!", result.Outcome, common.FormatBalance(result.Prize))
	} else {
		message = fmt.Sprintf("😢 It's **%s**! You lost %s coins!", result.Outcome, common.FormatBalance(stake))
	}
	message = fmt.Sprintf("🪙 %s\n💰 Balance: %s", message, common.FormatBalance(result.NewBalance))

	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to coinflip command")
	}
}

func (f *Feature) handleDice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sides := 6
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "sides" {
			sides = int(opt.IntValue())
		}
	}

	roll, err := f.economyService.RollDice(sides)
	if err != nil {
		common.RespondWithError(s, i, "A die needs at least 2 sides!")
		return
	}

	message := fmt.Sprintf("🎲 Result: **%d** (d%d)", roll, sides)
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to dice command")
	}
}

func (f *Feature) handleRPS(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var choice string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "choice" {
			choice = opt.StringValue()
		}
	}

	choice = strings.ToLower(choice)
	botChoice, outcome, err := f.economyService.RockPaperScissors(choice)
	if err != nil {
		common.RespondWithError(s, i, "Pick rock, paper or scissors!")
		return
	}

	var verdict string
	var color int
	switch outcome {
	case service.RPSWin:
		verdict = "You won!"
		color = colorGreen
	case service.RPSLoss:
		verdict = "You lost!"
		color = colorRed
	default:
		verdict = "Draw!"
		color = colorBlue
	}

	embed := &discordgo.MessageEmbed{
		Title:       "✂️ Rock Paper Scissors",
		Description: fmt.Sprintf("You: %s\nBot: %s", handEmojis[choice], handEmojis[botChoice]),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Result", Value: verdict},
		},
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to rps command")
	}
}

func (f *Feature) handleGuess(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var guess int
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "number" {
			guess = int(opt.IntValue())
		}
	}

	result, err := f.economyService.GuessNumber(ctx, i.Member.User.ID, guess)
	switch {
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "You need 30 coins to play!")
		return
	case errors.Is(err, service.ErrInvalidArgument):
		common.RespondWithError(s, i, "Pick a number between 1 and 10!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to play guess"), false)
		return
	}

	var message string
	if result.Won {
		message = fmt.Sprintf("🎉 CORRECT! The number was %d! You won %s coins!", result.Secret, common.FormatBalance(result.Prize))
	} else {
		message = fmt.Sprintf("😢 Wrong! The number was %d. You lost 30 coins!", result.Secret)
	}
	message = fmt.Sprintf("🔢 %s\n💰 Balance: %s", message, common.FormatBalance(result.NewBalance))

	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to guess command")
	}
}
