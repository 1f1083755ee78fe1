package fun

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"mingle/bot/common"
)

const colorPurple = 0x9b59b6

var eightBallAnswers = []string{
	"Yes!", "No!", "Maybe...", "Absolutely!", "Not a chance!",
	"The gods say yes!", "Better not tell you now.", "You can count on it!",
}

var jokes = []string{
	"Why was the computer arrested? It executed a command!",
	"What did the zero say to the eight? Nice belt!",
	"Why don't electrons ever pay their bills? They're always in debt!",
	"Why do programmers prefer dark mode? Because light attracts bugs!",
	"What's a pirate's favorite programming language? R!",
}

var advices = []string{
	"Drink water! 💧", "Sleep well! 😴", "Be kind! 🧘",
	"Learn something new! 📚", "Smile! 😊", "Help someone! 🤝",
}

var facts = []string{
	"Flamingos are born gray!", "A blue whale's heart is the size of a car!",
	"Polar bears have black skin!", "Honey never spoils!",
	"Bananas are slightly radioactive!", "Octopuses have three hearts!",
}

func (f *Feature) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	if err := common.RespondWithMessage(s, i, fmt.Sprintf("🏓 Pong! %dms", latency), false); err != nil {
		log.WithError(err).Error("Error responding to ping command")
	}
}

func (f *Feature) handleCalc(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var num1, num2 float64
	var operator string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "num1":
			num1 = opt.FloatValue()
		case "operator":
			operator = opt.StringValue()
		case "num2":
			num2 = opt.FloatValue()
		}
	}

	var result float64
	switch operator {
	case "+":
		result = num1 + num2
	case "-":
		result = num1 - num2
	case "*", "x":
		result = num1 * num2
	case "/":
		if num2 == 0 {
			common.RespondWithError(s, i, "Division by zero!")
			return
		}
		result = num1 / num2
	default:
		common.RespondWithError(s, i, "Invalid operator! Use +, -, *, /.")
		return
	}

	message := fmt.Sprintf("🧮 Result: `%g %s %g = %g`", num1, operator, num2, result)
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to calc command")
	}
}

func (f *Feature) handleEightBall(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var question string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "question" {
			question = opt.StringValue()
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎱 8Ball",
		Description: fmt.Sprintf("**Question:** %s\n**Answer:** %s",
			question, eightBallAnswers[f.rng.Intn(len(eightBallAnswers))]),
		Color: colorPurple,
	}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to 8ball command")
	}
}

func (f *Feature) handleJoke(s *discordgo.Session, i *discordgo.InteractionCreate) {
	message := "😂 " + jokes[f.rng.Intn(len(jokes))]
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to joke command")
	}
}

func (f *Feature) handleAdvice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	message := "💡 " + advices[f.rng.Intn(len(advices))]
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to advice command")
	}
}

func (f *Feature) handleFact(s *discordgo.Session, i *discordgo.InteractionCreate) {
	message := "🔍 " + facts[f.rng.Intn(len(facts))]
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to fact command")
	}
}

func (f *Feature) handleAffection(s *discordgo.Session, i *discordgo.InteractionCreate, verb, emoji string) {
	var target *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}
	if target == nil {
		common.RespondWithError(s, i, "Pick someone first.")
		return
	}

	message := fmt.Sprintf("%s %s %s! %s", i.Member.User.Mention(), verb, target.Mention(), emoji)
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to affection command")
	}
}
