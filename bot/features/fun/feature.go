package fun

import (
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"
)

type randSource interface {
	Intn(n int) int
}

type Feature struct {
	rng randSource
}

func New() *Feature {
	return &Feature{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "ping":
		f.handlePing(s, i)
	case "calc":
		f.handleCalc(s, i)
	case "8ball":
		f.handleEightBall(s, i)
	case "joke":
		f.handleJoke(s, i)
	case "advice":
		f.handleAdvice(s, i)
	case "fact":
		f.handleFact(s, i)
	case "pat":
		f.handleAffection(s, i, "patted", "🥰")
	case "kiss":
		f.handleAffection(s, i, "kissed", "💋")
	case "hug":
		f.handleAffection(s, i, "hugged", "🤗")
	}
}
