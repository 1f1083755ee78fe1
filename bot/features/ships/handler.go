package ships

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

func (f *Feature) handleMatch(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	person1, person2 := userPair(s, options)
	if person1 == nil || person2 == nil {
		common.RespondWithError(s, i, "Pick two users.")
		return
	}

	result := f.shipService.Match(matchInput(s, i.GuildID, person1, person2))

	name1 := common.GetDisplayName(s, i.GuildID, person1.ID)
	name2 := common.GetDisplayName(s, i.GuildID, person2.ID)
	embed := matchEmbed(person1, person2, name1, name2, result)

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to ship match")
	}
}

func (f *Feature) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	person1, person2 := userPair(s, options)
	if person1 == nil || person2 == nil {
		common.RespondWithError(s, i, "Pick two users.")
		return
	}

	_, err := f.shipService.CreateShip(ctx, person1.ID, person2.ID, i.Member.User.ID, time.Now())
	switch {
	case errors.Is(err, service.ErrSelfTarget):
		common.RespondWithError(s, i, "You cannot ship someone with themselves!")
		return
	case errors.Is(err, service.ErrAlreadyExists):
		common.RespondWithError(s, i, "This ship already exists!")
		return
	case err != nil:
		common.HandleError(s, i, common.NewSystemError(err, "failed to create ship"), false)
		return
	}

	message := fmt.Sprintf("💘 Ship created! %s 💞 %s — spread the love with `/ship like`!",
		person1.Mention(), person2.Mention())
	if err := common.RespondWithMessage(s, i, message, false); err != nil {
		log.WithError(err).Error("Error responding to ship create")
	}
}

func (f *Feature) handleLike(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	person1, person2 := userPair(s, options)
	if person1 == nil || person2 == nil {
		common.RespondWithError(s, i, "Pick two users.")
		return
	}

	likes, err := f.shipService.LikeShip(ctx, person1.ID, person2.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			common.RespondWithError(s, i, "Ship does not exist! Create it with `/ship create` first.")
			return
		}
		common.HandleError(s, i, common.NewSystemError(err, "failed to like ship"), false)
		return
	}

	if err := common.RespondWithMessage(s, i, fmt.Sprintf("👍 Liked! Total: %d likes", likes), false); err != nil {
		log.WithError(err).Error("Error responding to ship like")
	}
}

func (f *Feature) handleInfo(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	person1, person2 := userPair(s, options)
	if person1 == nil || person2 == nil {
		common.RespondWithError(s, i, "Pick two users.")
		return
	}

	ship, err := f.shipService.ShipInfo(person1.ID, person2.ID)
	if err != nil {
		common.RespondWithError(s, i, "Ship not found!")
		return
	}

	if err := common.RespondWithEmbed(s, i, shipInfoEmbed(ship), nil, false); err != nil {
		log.WithError(err).Error("Error responding to ship info")
	}
}

func (f *Feature) handleMine(s *discordgo.Session, i *discordgo.InteractionCreate) {
	mine := f.shipService.ShipsCreatedBy(i.Member.User.ID)
	if len(mine) == 0 {
		common.RespondWithError(s, i, "You have not created any ships!")
		return
	}

	if len(mine) > 10 {
		mine = mine[:10]
	}
	if err := common.RespondWithEmbed(s, i, shipListEmbed("📋 Your Ships", mine), nil, false); err != nil {
		log.WithError(err).Error("Error responding to ship mine")
	}
}

func (f *Feature) handleTop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	top := f.shipService.TopShips(10)
	if len(top) == 0 {
		common.RespondWithError(s, i, "No ships found!")
		return
	}

	if err := common.RespondWithEmbed(s, i, topShipsEmbed(top), nil, false); err != nil {
		log.WithError(err).Error("Error responding to ship top")
	}
}

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	all := f.shipService.AllShips()
	if len(all) == 0 {
		common.RespondWithError(s, i, "No ships found!")
		return
	}

	total := len(all)
	if len(all) > 15 {
		all = all[:15]
	}
	embed := shipListEmbed("📜 Server Ships", all)
	embed.Description = fmt.Sprintf("Total: %d ships", total)
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.WithError(err).Error("Error responding to ship list")
	}
}

func (f *Feature) handleAnalyze(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	person1, person2 := userPair(s, options)
	if person1 == nil || person2 == nil {
		common.RespondWithError(s, i, "Pick two users.")
		return
	}

	result := f.shipService.Analyze()

	if err := common.RespondWithEmbed(s, i, analysisEmbed(person1, person2, result), nil, false); err != nil {
		log.WithError(err).Error("Error responding to ship analyze")
	}
}

func (f *Feature) handleZodiac(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var sign1, sign2 string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "sign1":
			sign1 = opt.StringValue()
		case "sign2":
			sign2 = opt.StringValue()
		}
	}

	score, err := f.shipService.ZodiacCompatibility(sign1, sign2)
	if err != nil {
		common.RespondWithError(s, i, "Valid signs: "+strings.Join(service.ZodiacSigns, ", "))
		return
	}

	if err := common.RespondWithEmbed(s, i, zodiacEmbed(sign1, sign2, score), nil, false); err != nil {
		log.WithError(err).Error("Error responding to zodiac")
	}
}

// userPair extracts the two user options of a pair-based subcommand.
func userPair(s *discordgo.Session, options []*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.User, *discordgo.User) {
	var person1, person2 *discordgo.User
	for _, opt := range options {
		switch opt.Name {
		case "person1":
			person1 = opt.UserValue(s)
		case "person2":
			person2 = opt.UserValue(s)
		}
	}
	return person1, person2
}

// matchInput derives the quick-test scoring facts from the two profiles.
func matchInput(s *discordgo.Session, guildID string, person1, person2 *discordgo.User) service.MatchInput {
	in := service.MatchInput{SameGuild: true}

	if len(person1.Username) > 0 && len(person2.Username) > 0 {
		in.SameInitial = strings.EqualFold(person1.Username[:1], person2.Username[:1])
	}

	created1, err1 := discordgo.SnowflakeTimestamp(person1.ID)
	created2, err2 := discordgo.SnowflakeTimestamp(person2.ID)
	if err1 == nil && err2 == nil {
		in.AccountAgeDiffDays = int(created1.Sub(created2).Hours() / 24)
	}

	member1, err1 := s.GuildMember(guildID, person1.ID)
	member2, err2 := s.GuildMember(guildID, person2.ID)
	if err1 == nil && err2 == nil {
		in.CommonRoles = countCommonRoles(member1.Roles, member2.Roles)
	}

	return in
}

func countCommonRoles(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, role := range a {
		set[role] = struct{}{}
	}
	count := 0
	for _, role := range b {
		if _, ok := set[role]; ok {
			count++
		}
	}
	return count
}
