package services

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// EventCreator creates a calendar event on the host platform.
type EventCreator interface {
	CreateEvent(guildID, title, description string, start, end time.Time) error
}

type eventService struct {
	session *discordgo.Session
	logger  *zap.SugaredLogger
}

func NewEventService(session *discordgo.Session, logger *zap.SugaredLogger) EventCreator {
	return &eventService{
		session: session,
		logger:  logger,
	}
}

func (s *eventService) CreateEvent(guildID, title, description string, start, end time.Time) error {
	_, err := s.session.GuildScheduledEventCreate(guildID, &discordgo.GuildScheduledEventParams{
		Name:               title,
		Description:        description,
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityMetadata: &discordgo.GuildScheduledEventEntityMetadata{
			Location: "Discord",
		},
	})
	if err != nil {
		s.logger.Errorw("failed to create scheduled event", "guild_id", guildID, "error", err)
	}
	return err
}
