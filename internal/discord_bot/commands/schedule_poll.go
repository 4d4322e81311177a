package commands

import (
	"poll_scheduling_system/internal/wizard"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const schedulePollCommandName = "schedule"

type schedulePollCommand struct {
	sessionManager *wizard.SessionManager
	logger         *zap.SugaredLogger
}

func NewSchedulePollCommand(sessionManager *wizard.SessionManager, logger *zap.SugaredLogger) Command {
	return &schedulePollCommand{
		sessionManager: sessionManager,
		logger:         logger,
	}
}

func (c *schedulePollCommand) CanHandle(command string) bool {
	return command == schedulePollCommandName
}

func (c *schedulePollCommand) Handle(command, arguments string, message *discordgo.MessageCreate) {
	c.sessionManager.StartCreate(message.GuildID, message.Author.ID, message.ChannelID)
}
