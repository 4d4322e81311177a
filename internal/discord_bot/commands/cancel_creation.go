package commands

import (
	"poll_scheduling_system/internal/wizard"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const cancelCreationCommandName = "cancel"

type cancelCreationCommand struct {
	sessionManager *wizard.SessionManager
	logger         *zap.SugaredLogger
}

func NewCancelCreationCommand(sessionManager *wizard.SessionManager, logger *zap.SugaredLogger) Command {
	return &cancelCreationCommand{
		sessionManager: sessionManager,
		logger:         logger,
	}
}

func (c *cancelCreationCommand) CanHandle(command string) bool {
	return command == cancelCreationCommandName
}

func (c *cancelCreationCommand) Handle(command, arguments string, message *discordgo.MessageCreate) {
	c.sessionManager.Cancel(message.GuildID, message.Author.ID, message.ChannelID)
}
