package commands

import (
	"fmt"
	"strings"

	"poll_scheduling_system/internal/db/repositories"
	"poll_scheduling_system/internal/discord"
	"poll_scheduling_system/internal/wizard"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const modifyPollCommandName = "modify"

type modifyPollCommand struct {
	pollRepository repositories.PollRepository
	sessionManager *wizard.SessionManager
	transport      discord.Transport
	logger         *zap.SugaredLogger
}

func NewModifyPollCommand(
	pollRepository repositories.PollRepository,
	sessionManager *wizard.SessionManager,
	transport discord.Transport,
	logger *zap.SugaredLogger,
) Command {
	return &modifyPollCommand{
		pollRepository: pollRepository,
		sessionManager: sessionManager,
		transport:      transport,
		logger:         logger,
	}
}

func (c *modifyPollCommand) CanHandle(command string) bool {
	return command == modifyPollCommandName
}

func (c *modifyPollCommand) Handle(command, arguments string, message *discordgo.MessageCreate) {
	idPrefix := strings.TrimSpace(arguments)
	if idPrefix == "" {
		c.announce(message.ChannelID, "Usage: modify <poll id>. Find the ID with the list command.")
		return
	}

	target, err := c.pollRepository.GetOneByIDPrefix(message.GuildID, idPrefix)
	if err != nil {
		c.logger.Errorw("failed to look up poll", "guild_id", message.GuildID, "id_prefix", idPrefix, "error", err)
		c.announce(message.ChannelID, "Something went wrong looking up the poll.")
		return
	}
	if target == nil {
		c.announce(message.ChannelID, fmt.Sprintf("No poll found with ID `%s`.", idPrefix))
		return
	}

	c.sessionManager.StartModify(message.GuildID, message.Author.ID, message.ChannelID, target)
}

func (c *modifyPollCommand) announce(channelID, content string) {
	if err := c.transport.Announce(channelID, content); err != nil {
		c.logger.Errorw("failed to send message", "channel_id", channelID, "error", err)
	}
}
