package commands

import (
	"fmt"
	"strings"

	"poll_scheduling_system/internal/db/repositories"
	"poll_scheduling_system/internal/discord"
	"poll_scheduling_system/internal/poll"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const deletePollCommandName = "delete"

type deletePollCommand struct {
	pollRepository   repositories.PollRepository
	lifecycleManager *poll.LifecycleManager
	transport        discord.Transport
	logger           *zap.SugaredLogger
}

func NewDeletePollCommand(
	pollRepository repositories.PollRepository,
	lifecycleManager *poll.LifecycleManager,
	transport discord.Transport,
	logger *zap.SugaredLogger,
) Command {
	return &deletePollCommand{
		pollRepository:   pollRepository,
		lifecycleManager: lifecycleManager,
		transport:        transport,
		logger:           logger,
	}
}

func (c *deletePollCommand) CanHandle(command string) bool {
	return command == deletePollCommandName
}

func (c *deletePollCommand) Handle(command, arguments string, message *discordgo.MessageCreate) {
	idPrefix := strings.TrimSpace(arguments)
	if idPrefix == "" {
		c.announce(message.ChannelID, "Usage: delete <poll id>. Find the ID with the list command.")
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

	if err := c.lifecycleManager.Delete(target); err != nil {
		c.logger.Errorw("failed to delete poll", "poll_id", target.ShortID(), "error", err)
		c.announce(message.ChannelID, "Something went wrong deleting the poll.")
		return
	}

	c.announce(message.ChannelID, fmt.Sprintf("Poll **%s** (`%s`) deleted.", target.Question, target.ShortID()))
}

func (c *deletePollCommand) announce(channelID, content string) {
	if err := c.transport.Announce(channelID, content); err != nil {
		c.logger.Errorw("failed to send message", "channel_id", channelID, "error", err)
	}
}
