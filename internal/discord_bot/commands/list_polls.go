package commands

import (
	"fmt"
	"strings"

	"poll_scheduling_system/internal"
	"poll_scheduling_system/internal/db/models"
	"poll_scheduling_system/internal/db/repositories"
	"poll_scheduling_system/internal/discord"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const listPollsCommandName = "list"

var statusEmojis = map[models.PollStatus]string{
	models.PollStatusScheduled: "🕐",
	models.PollStatusActive:    "🟢",
	models.PollStatusCompleted: "✅",
}

type listPollsCommand struct {
	pollRepository repositories.PollRepository
	transport      discord.Transport
	logger         *zap.SugaredLogger
}

func NewListPollsCommand(pollRepository repositories.PollRepository, transport discord.Transport, logger *zap.SugaredLogger) Command {
	return &listPollsCommand{
		pollRepository: pollRepository,
		transport:      transport,
		logger:         logger,
	}
}

func (c *listPollsCommand) CanHandle(command string) bool {
	return command == listPollsCommandName
}

func (c *listPollsCommand) Handle(command, arguments string, message *discordgo.MessageCreate) {
	polls, err := c.pollRepository.GetManyByGuild(message.GuildID)
	if err != nil {
		c.logger.Errorw("failed to load polls", "guild_id", message.GuildID, "error", err)
		c.announce(message.ChannelID, "Something went wrong loading the polls.")
		return
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(polls))
	for _, poll := range polls {
		// tiebreakers are internal children, not listed
		if poll.IsTiebreaker {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", statusEmojis[poll.Status], poll.Question),
			Value: describePoll(poll),
		})
	}

	if len(fields) == 0 {
		c.announce(message.ChannelID, "No polls scheduled for this server.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:  "Scheduled Polls",
		Color:  0x3498db,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use the ID with delete, modify or clone.",
		},
	}

	if err := c.transport.AnnounceEmbed(message.ChannelID, "", embed); err != nil {
		c.logger.Errorw("failed to send poll list", "channel_id", message.ChannelID, "error", err)
	}
}

func describePoll(poll *models.Poll) string {
	lines := []string{"Status: " + poll.Status.CapitalizedString()}

	switch {
	case poll.Status == models.PollStatusActive:
		lines = append(lines, fmt.Sprintf("Voting open, closes %s", internal.DiscordTimestamp(poll.ResolveTime(), "R")))
	case poll.Status == models.PollStatusScheduled:
		lines = append(lines, fmt.Sprintf("Next send: %s (%s)",
			internal.DiscordTimestamp(poll.NextSendTime, "F"),
			internal.DiscordTimestamp(poll.NextSendTime, "R")))
	}

	if poll.Recurring && poll.ScheduleCron != nil {
		lines = append(lines, fmt.Sprintf("Repeats: %s at %d:%02d (%s)",
			poll.ScheduleCron.DayOfWeek, poll.ScheduleCron.Hour, poll.ScheduleCron.Minute, poll.ScheduleCron.Timezone))
	}

	labels := make([]string, 0, len(poll.Options))
	for _, option := range poll.Options {
		labels = append(labels, option.Label)
	}

	lines = append(lines,
		fmt.Sprintf("Posts to: <#%s> | Threshold: %d", poll.EffectiveChannelID(), poll.VoteThreshold),
		fmt.Sprintf("Options: %s", strings.Join(labels, ", ")),
		fmt.Sprintf("ID: `%s`", poll.ShortID()),
	)

	return strings.Join(lines, "\n")
}

func (c *listPollsCommand) announce(channelID, content string) {
	if err := c.transport.Announce(channelID, content); err != nil {
		c.logger.Errorw("failed to send message", "channel_id", channelID, "error", err)
	}
}
