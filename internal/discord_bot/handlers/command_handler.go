package handlers

import (
	"fmt"
	"strings"

	"poll_scheduling_system/internal/discord"
	"poll_scheduling_system/internal/discord_bot/commands"
	"poll_scheduling_system/internal/wizard"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type CommandHandler interface {
	Handle(session *discordgo.Session, message *discordgo.MessageCreate)
}

type commandHandler struct {
	commandPrefix  string
	sessionManager *wizard.SessionManager
	transport      discord.Transport
	logger         *zap.SugaredLogger

	commands []commands.Command
}

func NewCommandHandler(
	commandPrefix string,
	sessionManager *wizard.SessionManager,
	transport discord.Transport,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &commandHandler{
		commandPrefix:  commandPrefix,
		sessionManager: sessionManager,
		transport:      transport,
		logger:         logger,
		commands:       commands,
	}
}

// Handle routes an incoming message: prefixed messages dispatch to a command,
// everything else is offered to the wizard as a step reply.
func (h *commandHandler) Handle(session *discordgo.Session, message *discordgo.MessageCreate) {
	if message.Author == nil || message.Author.Bot {
		return
	}
	if session.State != nil && session.State.User != nil && message.Author.ID == session.State.User.ID {
		return
	}

	content := strings.TrimSpace(message.Content)

	if !strings.HasPrefix(content, h.commandPrefix) {
		h.sessionManager.HandleMessage(message.GuildID, message.Author.ID, message.ChannelID, content)
		return
	}

	rest := strings.TrimSpace(strings.TrimPrefix(content, h.commandPrefix))
	if rest == "" {
		h.sendHelp(message.ChannelID)
		return
	}

	parts := strings.SplitN(rest, " ", 2)
	command := strings.ToLower(parts[0])
	arguments := ""
	if len(parts) > 1 {
		arguments = parts[1]
	}

	h.logger.Infow("received command", "command", command, "guild_id", message.GuildID, "user_id", message.Author.ID)

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			handler.Handle(command, arguments, message)
			return
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	h.sendHelp(message.ChannelID)
}

func (h *commandHandler) sendHelp(channelID string) {
	help := fmt.Sprintf(
		"**Poll scheduler commands:**\n"+
			"`%[1]s schedule` — create a new scheduled poll\n"+
			"`%[1]s list` — list this server's polls\n"+
			"`%[1]s modify <id>` — modify a poll\n"+
			"`%[1]s clone <id>` — clone a poll into a new one\n"+
			"`%[1]s delete <id>` — delete a poll\n"+
			"`%[1]s cancel` — cancel an in-progress poll creation",
		h.commandPrefix)

	if err := h.transport.Announce(channelID, help); err != nil {
		h.logger.Errorw("failed to send help message", "channel_id", channelID, "error", err)
	}
}
