package discord

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var channelMentionPattern = regexp.MustCompile(`^<#(\d+)>$`)

type ChannelInfo struct {
	ID   string
	Name string
}

// Transport is the narrow surface the engine needs from the chat platform.
type Transport interface {
	PostMessage(channelID, content string, embed *discordgo.MessageEmbed) (string, error)
	AddReaction(channelID, messageID, emoji string) error
	FetchReactionCounts(channelID, messageID string) (map[string]int, error)
	Announce(channelID, content string) error
	AnnounceEmbed(channelID, content string, embed *discordgo.MessageEmbed) error
	ListTextChannels(guildID string) ([]ChannelInfo, error)
	ResolveChannel(guildID, reference string) (string, bool)
}

type transport struct {
	session *discordgo.Session
	logger  *zap.SugaredLogger
}

func NewTransport(session *discordgo.Session, logger *zap.SugaredLogger) Transport {
	return &transport{
		session: session,
		logger:  logger,
	}
}

func (t *transport) PostMessage(channelID, content string, embed *discordgo.MessageEmbed) (string, error) {
	message, err := t.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embed:   embed,
	})
	if err != nil {
		return "", err
	}

	return message.ID, nil
}

func (t *transport) AddReaction(channelID, messageID, emoji string) error {
	return t.session.MessageReactionAdd(channelID, messageID, emoji)
}

func (t *transport) FetchReactionCounts(channelID, messageID string) (map[string]int, error) {
	message, err := t.session.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(message.Reactions))
	for _, reaction := range message.Reactions {
		counts[reaction.Emoji.Name] = reaction.Count
	}

	return counts, nil
}

func (t *transport) Announce(channelID, content string) error {
	_, err := t.session.ChannelMessageSend(channelID, content)
	return err
}

func (t *transport) AnnounceEmbed(channelID, content string, embed *discordgo.MessageEmbed) error {
	_, err := t.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embed:   embed,
	})
	return err
}

func (t *transport) ListTextChannels(guildID string) ([]ChannelInfo, error) {
	channels, err := t.session.GuildChannels(guildID)
	if err != nil {
		return nil, err
	}

	infos := make([]ChannelInfo, 0, len(channels))
	for _, channel := range channels {
		if channel.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		infos = append(infos, ChannelInfo{ID: channel.ID, Name: channel.Name})
	}

	return infos, nil
}

// ResolveChannel accepts a <#id> mention, a bare channel name (with or without
// a leading #) or a raw channel id.
func (t *transport) ResolveChannel(guildID, reference string) (string, bool) {
	reference = strings.TrimSpace(reference)

	if match := channelMentionPattern.FindStringSubmatch(reference); match != nil {
		reference = match[1]
	}

	channels, err := t.ListTextChannels(guildID)
	if err != nil {
		t.logger.Errorw("failed to list guild channels", "guild_id", guildID, "error", err)
		return "", false
	}

	name := strings.ToLower(strings.TrimPrefix(reference, "#"))
	for _, channel := range channels {
		if channel.ID == reference || strings.ToLower(channel.Name) == name {
			return channel.ID, true
		}
	}

	return "", false
}
