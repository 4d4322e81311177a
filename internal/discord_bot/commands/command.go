package commands

import (
	"github.com/bwmarrin/discordgo"
)

type Command interface {
	CanHandle(command string) bool
	Handle(command, arguments string, message *discordgo.MessageCreate)
}
