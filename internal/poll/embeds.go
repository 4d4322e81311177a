package poll

import (
	"fmt"
	"strings"
	"time"

	"poll_scheduling_system/internal"
	"poll_scheduling_system/internal/db/models"

	"github.com/bwmarrin/discordgo"
)

const (
	colorBlue   = 0x3498db
	colorGreen  = 0x2ecc71
	colorRed    = 0xe74c3c
	colorOrange = 0xe67e22
)

var medals = []string{"🥇", "🥈", "🥉"}

func pollEmbed(p *models.Poll, now, endTime time.Time) *discordgo.MessageEmbed {
	var options strings.Builder
	for _, option := range p.Options {
		fmt.Fprintf(&options, "%s %s\n", option.Emoji, option.Label)
	}

	return &discordgo.MessageEmbed{
		Title:     p.Question,
		Color:     colorBlue,
		Timestamp: now.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Options", Value: options.String()},
			{
				Name: "Poll Ends",
				Value: fmt.Sprintf("%s (%s)",
					internal.DiscordTimestamp(endTime, "F"),
					internal.DiscordTimestamp(endTime, "R")),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("React to vote! Minimum %d votes needed per option.", p.VoteThreshold),
		},
	}
}

func resultsEmbed(p *models.Poll, results, qualifying []OptionResult, threshold int, now time.Time) *discordgo.MessageEmbed {
	var ranked strings.Builder
	for i, result := range qualifying {
		medal := fmt.Sprintf("#%d", i+1)
		if i < len(medals) {
			medal = medals[i]
		}
		fmt.Fprintf(&ranked, "%s %s — **%d** vote(s)\n", medal, result.Label, result.Votes)
	}

	winner := qualifying[0]

	fields := []*discordgo.MessageEmbedField{
		{Name: "Results", Value: ranked.String()},
		{
			Name:  "Winner",
			Value: fmt.Sprintf("**%s** with %d vote(s)!", winner.Label, winner.Votes),
		},
	}

	var disqualified []string
	for _, result := range results {
		if result.Votes < threshold && result.Votes > 0 {
			disqualified = append(disqualified, fmt.Sprintf("%s (%d)", result.Label, result.Votes))
		}
	}
	if len(disqualified) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Below threshold (%d votes needed)", threshold),
			Value: strings.Join(disqualified, ", "),
		})
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Poll Results: %s", p.Question),
		Color:     colorGreen,
		Timestamp: now.UTC().Format(time.RFC3339),
		Fields:    fields,
	}
}

func unresolvedTieEmbed(p *models.Poll, tied []OptionResult, now time.Time) *discordgo.MessageEmbed {
	var lines strings.Builder
	for _, result := range tied {
		fmt.Fprintf(&lines, "- **%s** (%d votes)\n", result.Label, result.Votes)
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Tiebreaker Results: %s", p.Question),
		Color:     colorOrange,
		Timestamp: now.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Still tied!",
				Value: fmt.Sprintf("The tiebreaker poll also ended in a tie:\n%s\nYou'll need to decide among yourselves!",
					lines.String()),
			},
		},
	}
}

func noQualifiersEmbed(p *models.Poll, threshold int, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Poll Results: %s", p.Question),
		Color:     colorRed,
		Timestamp: now.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Results",
				Value: fmt.Sprintf("No options met the minimum threshold of %d vote(s).", threshold),
			},
		},
	}
}
