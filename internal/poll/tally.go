package poll

import (
	"sort"

	"poll_scheduling_system/internal/db/models"
)

// OptionResult is one option's corrected tally.
type OptionResult struct {
	Label string
	Emoji string
	Votes int
}

// TallyVotes corrects raw reaction counts (the posting bot contributes one
// reaction per option, so one vote is subtracted, clamped at zero) and ranks
// options by votes descending, keeping the original option order among equals.
func TallyVotes(options []models.PollOption, counts map[string]int) []OptionResult {
	results := make([]OptionResult, 0, len(options))
	for _, option := range options {
		votes := counts[option.Emoji] - 1
		if votes < 0 {
			votes = 0
		}
		results = append(results, OptionResult{
			Label: option.Label,
			Emoji: option.Emoji,
			Votes: votes,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Votes > results[j].Votes
	})

	return results
}

// Qualifying filters results down to those meeting the vote threshold.
func Qualifying(results []OptionResult, threshold int) []OptionResult {
	qualifying := make([]OptionResult, 0, len(results))
	for _, result := range results {
		if result.Votes >= threshold {
			qualifying = append(qualifying, result)
		}
	}
	return qualifying
}

// IsTie reports whether the top ranks are tied among qualifying options.
func IsTie(qualifying []OptionResult) bool {
	return len(qualifying) >= 2 && qualifying[0].Votes == qualifying[1].Votes
}

// TiedLeaders returns every qualifying option sharing the top vote count.
func TiedLeaders(qualifying []OptionResult) []OptionResult {
	if len(qualifying) == 0 {
		return nil
	}

	top := qualifying[0].Votes
	tied := make([]OptionResult, 0, len(qualifying))
	for _, result := range qualifying {
		if result.Votes == top {
			tied = append(tied, result)
		}
	}
	return tied
}
