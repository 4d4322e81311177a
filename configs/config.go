package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type PollSchedulerBotConfig struct {
	App    App
	Bot    Bot
	DB     DB
	Logger Logger
}

func LoadPollSchedulerBotConfig() (PollSchedulerBotConfig, error) {
	var config PollSchedulerBotConfig

	if err := env.Parse(&config); err != nil {
		return PollSchedulerBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
