package main

import (
	"poll_scheduling_system/configs"
	"poll_scheduling_system/internal/db"
	"poll_scheduling_system/internal/db/repositories"
	"poll_scheduling_system/internal/di"
	"poll_scheduling_system/internal/discord"
	discordbot "poll_scheduling_system/internal/discord_bot"
	"poll_scheduling_system/internal/discord_bot/commands"
	"poll_scheduling_system/internal/discord_bot/handlers"
	"poll_scheduling_system/internal/poll"
	"poll_scheduling_system/internal/scheduler"
	"poll_scheduling_system/internal/services"
	"poll_scheduling_system/internal/wizard"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger := zap.Must(zap.NewProduction()).Sugar()

	logger.Info("loading config")
	config, err := configs.LoadPollSchedulerBotConfig()
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger = di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	session, err := discordgo.New("Bot " + config.Bot.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	pollRepository := repositories.NewPollRepository(database)
	clock := scheduler.SystemClock()
	triggerScheduler := scheduler.NewTriggerScheduler(clock, logger)
	transport := discord.NewTransport(session, logger)
	dateTimeParser := services.NewDateTimeParser(clock)
	eventCreator := services.NewEventService(session, logger)

	lifecycleManager := poll.NewLifecycleManager(
		pollRepository,
		triggerScheduler,
		transport,
		eventCreator,
		dateTimeParser,
		clock,
		logger,
	)

	sessionManager := wizard.NewSessionManager(
		lifecycleManager,
		transport,
		dateTimeParser,
		clock,
		config.Bot.CommandPrefix,
		logger,
	)

	// jobs must be re-derived from persisted state before messages flow
	triggerScheduler.Start()
	defer triggerScheduler.Stop()

	if err := lifecycleManager.Reconcile(); err != nil {
		logger.Fatalw("failed to reconcile scheduler jobs", "error", err)
	}

	logger.Info("starting bot")
	err = discordbot.NewBot(
		session,
		handlers.NewCommandHandler(
			config.Bot.CommandPrefix,
			sessionManager,
			transport,
			logger,
			[]commands.Command{
				commands.NewSchedulePollCommand(sessionManager, logger),
				commands.NewCancelCreationCommand(sessionManager, logger),
				commands.NewListPollsCommand(pollRepository, transport, logger),
				commands.NewDeletePollCommand(pollRepository, lifecycleManager, transport, logger),
				commands.NewModifyPollCommand(pollRepository, sessionManager, transport, logger),
				commands.NewClonePollCommand(pollRepository, sessionManager, transport, logger),
			},
		),
		logger,
	).Start()
	if err != nil {
		logger.Fatalw("bot stopped with error", "error", err)
	}
}
