package discordbot

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poll_scheduling_system/internal/discord_bot/handlers"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type bot struct {
	session *discordgo.Session
	handler handlers.CommandHandler
	logger  *zap.SugaredLogger
}

type Bot interface {
	Start() error
}

func NewBot(session *discordgo.Session, handler handlers.CommandHandler, logger *zap.SugaredLogger) Bot {
	return &bot{
		session: session,
		handler: handler,
		logger:  logger,
	}
}

// Start opens the gateway connection and blocks until SIGINT or SIGTERM.
func (b *bot) Start() error {
	b.session.AddHandler(func(session *discordgo.Session, message *discordgo.MessageCreate) {
		b.handler.Handle(session, message)
	})
	b.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	go func() {
		b.logger.Info("setting up health check server")
		b.settingUpHealthCheckServer()
	}()

	if err := b.session.Open(); err != nil {
		return err
	}
	b.logger.Info("bot started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return b.session.Close()
}

func (b *bot) settingUpHealthCheckServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/poll-scheduler-bot/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: ":8080", Handler: mux}

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		b.logger.Errorw("failed to start http server", "error", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		b.logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	b.logger.Info("shutting down")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
