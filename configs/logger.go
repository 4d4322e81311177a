package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"poll-scheduler-bot"`
	URL     string `env:"LOGGER_URL"`
}
