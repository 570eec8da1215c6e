package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"gymbot/internal/config"
	"gymbot/internal/gsheets"
	"gymbot/internal/logbook"
)

// Bot представляет Telegram бота трекинга тренировок
type Bot struct {
	api     *tgbotapi.BotAPI
	engine  *logbook.Engine
	catalog *gsheets.Client
	config  *config.Config
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, engine *logbook.Engine, catalog *gsheets.Client, cfg *config.Config) *Bot {
	return &Bot{
		api:     api,
		engine:  engine,
		catalog: catalog,
		config:  cfg,
	}
}

// Start запускает напоминания и цикл обработки обновлений
func (b *Bot) Start() error {
	b.startReminder()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	b.handleUpdates(b.api.GetUpdatesChan(u))
	return nil
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		if update.Message.WebAppData != nil {
			b.handleWebAppData(update.Message)
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}

		b.handleMessage(update.Message)
	}
}

// answerCallback закрывает "часики" на кнопке
func (b *Bot) answerCallback(callbackID, text string) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.api.Request(callback); err != nil {
		log.Printf("Ошибка ответа на callback: %v", err)
	}
}
