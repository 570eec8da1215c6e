package main

import (
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"gymbot/internal/bot"
	"gymbot/internal/config"
	"gymbot/internal/gsheets"
	"gymbot/internal/logbook"
	"gymbot/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	sheets, err := gsheets.NewClient(cfg.GoogleCredentialsPath, cfg.GoogleCredentialsJSON, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("Ошибка подключения к Google Sheets: %v", err)
	}

	engine := logbook.NewEngine(sheets)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Ошибка создания бота: %v", err)
	}
	log.Printf("Бот авторизован: @%s", api.Self.UserName)

	notify := func(chatID int64, text string) {
		if _, err := api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			log.Printf("Ошибка отправки уведомления: %v", err)
		}
	}

	srv := server.New(engine, sheets, notify)
	go func() {
		addr := ":" + cfg.Port
		log.Printf("HTTP API запущен на %s", addr)
		if err := http.ListenAndServe(addr, srv); err != nil {
			log.Fatalf("Ошибка HTTP сервера: %v", err)
		}
	}()

	telegramBot := bot.New(api, engine, sheets, cfg)
	if err := telegramBot.Start(); err != nil {
		log.Fatal(err)
	}
}
