package bot

import (
	"log"

	"github.com/robfig/cron"
)

// startReminder запускает напоминание о тренировке по расписанию из
// конфигурации. Если расписание или чат не заданы — ничего не делает.
func (b *Bot) startReminder() {
	if b.config.ReminderCron == "" || b.config.ReminderChatID == 0 {
		return
	}

	c := cron.New()
	err := c.AddFunc(b.config.ReminderCron, func() {
		b.sendMessage(b.config.ReminderChatID, "🏋️ Пора на тренировку! /start — выбрать упражнение")
	})
	if err != nil {
		log.Printf("Ошибка расписания напоминаний (%s): %v", b.config.ReminderCron, err)
		return
	}

	c.Start()
	log.Printf("Напоминания о тренировке включены: %s", b.config.ReminderCron)
}
