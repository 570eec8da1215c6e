package bot

import (
	"fmt"
	"net/url"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"gymbot/internal/excel"
	"gymbot/internal/webapp"
)

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		b.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case strings.HasPrefix(data, "group_"):
		b.showExercises(chatID, callback.ID, strings.TrimPrefix(data, "group_"))

	case strings.HasPrefix(data, "exercise_"):
		b.showExercise(chatID, callback.ID, strings.TrimPrefix(data, "exercise_"))

	case strings.HasPrefix(data, "select_group_"):
		b.answerCallback(callback.ID, "")
		b.acceptGroup(chatID, strings.TrimPrefix(data, "select_group_"))

	case data == "new_group":
		b.answerCallback(callback.ID, "")
		b.sendMessage(chatID, "Введите название новой группы мышц:")
		setState(chatID, stateAddExerciseGroup)

	default:
		b.answerCallback(callback.ID, "")
	}
}

// showExercises показывает упражнения выбранной группы мышц
func (b *Bot) showExercises(chatID int64, callbackID, muscleGroup string) {
	exercises, err := b.catalog.ExercisesByGroup(muscleGroup)
	if err != nil {
		b.answerCallback(callbackID, "Произошла ошибка")
		b.sendError(chatID, "❌ Произошла ошибка. Попробуйте позже.", err)
		return
	}

	if len(exercises) == 0 {
		b.answerCallback(callbackID, "В этой группе пока нет упражнений")
		return
	}

	// По одной кнопке в ряд
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, ex := range exercises {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ex.Name, "exercise_"+ex.Name),
		))
	}

	b.answerCallback(callbackID, "")
	text := fmt.Sprintf("💪 %s\n\nВыберите упражнение:", muscleGroup)
	b.sendMessageWithKeyboard(chatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// showExercise показывает упражнение: фото тренажера, прошлые результаты
// и кнопку WebApp для записи подходов
func (b *Bot) showExercise(chatID int64, callbackID, exerciseName string) {
	b.answerCallback(callbackID, "")

	// Фото тренажера, если сохранено
	if photoID, err := b.catalog.ExercisePhotoID(exerciseName); err == nil && photoID != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(photoID))
		photo.Caption = "🏋️ " + exerciseName
		if _, err := b.api.Send(photo); err != nil {
			b.sendError(chatID, "", err)
		}
	}

	// Последние результаты из кэша — для подсказки и автозаполнения
	lastWeight, lastReps, err := b.catalog.LastResults(exerciseName)
	if err != nil {
		b.sendError(chatID, "", err)
	}

	text := "🏋️ " + exerciseName
	if lastWeight > 0 || lastReps > 0 {
		text += fmt.Sprintf("\n\n📊 Прошлый раз: %vкг × %d", lastWeight, lastReps)
	}

	if b.config.WebAppURL == "" {
		b.sendMessage(chatID, text)
		return
	}

	webappURL := fmt.Sprintf("%s?ex=%s&w=%v&r=%d",
		b.config.WebAppURL, url.QueryEscape(exerciseName), lastWeight, lastReps)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			webAppButton("📝 Записать подход", webappURL),
		),
	)
	b.sendMessageWithKeyboard(chatID, text, keyboard)
}

// handleWebAppData сохраняет тренировку, присланную из WebApp
func (b *Bot) handleWebAppData(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	sets, _, err := webapp.Decode([]byte(message.WebAppData.Data))
	if err != nil {
		b.sendError(chatID, "❌ Неверный формат данных", err)
		return
	}

	// Один токен на весь пакет: по нему подходы склеиваются в тренировку
	sessionID := uuid.New().String()

	if !b.engine.AppendSession(sets, sessionID) {
		b.sendMessage(chatID, "❌ Ошибка при сохранении данных")
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("✅ Записано подходов: %d", len(sets)))
}

// handleHistory показывает последние тренировки с упражнением,
// включая остальные упражнения тех же тренировок (суперсеты)
func (b *Bot) handleHistory(chatID int64, args string) {
	exercise := strings.TrimSpace(args)
	if exercise == "" {
		b.sendMessage(chatID, "Укажите упражнение: /history Присед")
		return
	}

	entries := b.engine.History(exercise, 10)
	if len(entries) == 0 {
		b.sendMessage(chatID, fmt.Sprintf("По упражнению «%s» записей не найдено", exercise))
		return
	}

	// Выдача движка отсортирована по номеру подхода, тренировки в ней
	// перемежаются — для показа собираем подходы обратно по токену
	order := make([]string, 0)
	bySession := make(map[string][]string)
	dates := make(map[string]string)
	for _, e := range entries {
		if _, seen := bySession[e.SessionID]; !seen {
			order = append(order, e.SessionID)
			dates[e.SessionID] = e.Date
		}
		bySession[e.SessionID] = append(bySession[e.SessionID],
			fmt.Sprintf("  %s — %vкг × %d, отдых %v мин", e.Exercise, e.Weight, e.Reps, e.RestMinutes))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 История: %s\n", exercise))
	for _, sid := range order {
		sb.WriteString(fmt.Sprintf("\n📅 %s\n", dates[sid]))
		sb.WriteString(strings.Join(bySession[sid], "\n"))
		sb.WriteString("\n")
	}

	b.sendMessage(chatID, sb.String())
}

// handleExport отправляет журнал тренировок файлом xlsx
func (b *Bot) handleExport(chatID int64) {
	records := b.engine.LoadRecords("")
	if len(records) == 0 {
		b.sendMessage(chatID, "Журнал пуст — экспортировать нечего")
		return
	}

	data, err := excel.LogWorkbook(records)
	if err != nil {
		b.sendError(chatID, "❌ Ошибка экспорта журнала", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "Журнал тренировок.xlsx",
		Bytes: data,
	})
	doc.Caption = fmt.Sprintf("📒 Журнал тренировок: %d подходов", len(records))
	if _, err := b.api.Send(doc); err != nil {
		b.sendError(chatID, "❌ Не удалось отправить файл", err)
	}
}
