package bot

import (
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	commandStart       = "start"
	commandAddExercise = "add_exercise"
	commandSkip        = "skip"
	commandHistory     = "history"
	commandExport      = "export"
	commandCancel      = "cancel"
)

// Состояния сценария добавления упражнения
const (
	stateAddExerciseName  = "add_exercise_name"
	stateAddExerciseGroup = "add_exercise_group"
	stateAddExercisePhoto = "add_exercise_photo"
)

var userStates = struct {
	sync.RWMutex
	states map[int64]string
}{states: make(map[int64]string)}

// addExerciseData накопленные данные сценария добавления упражнения
var addExerciseData = struct {
	sync.RWMutex
	name  map[int64]string
	group map[int64]string
}{
	name:  make(map[int64]string),
	group: make(map[int64]string),
}

func setState(chatID int64, state string) {
	userStates.Lock()
	userStates.states[chatID] = state
	userStates.Unlock()
}

func getState(chatID int64) string {
	userStates.RLock()
	defer userStates.RUnlock()
	return userStates.states[chatID]
}

func clearState(chatID int64) {
	userStates.Lock()
	delete(userStates.states, chatID)
	userStates.Unlock()

	addExerciseData.Lock()
	delete(addExerciseData.name, chatID)
	delete(addExerciseData.group, chatID)
	addExerciseData.Unlock()
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case commandStart:
		b.handleStart(chatID)

	case commandAddExercise:
		b.sendMessage(chatID, "➕ Добавление нового упражнения.\nВведите название упражнения:")
		setState(chatID, stateAddExerciseName)

	case commandSkip:
		if getState(chatID) == stateAddExercisePhoto {
			b.saveNewExercise(chatID, "")
			return
		}
		b.sendMessage(chatID, "Сейчас нечего пропускать")

	case commandHistory:
		b.handleHistory(chatID, message.CommandArguments())

	case commandExport:
		b.handleExport(chatID)

	case commandCancel:
		clearState(chatID)
		b.sendMessage(chatID, "Действие отменено")

	default:
		b.sendMessage(chatID, "Неизвестная команда. Доступны: /start, /add_exercise, /history, /export")
	}
}

// handleStart показывает меню с группами мышц
func (b *Bot) handleStart(chatID int64) {
	groups, err := b.catalog.MuscleGroups()
	if err != nil {
		b.sendError(chatID, "❌ Произошла ошибка. Попробуйте позже.", err)
		return
	}

	if len(groups) == 0 {
		b.sendMessage(chatID, "📋 Справочник упражнений пуст.\nИспользуйте /add_exercise для добавления упражнений.")
		return
	}

	b.sendMessageWithKeyboard(chatID, "🏋️ Выберите группу мышц:", groupsKeyboard(groups, "group_", nil))
}

// handleMessage обрабатывает обычные сообщения по текущему состоянию
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch getState(chatID) {
	case stateAddExerciseName:
		b.processExerciseName(message)
	case stateAddExerciseGroup:
		b.processGroupName(message)
	case stateAddExercisePhoto:
		b.processExercisePhoto(message)
	default:
		b.sendMessage(chatID, "Используйте /start для выбора упражнения")
	}
}

// processExerciseName принимает название нового упражнения
func (b *Bot) processExerciseName(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	name := strings.TrimSpace(message.Text)
	if err := validateExerciseName(name); err != nil {
		b.sendMessage(chatID, fmt.Sprintf("❌ %s. Попробуйте снова:", err))
		return
	}

	addExerciseData.Lock()
	addExerciseData.name[chatID] = name
	addExerciseData.Unlock()

	groups, err := b.catalog.MuscleGroups()
	if err != nil || len(groups) == 0 {
		b.sendMessage(chatID, "Введите название группы мышц (например: Спина, Грудь, Ноги):")
		setState(chatID, stateAddExerciseGroup)
		return
	}

	extra := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Новая группа", "new_group"),
	)
	text := fmt.Sprintf("📝 Название: %s\nВыберите группу мышц или создайте новую:", name)
	b.sendMessageWithKeyboard(chatID, text, groupsKeyboard(groups, "select_group_", extra))
}

// processGroupName принимает название новой группы мышц
func (b *Bot) processGroupName(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	group := strings.TrimSpace(message.Text)
	if group == "" {
		b.sendMessage(chatID, "❌ Название группы не может быть пустым. Попробуйте снова:")
		return
	}

	b.acceptGroup(chatID, group)
}

// acceptGroup запоминает группу и запрашивает фото тренажера
func (b *Bot) acceptGroup(chatID int64, group string) {
	addExerciseData.Lock()
	addExerciseData.group[chatID] = group
	name := addExerciseData.name[chatID]
	addExerciseData.Unlock()

	text := fmt.Sprintf("📝 Название: %s\n💪 Группа: %s\n\nОтправьте фото тренажера (или /skip для пропуска):", name, group)
	b.sendMessage(chatID, text)
	setState(chatID, stateAddExercisePhoto)
}

// processExercisePhoto принимает фото тренажера
func (b *Bot) processExercisePhoto(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if len(message.Photo) == 0 {
		b.sendMessage(chatID, "Отправьте фото тренажера (или /skip для пропуска):")
		return
	}

	// Последний размер — самый большой
	photoFileID := message.Photo[len(message.Photo)-1].FileID
	b.saveNewExercise(chatID, photoFileID)
}

// saveNewExercise сохраняет упражнение в справочник и завершает сценарий
func (b *Bot) saveNewExercise(chatID int64, photoFileID string) {
	addExerciseData.RLock()
	name := addExerciseData.name[chatID]
	group := addExerciseData.group[chatID]
	addExerciseData.RUnlock()

	// Накопленные шаги могли потеряться (например, после перезапуска) —
	// пустую строку в справочник не пишем
	if validateExerciseName(name) != nil {
		b.sendMessage(chatID, "❌ Данные упражнения потерялись. Начните заново: /add_exercise")
		clearState(chatID)
		return
	}

	if err := b.catalog.AddExercise(name, group, photoFileID); err != nil {
		b.sendError(chatID, "❌ Ошибка при сохранении упражнения.", err)
	} else {
		b.sendMessage(chatID, fmt.Sprintf("✅ Упражнение '%s' успешно добавлено!\nГруппа: %s", name, group))
	}

	clearState(chatID)
}
