package logbook

import (
	"log"
	"time"
)

// SetInput один подход для записи в журнал
type SetInput struct {
	Exercise string
	Weight   float64
	Reps     int
	Rest     float64 // как прислал клиент: секунды или минуты
	Note     string
	Order    int // 0 — проставить по позиции в пакете
}

// Формат даты в колонке Date, как пишет WebApp: "2025.11.23, 19:17"
const timestampLayout = "2006.01.02, 15:04"

// AppendSession дописывает подходы одной тренировки в журнал.
// Все строки получают общий таймштамп и общий sessionID; отдых приводится
// к минутам той же эвристикой, что и при чтении, чтобы записанное и
// прочитанное совпадали.
//
// Возвращает false при любой ошибке таблицы. Операция не идемпотентна:
// повтор после неудачи с новым sessionID может продублировать строки —
// это принятое следствие append-only хранилища без транзакций.
func (e *Engine) AppendSession(sets []SetInput, sessionID string) bool {
	if len(sets) == 0 {
		return false
	}

	timestamp := time.Now().Format(timestampLayout)

	rows := make([][]interface{}, 0, len(sets))
	for i, set := range sets {
		order := set.Order
		if order <= 0 {
			order = i + 1
		}

		// Порядок колонок листа LOG:
		// Date, Exercise, Weight, Reps, Rest, Set_Group_ID, Order, Note
		rows = append(rows, []interface{}{
			timestamp,
			set.Exercise,
			set.Weight,
			set.Reps,
			restToMinutes(set.Rest),
			sessionID,
			order,
			set.Note,
		})
	}

	if err := e.table.AppendRows(rows); err != nil {
		log.Printf("Ошибка записи тренировки в журнал (session=%s): %v", sessionID, err)
		return false
	}

	log.Printf("Записано %d подходов в журнал (session=%s)", len(rows), sessionID)
	return true
}
