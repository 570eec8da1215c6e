package logbook

import (
	"sort"
	"strings"
)

// SetResult один подход последней тренировки (для автозаполнения WebApp)
type SetResult struct {
	Weight      float64
	Reps        int
	RestMinutes float64
}

// SessionResult последняя тренировка по упражнению
type SessionResult struct {
	Sets []SetResult
	Note string
}

// HistoryEntry одна строка истории: подход любого упражнения,
// попавшего в тренировку вместе с целевым
type HistoryEntry struct {
	Date        string
	Exercise    string
	Weight      float64
	Reps        int
	RestMinutes float64
	SessionID   string
}

// LastSession возвращает подходы последней тренировки по упражнению
// в порядке выполнения.
//
// Границей тренировки считается пара (дата, Set_Group_ID): токены групп
// уникальны только внутри дня, и дата сама по себе склеила бы разные
// тренировки с одинаковым токеном. История (History) группирует иначе —
// это расхождение сохранено намеренно, см. DESIGN.md.
func (e *Engine) LastSession(exercise string) SessionResult {
	records := e.LoadRecords(exercise)
	if len(records) == 0 {
		return SessionResult{}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DateKey.After(records[j].DateKey)
	})

	latestDate := records[0].DateKey
	latestSession := records[0].SessionID
	latestNote := records[0].Note

	var selected []Record
	for _, r := range records {
		if r.DateKey.Equal(latestDate) && r.SessionID == latestSession {
			selected = append(selected, r)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Order < selected[j].Order
	})

	result := SessionResult{Note: latestNote}
	for _, r := range selected {
		result.Sets = append(result.Sets, SetResult{
			Weight:      r.Weight,
			Reps:        r.Reps,
			RestMinutes: r.RestMinutes,
		})
	}
	return result
}

// History возвращает последние limit тренировок, в которых встречалось
// упражнение, вместе со всеми упражнениями тех же тренировок (суперсеты).
// Тренировки идут от свежих к старым, подходы внутри — в порядке выполнения.
//
// Здесь тренировка определяется только по Set_Group_ID, без даты:
// токен, переиспользованный в разные дни, считается одной тренировкой.
func (e *Engine) History(exercise string, limit int) []HistoryEntry {
	if limit <= 0 {
		return nil
	}

	// Название сравнивается после обрезки пробелов, как и в LastSession
	exercise = strings.TrimSpace(exercise)

	records := e.LoadRecords("")
	if len(records) == 0 {
		return nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DateKey.After(records[j].DateKey)
	})

	// Собираем токены последних limit тренировок с целевым упражнением
	targetSessions := make(map[string]bool)
	for _, r := range records {
		if len(targetSessions) >= limit {
			break
		}
		if r.Exercise == exercise {
			targetSessions[r.SessionID] = true
		}
	}
	if len(targetSessions) == 0 {
		return nil
	}

	var selected []Record
	for _, r := range records {
		if targetSessions[r.SessionID] {
			selected = append(selected, r)
		}
	}

	// Сначала номер подхода, затем дата по убыванию: второй ключ
	// восстанавливает группировку по тренировкам после первого
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Order != selected[j].Order {
			return selected[i].Order < selected[j].Order
		}
		return selected[i].DateKey.After(selected[j].DateKey)
	})

	var history []HistoryEntry
	for _, r := range selected {
		history = append(history, HistoryEntry{
			Date:        r.DateDisplay,
			Exercise:    r.Exercise,
			Weight:      r.Weight,
			Reps:        r.Reps,
			RestMinutes: r.RestMinutes,
			SessionID:   r.SessionID,
		})
	}
	return history
}
