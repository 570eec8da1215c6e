// Package webapp описывает формат данных, которые присылает Telegram WebApp
// при сохранении тренировки. Один и тот же JSON приходит двумя путями:
// через Message.WebAppData в боте и через POST /api/webapp-data.
package webapp

import (
	"encoding/json"
	"fmt"

	"gymbot/internal/logbook"
)

// Payload пакет подходов от WebApp
type Payload struct {
	Type   string `json:"type"` // всегда "workout_data"
	UserID int64  `json:"user_id,omitempty"`
	Sets   []Set  `json:"payload"`
}

// Set один подход
type Set struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Rest     float64 `json:"rest"`
	Note     string  `json:"note,omitempty"`
}

// Decode разбирает JSON от WebApp и возвращает подходы для записи в журнал
// вместе с user_id (0, если не передан).
func Decode(data []byte) ([]logbook.SetInput, int64, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, 0, fmt.Errorf("ошибка парсинга данных: %w", err)
	}

	if p.Type != "workout_data" {
		return nil, 0, fmt.Errorf("неверный тип данных: %q", p.Type)
	}
	if len(p.Sets) == 0 {
		return nil, 0, fmt.Errorf("нет данных для сохранения")
	}

	sets := make([]logbook.SetInput, 0, len(p.Sets))
	for _, s := range p.Sets {
		sets = append(sets, logbook.SetInput{
			Exercise: s.Exercise,
			Weight:   s.Weight,
			Reps:     s.Reps,
			Rest:     s.Rest,
			Note:     s.Note,
		})
	}
	return sets, p.UserID, nil
}
