package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"gymbot/internal/webapp"
)

func (s *Server) handleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.catalog.MuscleGroups()
	if err != nil {
		log.Printf("Ошибка получения групп мышц: %v", err)
		writeError(w, http.StatusInternalServerError, "не удалось прочитать справочник")
		return
	}
	writeSuccess(w, groups)
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	if group == "" {
		writeError(w, http.StatusBadRequest, "параметр 'group' обязателен")
		return
	}

	exercises, err := s.catalog.ExercisesByGroup(group)
	if err != nil {
		log.Printf("Ошибка получения упражнений: %v", err)
		writeError(w, http.StatusInternalServerError, "не удалось прочитать справочник")
		return
	}

	type exerciseJSON struct {
		Name  string `json:"name"`
		Desc  string `json:"desc"`
		Image string `json:"image"`
	}
	result := make([]exerciseJSON, 0, len(exercises))
	for _, ex := range exercises {
		result = append(result, exerciseJSON{
			Name:  ex.Name,
			Desc:  ex.Description,
			Image: ex.ImageURL,
		})
	}
	writeSuccess(w, result)
}

func (s *Server) handleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeError(w, http.StatusBadRequest, "параметр 'exercise' обязателен")
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "параметр 'limit' должен быть числом")
			return
		}
		limit = n
	}

	entries := s.engine.History(exercise, limit)

	type historyJSON struct {
		Date        string  `json:"date"`
		Exercise    string  `json:"exercise"`
		Weight      float64 `json:"weight"`
		Reps        int     `json:"reps"`
		RestMinutes float64 `json:"rest_minutes"`
		SessionID   string  `json:"set_group_id"`
	}
	result := make([]historyJSON, 0, len(entries))
	for _, e := range entries {
		result = append(result, historyJSON{
			Date:        e.Date,
			Exercise:    e.Exercise,
			Weight:      e.Weight,
			Reps:        e.Reps,
			RestMinutes: e.RestMinutes,
			SessionID:   e.SessionID,
		})
	}
	writeSuccess(w, result)
}

// handleLastWorkout отдаёт последнюю тренировку по упражнению —
// WebApp заполняет ей форму подходов
func (s *Server) handleLastWorkout(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeError(w, http.StatusBadRequest, "параметр 'exercise' обязателен")
		return
	}

	session := s.engine.LastSession(exercise)

	type setJSON struct {
		Weight      float64 `json:"weight"`
		Reps        int     `json:"reps"`
		RestMinutes float64 `json:"rest_minutes"`
	}
	sets := make([]setJSON, 0, len(session.Sets))
	for _, set := range session.Sets {
		sets = append(sets, setJSON{
			Weight:      set.Weight,
			Reps:        set.Reps,
			RestMinutes: set.RestMinutes,
		})
	}
	writeSuccess(w, map[string]interface{}{
		"sets": sets,
		"note": session.Note,
	})
}

// handleWebAppData сохраняет тренировку, присланную фронтендом напрямую
// по HTTP (альтернатива tg.sendData)
func (s *Server) handleWebAppData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "не удалось прочитать запрос")
		return
	}

	sets, userID, err := webapp.Decode(body)
	if err != nil {
		log.Printf("Неверные данные от WebApp: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := uuid.New().String()
	if !s.engine.AppendSession(sets, sessionID) {
		writeError(w, http.StatusInternalServerError, "ошибка при сохранении данных")
		return
	}

	if userID != 0 && s.notify != nil {
		s.notify(userID, fmt.Sprintf("✅ Записано подходов: %d", len(sets)))
	}

	writeSuccess(w, map[string]interface{}{
		"sets_count":   len(sets),
		"set_group_id": sessionID,
	})
}
