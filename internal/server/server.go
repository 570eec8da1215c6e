// Package server реализует HTTP API для WebApp фронтенда: справочник
// упражнений, история и сохранение подходов. Бот и API работают с одним
// движком журнала.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gymbot/internal/gsheets"
	"gymbot/internal/logbook"
)

// Catalog справочник упражнений (реализуется клиентом Google Sheets)
type Catalog interface {
	MuscleGroups() ([]string, error)
	ExercisesByGroup(muscleGroup string) ([]gsheets.ExerciseInfo, error)
}

// Notify отправляет пользователю сообщение в Telegram (nil — не отправлять)
type Notify func(chatID int64, text string)

// Server HTTP API для WebApp
type Server struct {
	engine  *logbook.Engine
	catalog Catalog
	notify  Notify
	router  chi.Router
}

// New создаёт сервер со всеми маршрутами
func New(engine *logbook.Engine, catalog Catalog, notify Notify) *Server {
	s := &Server{
		engine:  engine,
		catalog: catalog,
		notify:  notify,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(CORS)

	s.router.Get("/", s.handleHealth)
	s.router.Get("/health", s.handleHealth)

	s.router.Get("/api/muscle-groups", s.handleMuscleGroups)
	s.router.Get("/api/exercises", s.handleExercises)
	s.router.Get("/api/exercise-history", s.handleExerciseHistory)
	s.router.Get("/api/last-workout", s.handleLastWorkout)
	s.router.Post("/api/webapp-data", s.handleWebAppData)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// Формат ответов тот же, что ждёт фронтенд:
// {"status":"success","data":...} или {"status":"error","message":"..."}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "error",
		"message": message,
	})
}
