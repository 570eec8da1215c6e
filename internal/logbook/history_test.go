package logbook

import "testing"

func TestHistory_SupersetExpansion(t *testing.T) {
	// Свежая тренировка sid1 — суперсет Присед+Жим, старая sid0 — только
	// Присед. При limit=1 возвращаются обе строки sid1 и ничего из sid0.
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.20", "Присед", "80", "5", "90", "sid0", "1", ""},
		{"2025.11.23", "Присед", "85", "5", "90", "sid1", "1", ""},
		{"2025.11.23", "Жим лежа", "60", "8", "90", "sid1", "2", ""},
	}}
	engine := NewEngine(table)

	history := engine.History("Присед", 1)
	if len(history) != 2 {
		t.Fatalf("History() returned %d rows, want 2", len(history))
	}
	for _, h := range history {
		if h.SessionID != "sid1" {
			t.Errorf("SessionID = %q, want sid1 only", h.SessionID)
		}
	}
	if history[0].Exercise != "Присед" || history[1].Exercise != "Жим лежа" {
		t.Errorf("exercises = [%q, %q], want performance order [Присед, Жим лежа]",
			history[0].Exercise, history[1].Exercise)
	}
}

// TestHistoryMergesReusedIDAcrossDays: история группирует только по токену,
// без даты. Парный тест для LastSession — TestLastSessionSplitsReusedIDAcrossDays.
func TestHistoryMergesReusedIDAcrossDays(t *testing.T) {
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.20", "Присед", "80", "5", "90", "A", "1", ""},
		{"2025.11.23", "Присед", "85", "5", "90", "A", "1", ""},
	}}
	engine := NewEngine(table)

	history := engine.History("Присед", 1)
	if len(history) != 2 {
		t.Fatalf("History() returned %d rows, want 2 (reused id counts as one session)", len(history))
	}
}

func TestHistory_LimitCountsDistinctSessions(t *testing.T) {
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.18", "Присед", "75", "5", "90", "s1", "1", ""},
		{"2025.11.20", "Присед", "80", "5", "90", "s2", "1", ""},
		{"2025.11.20", "Присед", "80", "4", "90", "s2", "2", ""},
		{"2025.11.23", "Присед", "85", "5", "90", "s3", "1", ""},
	}}
	engine := NewEngine(table)

	history := engine.History("Присед", 2)
	if len(history) != 3 {
		t.Fatalf("History() returned %d rows, want 3 (sessions s3 and s2)", len(history))
	}
	for _, h := range history {
		if h.SessionID == "s1" {
			t.Errorf("row from s1 leaked past limit=2: %+v", h)
		}
	}
}

func TestHistory_SortOrder(t *testing.T) {
	// Внутри выборки: сначала номер подхода, при равных — дата по убыванию
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.20", "Присед", "80", "5", "90", "s1", "1", ""},
		{"2025.11.20", "Присед", "80", "4", "90", "s1", "2", ""},
		{"2025.11.23", "Присед", "85", "5", "90", "s2", "1", ""},
		{"2025.11.23", "Присед", "85", "4", "90", "s2", "2", ""},
	}}
	engine := NewEngine(table)

	history := engine.History("Присед", 10)
	if len(history) != 4 {
		t.Fatalf("History() returned %d rows, want 4", len(history))
	}
	type key struct {
		order int
		sid   string
	}
	want := []key{{1, "s2"}, {1, "s1"}, {2, "s2"}, {2, "s1"}}
	for i, w := range want {
		if history[i].SessionID != w.sid {
			t.Errorf("history[%d].SessionID = %q, want %q", i, history[i].SessionID, w.sid)
		}
	}
}

func TestHistory_UnknownExercise(t *testing.T) {
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.23", "Присед", "85", "5", "90", "sid1", "1", ""},
	}}
	engine := NewEngine(table)

	if history := engine.History("Становая тяга", 10); len(history) != 0 {
		t.Errorf("History() returned %d rows, want 0 for unknown exercise", len(history))
	}
}

func TestHistory_NonPositiveLimit(t *testing.T) {
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.23", "Присед", "85", "5", "90", "sid1", "1", ""},
	}}
	engine := NewEngine(table)

	if history := engine.History("Присед", 0); len(history) != 0 {
		t.Errorf("History(limit=0) returned %d rows, want 0", len(history))
	}
	if history := engine.History("Присед", -3); len(history) != 0 {
		t.Errorf("History(limit=-3) returned %d rows, want 0", len(history))
	}
}

func TestHistory_TrimsExerciseName(t *testing.T) {
	// Название с пробелами по краям должно находить те же тренировки,
	// что и чистое — как в LastSession
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.23", "Присед", "85", "5", "90", "sid1", "1", ""},
	}}
	engine := NewEngine(table)

	history := engine.History("  Присед ", 1)
	if len(history) != 1 {
		t.Fatalf("History(padded name) returned %d rows, want 1", len(history))
	}
	if history[0].Exercise != "Присед" {
		t.Errorf("Exercise = %q, want Присед", history[0].Exercise)
	}
}

func TestHistory_DateFieldKeepsDisplayText(t *testing.T) {
	table := &fakeTable{rows: [][]string{
		logHeader(),
		{"2025.11.23, 19:17", "Присед", "85", "5", "90", "sid1", "1", ""},
	}}
	engine := NewEngine(table)

	history := engine.History("Присед", 1)
	if len(history) != 1 {
		t.Fatalf("History() returned %d rows, want 1", len(history))
	}
	if history[0].Date != "2025.11.23, 19:17" {
		t.Errorf("Date = %q, want original cell text", history[0].Date)
	}
}
