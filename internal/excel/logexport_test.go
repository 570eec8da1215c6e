package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"gymbot/internal/logbook"
)

func TestLogWorkbook(t *testing.T) {
	records := []logbook.Record{
		{
			DateDisplay: "2025.11.23, 19:17",
			DateKey:     time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC),
			Exercise:    "Присед",
			Weight:      85,
			Reps:        5,
			RestMinutes: 1.5,
			Order:       1,
			SessionID:   "sid1",
			Note:        "тяжело",
		},
		{
			DateDisplay: "2025.11.23, 19:17",
			Exercise:    "Жим лежа",
			Weight:      60,
			Reps:        8,
			Order:       2,
			SessionID:   "sid1",
		},
	}

	data, err := LogWorkbook(records)
	if err != nil {
		t.Fatalf("LogWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetJournal)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	// Заголовок + по строке на подход
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Дата" || rows[0][1] != "Упражнение" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "Присед" {
		t.Errorf("rows[1][1] = %q, want %q", rows[1][1], "Присед")
	}
	if rows[2][1] != "Жим лежа" {
		t.Errorf("rows[2][1] = %q, want %q", rows[2][1], "Жим лежа")
	}
}
