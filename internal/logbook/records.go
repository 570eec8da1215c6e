package logbook

import (
	"log"
	"strings"
	"time"
)

// Table абстракция над листом LOG: прочитать всё, дописать строки.
// Реализуется клиентом Google Sheets, в тестах — таблицей в памяти.
type Table interface {
	// ReadAll возвращает все строки листа, первая строка — заголовки
	ReadAll() ([][]string, error)
	// AppendRows дописывает строки в конец листа одним запросом
	AppendRows(rows [][]interface{}) error
}

// Названия колонок листа LOG
const (
	colDate     = "Date"
	colExercise = "Exercise"
	colWeight   = "Weight"
	colReps     = "Reps"
	colRest     = "Rest"
	colGroupID  = "Set_Group_ID"
	colOrder    = "Order"
	colNote     = "Note"
)

// Record один подход из журнала, приведённый к типизированному виду
type Record struct {
	DateDisplay string    // исходный текст даты, для отображения
	DateKey     time.Time // дата для сортировки и группировки
	Exercise    string
	Weight      float64
	Reps        int
	RestMinutes float64
	Order       int    // номер подхода внутри тренировки, с 1
	SessionID   string // общий токен всех подходов одной тренировки
	Note        string
}

// Engine движок восстановления журнала тренировок.
// Не хранит состояния между вызовами: каждый запрос заново читает таблицу.
type Engine struct {
	table Table
}

// NewEngine создаёт движок поверх таблицы журнала
func NewEngine(table Table) *Engine {
	return &Engine{table: table}
}

// LoadRecords читает журнал и возвращает типизированные записи в порядке
// строк листа. Если exerciseFilter не пустой — оставляет только подходы
// этого упражнения (сравнение строгое, после обрезки пробелов).
//
// Любая проблема с таблицей (недоступна, нет обязательных колонок)
// логируется и даёт пустой результат: для вызывающего "нет истории" и
// "историю не прочитать" выглядят одинаково.
func (e *Engine) LoadRecords(exerciseFilter string) []Record {
	rows, err := e.table.ReadAll()
	if err != nil {
		log.Printf("Ошибка чтения журнала: %v", err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	cols, ok := resolveColumns(rows[0])
	if !ok {
		log.Printf("В журнале нет обязательных колонок (%s, %s, %s, %s)",
			colDate, colExercise, colWeight, colReps)
		return nil
	}

	filter := strings.TrimSpace(exerciseFilter)
	seqBySession := make(map[string]int)

	var records []Record
	for _, row := range rows[1:] {
		exercise := strings.TrimSpace(cell(row, cols[colExercise]))
		if exercise == "" {
			continue
		}
		if filter != "" && exercise != filter {
			continue
		}

		dateDisplay := strings.TrimSpace(cell(row, cols[colDate]))
		sessionID := strings.TrimSpace(cell(row, cols[colGroupID]))

		seqBySession[sessionID]++
		order := ParseInteger(cell(row, cols[colOrder]), 0)
		if order <= 0 {
			// В старых строках номера подхода нет — нумеруем по порядку
			// появления внутри тренировки
			order = seqBySession[sessionID]
		}

		records = append(records, Record{
			DateDisplay: dateDisplay,
			DateKey:     ParseDate(dateDisplay),
			Exercise:    exercise,
			Weight:      ParseDecimal(cell(row, cols[colWeight]), 0),
			Reps:        ParseInteger(cell(row, cols[colReps]), 0),
			RestMinutes: ParseRestMinutes(cell(row, cols[colRest])),
			Order:       order,
			SessionID:   sessionID,
			Note:        strings.TrimSpace(cell(row, cols[colNote])),
		})
	}

	return records
}

// resolveColumns сопоставляет названия колонок с позициями в заголовке.
// Date, Exercise, Weight, Reps обязательны; Rest, Set_Group_ID, Order,
// Note могут отсутствовать (тогда их позиция -1 и cell вернёт "").
func resolveColumns(header []string) (map[string]int, bool) {
	cols := map[string]int{
		colDate:     -1,
		colExercise: -1,
		colWeight:   -1,
		colReps:     -1,
		colRest:     -1,
		colGroupID:  -1,
		colOrder:    -1,
		colNote:     -1,
	}

	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, known := cols[name]; known {
			cols[name] = i
		}
	}

	for _, required := range []string{colDate, colExercise, colWeight, colReps} {
		if cols[required] < 0 {
			return nil, false
		}
	}
	return cols, true
}

// cell возвращает значение ячейки или "" если колонки нет или строка короче
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
