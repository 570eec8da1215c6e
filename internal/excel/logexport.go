package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"gymbot/internal/logbook"
)

// SheetJournal название листа в файле экспорта
const SheetJournal = "Журнал"

var journalHeaders = []string{
	"Дата", "Упражнение", "Вес (кг)", "Повторы", "Отдых (мин)", "№ подхода", "Тренировка", "Заметка",
}

// LogWorkbook собирает xlsx файл с журналом тренировок для выгрузки в чат
func LogWorkbook(records []logbook.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Ошибка закрытия файла: %v", err)
		}
	}()

	f.SetSheetName("Sheet1", SheetJournal)

	// Стиль заголовков колонок
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, header := range journalHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetJournal, cell, header)
		f.SetCellStyle(SheetJournal, cell, cell, headerStyle)
	}

	for i, r := range records {
		row := i + 2
		values := []interface{}{
			r.DateDisplay,
			r.Exercise,
			r.Weight,
			r.Reps,
			r.RestMinutes,
			r.Order,
			r.SessionID,
			r.Note,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(SheetJournal, cell, v)
		}
	}

	f.SetColWidth(SheetJournal, "A", "A", 18)
	f.SetColWidth(SheetJournal, "B", "B", 28)
	f.SetColWidth(SheetJournal, "G", "G", 38)
	f.SetColWidth(SheetJournal, "H", "H", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения файла: %w", err)
	}
	return buf.Bytes(), nil
}
