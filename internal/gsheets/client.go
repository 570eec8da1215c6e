package gsheets

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"gymbot/internal/logbook"
)

// Листы рабочей таблицы
const (
	SheetLog         = "LOG"          // журнал тренировок
	SheetExercises   = "EXERCISES"    // справочник упражнений
	SheetLastResults = "LAST_RESULTS" // кэш последних результатов
)

// Client клиент для работы с таблицей тренировок в Google Sheets
type Client struct {
	sheets        *sheets.Service
	spreadsheetID string
}

// NewClient создаёт клиент Google Sheets.
// Credentials берутся из credentialsJSON (строка JSON, для деплоя),
// иначе из файла credentialsPath.
func NewClient(credentialsPath, credentialsJSON, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID не задан")
	}

	var data []byte
	if credentialsJSON != "" {
		data = []byte(credentialsJSON)
	} else {
		var err error
		data, err = os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("не удалось прочитать credentials: %w", err)
		}
	}

	ctx := context.Background()
	config, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Sheets сервиса: %w", err)
	}

	return &Client{
		sheets:        srv,
		spreadsheetID: spreadsheetID,
	}, nil
}

// ReadAll читает весь лист LOG: первая строка — заголовки, дальше данные.
// Табличная часть интерфейса logbook.Table.
func (c *Client) ReadAll() ([][]string, error) {
	ctx := context.Background()

	resp, err := c.sheets.Spreadsheets.Values.Get(c.spreadsheetID, SheetLog).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %s: %w", SheetLog, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%v", v)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// AppendRows дописывает строки в конец листа LOG одним запросом
func (c *Client) AppendRows(rows [][]interface{}) error {
	ctx := context.Background()

	valueRange := &sheets.ValueRange{Values: rows}
	_, err := c.sheets.Spreadsheets.Values.Append(c.spreadsheetID, SheetLog+"!A1", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ошибка записи в лист %s: %w", SheetLog, err)
	}
	return nil
}

// ExerciseInfo упражнение из справочника EXERCISES
type ExerciseInfo struct {
	Name        string
	MuscleGroup string
	Description string
	ImageURL    string
	PhotoFileID string
}

// readExercises читает справочник целиком
func (c *Client) readExercises() ([]ExerciseInfo, error) {
	ctx := context.Background()

	resp, err := c.sheets.Spreadsheets.Values.Get(c.spreadsheetID, SheetExercises).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %s: %w", SheetExercises, err)
	}

	var exercises []ExerciseInfo
	for i, row := range resp.Values {
		if i == 0 {
			continue // заголовки
		}
		ex := ExerciseInfo{
			Name:        strings.TrimSpace(cellText(row, 0)),
			MuscleGroup: strings.TrimSpace(cellText(row, 1)),
			Description: strings.TrimSpace(cellText(row, 2)),
			ImageURL:    strings.TrimSpace(cellText(row, 3)),
			PhotoFileID: strings.TrimSpace(cellText(row, 4)),
		}
		if ex.Name == "" {
			continue
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

// MuscleGroups возвращает отсортированный список уникальных групп мышц
func (c *Client) MuscleGroups() ([]string, error) {
	exercises, err := c.readExercises()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var groups []string
	for _, ex := range exercises {
		if ex.MuscleGroup == "" || seen[ex.MuscleGroup] {
			continue
		}
		seen[ex.MuscleGroup] = true
		groups = append(groups, ex.MuscleGroup)
	}
	sort.Strings(groups)
	return groups, nil
}

// ExercisesByGroup возвращает упражнения группы, отсортированные по названию
func (c *Client) ExercisesByGroup(muscleGroup string) ([]ExerciseInfo, error) {
	exercises, err := c.readExercises()
	if err != nil {
		return nil, err
	}

	group := strings.TrimSpace(muscleGroup)
	var result []ExerciseInfo
	for _, ex := range exercises {
		if ex.MuscleGroup == group {
			result = append(result, ex)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ExercisePhotoID возвращает Telegram file_id фото тренажера или ""
func (c *Client) ExercisePhotoID(exerciseName string) (string, error) {
	exercises, err := c.readExercises()
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(exerciseName)
	for _, ex := range exercises {
		if ex.Name == name {
			return ex.PhotoFileID, nil
		}
	}
	return "", nil
}

// AddExercise добавляет упражнение в справочник EXERCISES
func (c *Client) AddExercise(name, muscleGroup, photoFileID string) error {
	ctx := context.Background()

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{{name, muscleGroup, "", "", photoFileID}},
	}
	_, err := c.sheets.Spreadsheets.Values.Append(c.spreadsheetID, SheetExercises+"!A1", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ошибка добавления упражнения: %w", err)
	}
	return nil
}

// LastResults возвращает последние вес и повторы по упражнению из кэша
// LAST_RESULTS. Если записи нет — (0, 0).
func (c *Client) LastResults(exerciseName string) (float64, int, error) {
	ctx := context.Background()

	resp, err := c.sheets.Spreadsheets.Values.Get(c.spreadsheetID, SheetLastResults).Context(ctx).Do()
	if err != nil {
		return 0, 0, fmt.Errorf("ошибка чтения листа %s: %w", SheetLastResults, err)
	}

	name := strings.TrimSpace(exerciseName)
	for i, row := range resp.Values {
		if i == 0 {
			continue
		}
		if strings.TrimSpace(cellText(row, 0)) != name {
			continue
		}
		weight := logbook.ParseDecimal(cellText(row, 1), 0)
		reps := logbook.ParseInteger(cellText(row, 2), 0)
		return weight, reps, nil
	}
	return 0, 0, nil
}

// cellText возвращает текст ячейки или "" если строка короче
func cellText(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return fmt.Sprintf("%v", row[idx])
}
