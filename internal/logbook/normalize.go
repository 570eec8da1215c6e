package logbook

import (
	"strconv"
	"strings"
	"time"
)

// Ячейки в таблице заполняются вручную и через WebApp, поэтому в них
// встречается всё: запятые вместо точек, "90 сек", "1,5 мин", пустые
// значения, даты в трёх форматах. Все функции ниже никогда не падают —
// при мусоре возвращают значение по умолчанию.

// restUnitSuffixes суффиксы единиц времени, которые надо отрезать перед парсингом числа
var restUnitSuffixes = []string{"мин", "сек", "min", "sec"}

// dateFormats форматы дат в порядке перебора: год-месяц-день, день-месяц-год,
// с разделителями '.', '-', '/'
var dateFormats = []string{
	"2006.01.02",
	"02.01.2006",
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02/01/2006",
}

// ParseDecimal парсит десятичное число из текста ячейки.
// Запятая считается десятичным разделителем, суффиксы единиц отрезаются.
// При пустом или нечитаемом значении возвращает def.
func ParseDecimal(text string, def float64) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return def
	}

	s = strings.ReplaceAll(s, ",", ".")
	lower := strings.ToLower(s)
	for _, suffix := range restUnitSuffixes {
		if idx := strings.Index(lower, suffix); idx >= 0 {
			s = s[:idx]
			lower = lower[:idx]
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// ParseInteger парсит целое число из текста ячейки.
// "12.0" и "12,0" читаются как 12 (усечение к нулю).
func ParseInteger(text string, def int) int {
	return int(ParseDecimal(text, float64(def)))
}

// ParseRestMinutes нормализует ячейку отдыха к минутам.
// Порядок правил:
//  1. явная пометка секунд ("сек"/"sec") — делим на 60;
//  2. число больше 59 без пометки — считаем секундами (legacy-строки
//     хранили отдых в секундах без единиц);
//  3. иначе число уже в минутах.
//
// Эвристика (2) заведомо неточна: настоящий отдых 75 минут неотличим от
// 75 секунд и будет прочитан как секунды. Это известное ограничение
// формата, под него уже записаны данные — не "чинить".
func ParseRestMinutes(text string) float64 {
	n := ParseDecimal(text, 0)
	lower := strings.ToLower(text)
	if strings.Contains(lower, "сек") || strings.Contains(lower, "sec") {
		return n / 60
	}
	return restToMinutes(n)
}

// restToMinutes применяет числовую часть эвристики отдыха.
// Используется и при чтении, и при записи, чтобы единицы совпадали.
func restToMinutes(n float64) float64 {
	if n > 59 {
		return n / 60
	}
	return n
}

// ParseDate парсит дату из ячейки вида "2025.11.23, 19:17".
// Хвост со временем (после первой запятой или пробела) отрезается,
// дальше перебираются известные форматы. Если ничего не подошло —
// возвращается нулевая дата: при сортировке по убыванию такие записи
// уходят в конец и никогда не совпадают с датой реальной тренировки.
func ParseDate(text string) time.Time {
	s := strings.TrimSpace(text)
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.Index(s, " "); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
