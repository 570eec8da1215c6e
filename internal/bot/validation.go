package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxExerciseNameLen ограничение на название упражнения в справочнике
const maxExerciseNameLen = 100

// validateExerciseName проверяет название упражнения перед записью
// в справочник
func validateExerciseName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("название не может быть пустым")
	}
	if utf8.RuneCountInString(name) > maxExerciseNameLen {
		return fmt.Errorf("название длиннее %d символов", maxExerciseNameLen)
	}
	return nil
}
