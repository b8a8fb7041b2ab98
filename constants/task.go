package constants

import "strings"

// Task selects which analysis pipeline an image goes through.
type Task string

// Stable values (appear in API paths, logs, and prompts).
const (
	TaskDamageAssessment Task = "damage-assessment"
	TaskAccidentReport   Task = "accident-report"
)

func ParseTask(s string) (Task, bool) {
	switch Task(strings.ToLower(strings.TrimSpace(s))) {
	case TaskDamageAssessment:
		return TaskDamageAssessment, true
	case TaskAccidentReport:
		return TaskAccidentReport, true
	}
	return "", false
}
