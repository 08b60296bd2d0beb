package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/ynaht/ynaht/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	if err := Validate.RegisterValidation("target_type", validateTargetType); err != nil {
		panic(fmt.Sprintf("failed to register target_type validator: %v", err))
	}
	if err := Validate.RegisterValidation("goal_frequency", validateGoalFrequency); err != nil {
		panic(fmt.Sprintf("failed to register goal_frequency validator: %v", err))
	}
	if err := Validate.RegisterValidation("week_start", validateWeekStart); err != nil {
		panic(fmt.Sprintf("failed to register week_start validator: %v", err))
	}
}

func validateTargetType(fl validator.FieldLevel) bool {
	switch models.GoalTargetType(fl.Field().String()) {
	case models.TargetCount, models.TargetDuration:
		return true
	default:
		return false
	}
}

func validateGoalFrequency(fl validator.FieldLevel) bool {
	switch models.GoalFrequency(fl.Field().String()) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		return true
	default:
		return false
	}
}

func validateWeekStart(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v == 0 || v == 1
}

// SanitizeText trims whitespace and removes control characters except
// newline and tab.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateTargetType validates a GoalTargetType string value.
func ValidateTargetType(value string) error {
	switch models.GoalTargetType(value) {
	case models.TargetCount, models.TargetDuration:
		return nil
	default:
		return fmt.Errorf("invalid target_type: %s (must be 'count' or 'duration')", value)
	}
}

// ValidateGoalFrequency validates a GoalFrequency string value.
func ValidateGoalFrequency(value string) error {
	switch models.GoalFrequency(value) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		return nil
	default:
		return fmt.Errorf("invalid frequency: %s (must be 'daily', 'weekly', or 'monthly')", value)
	}
}

// ValidateClockTime validates an HH:mm wall-clock string such as "07:00".
func ValidateClockTime(value string) error {
	if len(value) != 5 || value[2] != ':' {
		return fmt.Errorf("invalid time: %s (must be HH:mm)", value)
	}
	hh := value[:2]
	mm := value[3:]
	for _, s := range []string{hh, mm} {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("invalid time: %s (must be HH:mm)", value)
			}
		}
	}
	h := int(hh[0]-'0')*10 + int(hh[1]-'0')
	m := int(mm[0]-'0')*10 + int(mm[1]-'0')
	if h > 23 || m > 59 {
		return fmt.Errorf("invalid time: %s (must be HH:mm)", value)
	}
	return nil
}
