package validation

import "testing"

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims whitespace",
			input:    "  Deep work  ",
			expected: "Deep work",
		},
		{
			name:     "strips control characters",
			input:    "Gym\x00\x1bsession",
			expected: "Gymsession",
		},
		{
			name:     "keeps newline and tab",
			input:    "line one\n\tline two",
			expected: "line one\n\tline two",
		},
		{
			name:     "empty input",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeText(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestValidateTargetType(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"count", "duration"} {
		if err := ValidateTargetType(valid); err != nil {
			t.Errorf("Expected %q valid, got %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "minutes", "COUNT"} {
		if err := ValidateTargetType(invalid); err == nil {
			t.Errorf("Expected %q rejected", invalid)
		}
	}
}

func TestValidateGoalFrequency(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"daily", "weekly", "monthly"} {
		if err := ValidateGoalFrequency(valid); err != nil {
			t.Errorf("Expected %q valid, got %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "yearly", "Weekly"} {
		if err := ValidateGoalFrequency(invalid); err == nil {
			t.Errorf("Expected %q rejected", invalid)
		}
	}
}

func TestValidateClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"07:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"12:60", true},
		{"7:00", true},
		{"0700", true},
		{"ab:cd", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateClockTime(tt.value)
		if tt.wantErr && err == nil {
			t.Errorf("Expected %q rejected", tt.value)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Expected %q valid, got %v", tt.value, err)
		}
	}
}

func TestValidatorTags(t *testing.T) {
	t.Parallel()

	type goalInput struct {
		TargetType string `validate:"target_type"`
		Frequency  string `validate:"goal_frequency"`
	}
	type settingsInput struct {
		WeekStartsOn int `validate:"week_start"`
	}

	if err := Validate.Struct(goalInput{TargetType: "count", Frequency: "weekly"}); err != nil {
		t.Errorf("Expected valid goal input, got %v", err)
	}
	if err := Validate.Struct(goalInput{TargetType: "hours", Frequency: "weekly"}); err == nil {
		t.Error("Expected target_type violation")
	}
	if err := Validate.Struct(settingsInput{WeekStartsOn: 1}); err != nil {
		t.Errorf("Expected Monday start valid, got %v", err)
	}
	if err := Validate.Struct(settingsInput{WeekStartsOn: 2}); err == nil {
		t.Error("Expected week_start violation")
	}
}
