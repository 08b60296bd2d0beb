package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/ynaht/ynaht/internal/models"
)

func TestPullOutcome(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("network down")
	queued := models.NewAppState()

	tests := []struct {
		name      string
		state     *models.AppState
		err       error
		wantLoad  bool
		wantMsg   string
		wantFatal bool
	}{
		{
			name:     "remote state loads silently",
			state:    models.NewAppState(),
			wantLoad: true,
		},
		{
			name:    "empty remote keeps local data",
			wantMsg: "No remote state yet; keeping local data.",
		},
		{
			name:     "fetch failure with queued copy loads it",
			state:    queued,
			err:      fetchErr,
			wantLoad: true,
			wantMsg:  "queued offline copy",
		},
		{
			name:      "fetch failure without fallback is fatal",
			err:       fetchErr,
			wantFatal: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			load, msg, fatal := pullOutcome(tt.state, tt.err)
			if load != tt.wantLoad {
				t.Errorf("Expected load %v, got %v", tt.wantLoad, load)
			}
			if tt.wantMsg == "" && msg != "" {
				t.Errorf("Expected no message, got %q", msg)
			}
			if tt.wantMsg != "" && !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("Expected message containing %q, got %q", tt.wantMsg, msg)
			}
			if tt.wantFatal && fatal == nil {
				t.Error("Expected a fatal error")
			}
			if !tt.wantFatal && fatal != nil {
				t.Errorf("Expected no fatal error, got %v", fatal)
			}
		})
	}
}
