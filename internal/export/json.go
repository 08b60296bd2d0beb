// Package export renders app state into the portable formats the app
// offers for download: a JSON snapshot, CSV spreadsheets, and a plain
// text day summary.
package export

import (
	"encoding/json"

	"github.com/ynaht/ynaht/internal/models"
)

// snapshot is the exported JSON shape. Settings and backlog are local
// concerns and stay out of the export.
type snapshot struct {
	DaySessions map[string]*models.DaySession `json:"daySessions"`
	Goals       []models.Goal                 `json:"goals"`
}

// JSON renders sessions and goals as indented JSON.
func JSON(state *models.AppState) ([]byte, error) {
	return json.MarshalIndent(snapshot{
		DaySessions: state.DaySessions,
		Goals:       state.Goals,
	}, "", "  ")
}
