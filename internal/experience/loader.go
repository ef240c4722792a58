package experience

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// LoadWorkHistory loads a work-history document from a JSON file. The file
// may be a full {"positions": [...], "targetSkills": [...]} document or a
// bare JSON array of positions; both forms validate before being returned.
func LoadWorkHistory(path string) (*types.WorkHistory, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var history types.WorkHistory
	if err := json.Unmarshal(content, &history); err != nil {
		var positions []types.WorkExperience
		if arrayErr := json.Unmarshal(content, &positions); arrayErr != nil {
			return nil, &LoadError{
				Message: "failed to unmarshal JSON",
				Cause:   err,
			}
		}
		history = types.WorkHistory{Positions: positions}
	}

	if err := history.Validate(); err != nil {
		return nil, &LoadError{
			Message: "invalid work history",
			Cause:   err,
		}
	}

	return &history, nil
}
