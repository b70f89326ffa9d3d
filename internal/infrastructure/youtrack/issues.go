package youtrack

import (
	"encoding/json"
	"fmt"
	"time"

	"ytreport/internal/domain/entities"
	"ytreport/internal/ports/output"
)

var _ output.IssueDecoder = DecodeIssues

const stateField = "State"

type issueDTO struct {
	ID           string           `json:"id"`
	IDReadable   string           `json:"idReadable"`
	Summary      string           `json:"summary"`
	Resolved     *int64           `json:"resolved"` // epoch millis, null when open
	CustomFields []customFieldDTO `json:"customFields"`
}

type customFieldDTO struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type namedValueDTO struct {
	Name string `json:"name"`
}

// DecodeIssues decodes the JSON array returned by the issues endpoint.
func DecodeIssues(body []byte) ([]entities.Issue, error) {
	var dtos []issueDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("youtrack: decode issues: %w", err)
	}
	out := make([]entities.Issue, len(dtos))
	for i := range dtos {
		out[i] = issueToDomain(dtos[i])
	}
	return out, nil
}

func issueToDomain(d issueDTO) entities.Issue {
	issue := entities.Issue{
		ID:         d.ID,
		IDReadable: d.IDReadable,
		Summary:    d.Summary,
	}
	if d.Resolved != nil {
		issue.Resolved = time.UnixMilli(*d.Resolved).UTC()
	}
	for _, f := range d.CustomFields {
		if f.Name != stateField {
			continue
		}
		var v namedValueDTO
		// multi-value and null fields leave the state empty
		if err := json.Unmarshal(f.Value, &v); err == nil {
			issue.State = v.Name
		}
	}
	return issue
}
