package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ytreport/internal/domain/entities"
	"ytreport/internal/ports/input"
	"ytreport/internal/ports/output"
)

const (
	issuesURL   = "api/issues"
	issueFields = "id,idReadable,summary,resolved,customFields(name,value(name))"
)

var _ input.ReportUseCase = (*ReportService)(nil)

type ReportService struct {
	fetch     output.ServiceFetch
	decode    output.IssueDecoder
	serviceID string
	top       int
	now       func() time.Time
}

func NewReportService(
	fetch output.ServiceFetch,
	decode output.IssueDecoder,
	serviceID string,
	top int,
) *ReportService {
	return &ReportService{
		fetch:     fetch,
		decode:    decode,
		serviceID: serviceID,
		top:       top,
		now:       time.Now,
	}
}

// Build fetches the issues matching query and aggregates them.
func (s *ReportService) Build(ctx context.Context, query string) (*entities.Report, error) {
	params := output.Params{
		"query":  query,
		"fields": issueFields,
	}
	if s.top > 0 {
		params["$top"] = s.top
	}

	resp, err := s.fetch(ctx, issuesURL, params)
	if err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}
	issues, err := s.decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}

	rep := Summarize(issues)
	rep.ServiceID = s.serviceID
	rep.Query = query
	rep.GeneratedAt = s.now()
	return rep, nil
}

// Summarize counts issues overall, resolved, and per state.
func Summarize(issues []entities.Issue) *entities.Report {
	rep := &entities.Report{Total: len(issues)}
	counts := make(map[string]int)
	for _, issue := range issues {
		if issue.IsResolved() {
			rep.Resolved++
		}
		counts[issue.State]++
	}

	rep.ByState = make([]entities.StateCount, 0, len(counts))
	for state, n := range counts {
		rep.ByState = append(rep.ByState, entities.StateCount{State: state, Count: n})
	}
	sort.Slice(rep.ByState, func(i, j int) bool {
		if rep.ByState[i].Count != rep.ByState[j].Count {
			return rep.ByState[i].Count > rep.ByState[j].Count
		}
		return rep.ByState[i].State < rep.ByState[j].State
	})
	return rep
}
