package output

import "ytreport/internal/domain/entities"

// IssueDecoder turns a tracker response body into domain issues.
type IssueDecoder func(body []byte) ([]entities.Issue, error)
