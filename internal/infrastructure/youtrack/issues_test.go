package youtrack_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytreport/internal/domain/entities"
	"ytreport/internal/infrastructure/youtrack"
)

func TestDecodeIssues(t *testing.T) {
	body := []byte(`[
		{"id":"2-1","idReadable":"YT-1","summary":"Crash","resolved":null,
		 "customFields":[{"name":"Priority","value":{"name":"Major"}},{"name":"State","value":{"name":"Open"}}]},
		{"id":"2-2","idReadable":"YT-2","summary":"Typo","resolved":1767225600000,
		 "customFields":[{"name":"State","value":{"name":"Fixed"}}]},
		{"id":"2-3","idReadable":"YT-3","summary":"No state",
		 "customFields":[{"name":"State","value":null},{"name":"Tags","value":[{"name":"a"}]}]}
	]`)

	issues, err := youtrack.DecodeIssues(body)
	require.NoError(t, err)
	assert.Equal(t, []entities.Issue{
		{ID: "2-1", IDReadable: "YT-1", Summary: "Crash", State: "Open"},
		{ID: "2-2", IDReadable: "YT-2", Summary: "Typo", State: "Fixed", Resolved: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2-3", IDReadable: "YT-3", Summary: "No state"},
	}, issues)
}

func TestDecodeIssues_Invalid(t *testing.T) {
	_, err := youtrack.DecodeIssues([]byte(`{"error":"nope"}`))
	require.Error(t, err)
}
