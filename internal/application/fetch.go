package application

import (
	"context"

	"ytreport/internal/ports/output"
)

// NewServiceFetcher binds fetch to serviceID. url, params, the result and
// any error pass through unchanged.
func NewServiceFetcher(fetch output.Fetch, serviceID string) output.ServiceFetch {
	return func(ctx context.Context, url string, params output.Params) (*output.Response, error) {
		return fetch(ctx, serviceID, url, params)
	}
}
