package output

import (
	"context"
	"net/http"
)

// Params are forwarded untouched to the host fetch.
type Params map[string]any

// Response is what the host fetch hands back for one call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Fetch is the generic host capability: authentication, routing and
// transport for serviceID all live behind it.
type Fetch func(ctx context.Context, serviceID, url string, params Params) (*Response, error)

// ServiceFetch is a Fetch already bound to one service.
type ServiceFetch func(ctx context.Context, url string, params Params) (*Response, error)
