package youtrack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ytreport/internal/domain"
	"ytreport/internal/ports/output"
)

const (
	maxErrorExcerpt           = 512
	defaultMaxResponseBodyLen = 10 << 20 // 10MB safety cap
)

var ErrResponseTooLarge = errors.New("youtrack: response body exceeds configured limit")

// Service is one backend connection the client can route to.
type Service struct {
	BaseURL string
	Token   string
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	ServiceID  string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("youtrack: %s %s: HTTP %d: %s", e.ServiceID, e.URL, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrServiceStatus
}

// Client is the host fetch: it owns routing and authentication for every
// registered service id.
type Client struct {
	http       *http.Client
	services   map[string]Service
	maxBodyLen int64
}

// NewClient creates a Client. A zero timeout leaves the http.Client without one.
func NewClient(timeout time.Duration, services map[string]Service) *Client {
	svcs := make(map[string]Service, len(services))
	for id, s := range services {
		s.BaseURL = strings.TrimRight(s.BaseURL, "/")
		svcs[id] = s
	}
	return &Client{
		http:       &http.Client{Timeout: timeout},
		services:   svcs,
		maxBodyLen: defaultMaxResponseBodyLen,
	}
}

// SetMaxBodyLen overrides the response body cap.
func (c *Client) SetMaxBodyLen(n int64) {
	c.maxBodyLen = n
}

// Fetch implements output.Fetch.
func (c *Client) Fetch(ctx context.Context, serviceID, path string, params output.Params) (*output.Response, error) {
	svc, ok := c.services[serviceID]
	if !ok {
		return nil, fmt.Errorf("youtrack: %q: %w", serviceID, domain.ErrUnknownService)
	}

	target := svc.BaseURL + "/" + strings.TrimLeft(path, "/")
	if q := encodeParams(params); q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("youtrack: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if svc.Token != "" {
		req.Header.Set("Authorization", "Bearer "+svc.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtrack: %s %s: %w", serviceID, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyLen+1))
	if err != nil {
		return nil, fmt.Errorf("youtrack: read body: %w", err)
	}
	if int64(len(body)) > c.maxBodyLen {
		return nil, fmt.Errorf("%w (%d bytes)", ErrResponseTooLarge, c.maxBodyLen)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := string(body)
		if len(excerpt) > maxErrorExcerpt {
			excerpt = excerpt[:maxErrorExcerpt]
		}
		return nil, &StatusError{
			ServiceID:  serviceID,
			URL:        path,
			StatusCode: resp.StatusCode,
			Body:       excerpt,
		}
	}

	return &output.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// encodeParams turns params into a query string. Slices repeat the key,
// nil values are dropped.
func encodeParams(params output.Params) string {
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
		case []string:
			for _, s := range v {
				values.Add(key, s)
			}
		case []any:
			for _, s := range v {
				values.Add(key, fmt.Sprint(s))
			}
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values.Encode()
}
