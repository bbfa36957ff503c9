package ytdl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ytdl-simpel/domain/dto"
	"ytdl-simpel/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

// maxBodyBytes caps how much of a backend response is read.
const maxBodyBytes = 4 << 20

// outcome is the result of one exchange with the backend. Exactly one of
// value or failure is meaningful: failure != nil means the call failed.
type outcome[T any] struct {
	value   T
	failure *failure
}

// failure keeps the backend's own error text apart from the transport-level
// description, which is always present.
type failure struct {
	backendMessage *string
	transport      string
}

func (f *failure) message() string {
	if f.backendMessage != nil && strings.TrimSpace(*f.backendMessage) != "" {
		return *f.backendMessage
	}
	return f.transport
}

func failed[T any](backendMessage *string, transport string) outcome[T] {
	return outcome[T]{failure: &failure{backendMessage: backendMessage, transport: transport}}
}

// fetch issues a single GET against path with params encoded as the query
// string and decodes the envelope's data into T. It never retries.
func fetch[T any](ctx context.Context, c *Client, path string, params interface{}) outcome[T] {
	values, err := query.Values(params)
	if err != nil {
		return failed[T](nil, fmt.Sprintf("encode query: %v", err))
	}
	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return failed[T](nil, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return failed[T](nil, c.describe(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return failed[T](nil, c.describe(err))
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("Backend responded")

	var env dto.BackendEnvelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var backendMessage *string
		if decodeErr == nil {
			backendMessage = env.Error
		}
		return failed[T](backendMessage, fmt.Sprintf("Request failed with status code %d", resp.StatusCode))
	}
	if decodeErr != nil {
		return failed[T](nil, fmt.Sprintf("invalid response body: %v", decodeErr))
	}
	if !env.Status {
		return failed[T](env.Error, "backend reported an unsuccessful status")
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return failed[T](nil, "response contains no data")
	}

	var value T
	if err := json.Unmarshal(env.Data, &value); err != nil {
		return failed[T](nil, fmt.Sprintf("invalid response data: %v", err))
	}
	return outcome[T]{value: value}
}

// describe reduces a transport error to the text shown to the user.
func (c *Client) describe(err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Sprintf("timeout of %dms exceeded", c.http.Timeout.Milliseconds())
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
