package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase/interfaces"
)

// HTTPCollector sends events in the GA4 Measurement Protocol shape.
type HTTPCollector struct {
	endpoint string
	client   *http.Client
}

var _ interfaces.IAnalyticsCollector = (*HTTPCollector)(nil)

type mpPayload struct {
	ClientID        string    `json:"client_id"`
	TimestampMicros int64     `json:"timestamp_micros,omitempty"`
	Events          []mpEvent `json:"events"`
}

type mpEvent struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// NewHTTPCollector appends measurement_id and api_secret to collectorURL when set.
func NewHTTPCollector(collectorURL, measurementID, apiSecret string, timeout time.Duration) (*HTTPCollector, error) {
	u, err := url.Parse(collectorURL)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics collector url: %w", err)
	}
	q := u.Query()
	if measurementID != "" {
		q.Set("measurement_id", measurementID)
	}
	if apiSecret != "" {
		q.Set("api_secret", apiSecret)
	}
	u.RawQuery = q.Encode()

	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPCollector{endpoint: u.String(), client: &http.Client{Timeout: timeout}}, nil
}

func (c *HTTPCollector) Send(ctx context.Context, event entities.AnalyticsEvent) error {
	params := make(map[string]any, len(event.Params)+2)
	for k, v := range event.Params {
		params[k] = v
	}
	if event.Label != "" {
		params["label"] = event.Label
	}
	if event.Page != "" {
		params["page_location"] = event.Page
	}

	body, err := json.Marshal(mpPayload{
		ClientID:        event.SessionID,
		TimestampMicros: event.OccurredAt.UnixMicro(),
		Events:          []mpEvent{{Name: string(event.Name), Params: params}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("analytics collector returned %d", resp.StatusCode)
	}
	return nil
}
