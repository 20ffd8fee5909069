package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/notification/gateway/port"
)

// HTTPSMSGateway sends texts through the aggregator's JSON API.
type HTTPSMSGateway struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPSMSGateway(url, apiKey string) (*HTTPSMSGateway, error) {
	if url == "" {
		return nil, errors.New("sms gateway: empty URL")
	}
	return &HTTPSMSGateway{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

var _ port.SMSGateway = (*HTTPSMSGateway)(nil)

type smsRequest struct {
	Content string   `json:"content"`
	Msisdns []string `json:"msisdns"`
}

func (g *HTTPSMSGateway) Send(ctx context.Context, content string, msisdns []string) error {
	body, err := json.Marshal(smsRequest{Content: content, Msisdns: msisdns})
	if err != nil {
		return fmt.Errorf("sms gateway: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms gateway: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway: aggregator returned %d", resp.StatusCode)
	}
	return nil
}
