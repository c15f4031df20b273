package publishers

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/samvad-hq/hyperion-client/pkg/httpclient"
)

const maxWebhookSnippet = 512

// webhookHeaders mirror the routing attributes queue and topic sinks attach
// as message attributes.
var webhookHeaders = map[string]string{
	"event_id": "X-Event-Id",
	"query_id": "X-Query-Id",
	"endpoint": "X-Hyperion-Endpoint",
}

// webhookPublisher POSTs (or sends with the configured method) each event as
// JSON to a single URL.
type webhookPublisher struct {
	id      string
	method  string
	url     string
	headers map[string]string
	client  *resty.Client
	log     Logger
}

func newHTTPPublisher(_ context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("publisher %q missing http configuration", cfg.ID)
	}
	timeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	return &webhookPublisher{
		id:      cfg.ID,
		method:  strings.ToUpper(cfg.HTTP.Method),
		url:     cfg.HTTP.URL,
		headers: cfg.HTTP.Headers,
		client:  httpclient.NewRestyHTTPClient(timeout),
		log:     orDiscard(log),
	}, nil
}

func (w *webhookPublisher) ID() string   { return w.id }
func (w *webhookPublisher) Type() string { return TypeHTTP }

func (w *webhookPublisher) Publish(ctx context.Context, evt Event) error {
	req := w.client.R().SetContext(ctx).SetBody(evt).SetHeaders(w.headers)
	for attr, v := range evt.Attributes() {
		if h, ok := webhookHeaders[attr]; ok && v != "" {
			req.SetHeader(h, v)
		}
	}
	// Configured headers may not override the content type.
	req.SetHeader("Content-Type", "application/json")

	resp, err := req.Execute(w.method, w.url)
	if err != nil {
		w.log.ErrorObj("webhook delivery failed", "publisher_http_error", deliveryFields(w, evt, map[string]any{
			"error": err.Error(),
		}))
		return fmt.Errorf("http request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("http response status %d: %s", resp.StatusCode(), webhookSnippet(resp.Body()))
	}
	w.log.DebugObj("webhook delivered event", "publisher_http_delivery", deliveryFields(w, evt, map[string]any{
		"status": resp.StatusCode(),
	}))
	return nil
}

// webhookSnippet trims a rejected response body for error messages without
// leaving a partial rune at the cut.
func webhookSnippet(body []byte) string {
	if len(body) > maxWebhookSnippet {
		cut := maxWebhookSnippet
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(body), ""))
}
