package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/mongodb/grip"
	"github.com/pkg/errors"

	"github.com/genialityco/events-api/config"
)

const defaultPushURL = "https://exp.host/--/api/v2/push/send"

// pushBatchSize caps how many messages go to the gateway per request.
const pushBatchSize = 100

// ExpoPush delivers push notifications through an Expo-compatible gateway.
// Individual delivery failures are logged and never fail the batch; no
// retries are attempted.
type ExpoPush struct {
	URL    string
	Client *http.Client
}

func NewExpoPush() *ExpoPush {
	url := os.Getenv("PUSH_GATEWAY_URL")
	if url == "" {
		url = defaultPushURL
	}
	return &ExpoPush{URL: url, Client: http.DefaultClient}
}

type pushReceipt struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type pushResponse struct {
	Data []pushReceipt `json:"data"`
}

func (p *ExpoPush) Send(ctx context.Context, messages []config.PushMessage) error {
	for start := 0; start < len(messages); start += pushBatchSize {
		end := start + pushBatchSize
		if end > len(messages) {
			end = len(messages)
		}
		if err := p.sendBatch(ctx, messages[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *ExpoPush) sendBatch(ctx context.Context, batch []config.PushMessage) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return errors.Wrap(err, "marshaling push batch")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "creating push request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return errors.Wrap(err, "posting push batch")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("push gateway returned %s", resp.Status)
	}

	var parsed pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return errors.Wrap(err, "decoding push response")
	}
	for i, receipt := range parsed.Data {
		if receipt.Status == "error" && i < len(batch) {
			grip.Errorf("push to %s failed: %s", batch[i].Token, receipt.Message)
		}
	}
	return nil
}
