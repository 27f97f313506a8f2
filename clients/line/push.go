package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when the push URL or channel access token is
// missing. The call short-circuits before any network attempt.
var ErrNotConfigured = errors.New("LINE push client is not configured")

// pushRequestTimeout bounds one outbound push call. The platform normally
// answers well within this; on expiry the send counts as a failure and is
// not retried here.
const pushRequestTimeout = 10 * time.Second

// Message is the minimal outbound message shape accepted by the push API.
// Only text messages are produced by this backend.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextMessage builds a single text push message.
func NewTextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

// PushSender sends one push delivery to one recipient.
type PushSender interface {
	PushMessages(ctx context.Context, to string, messages []Message) error
}

type PushClient struct {
	pushURL            string
	channelAccessToken string
	httpClient         *http.Client
}

func NewPushClient(pushURL, channelAccessToken string) *PushClient {
	return &PushClient{
		pushURL:            pushURL,
		channelAccessToken: channelAccessToken,
		httpClient:         &http.Client{Timeout: pushRequestTimeout},
	}
}

// PushMessages POSTs messages to one recipient (a user or group id). One call
// is one recipient; the platform enforces message count and content limits,
// which this client does not second-guess.
func (c *PushClient) PushMessages(ctx context.Context, to string, messages []Message) error {
	if c.pushURL == "" || c.channelAccessToken == "" {
		return ErrNotConfigured
	}
	if to == "" {
		return fmt.Errorf("recipient id cannot be empty")
	}
	if len(messages) == 0 {
		return fmt.Errorf("messages cannot be empty")
	}

	payload, err := json.Marshal(pushRequest{To: to, Messages: messages})
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pushURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelAccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push request to %s failed with status %d: %s", to, resp.StatusCode, string(respBody))
	}

	return nil
}
