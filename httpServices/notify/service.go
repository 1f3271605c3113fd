// Package notify is a thin client for an outbound SMS gateway. Delivery is
// best effort: the booking workflow never fails because a message could not
// be sent.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	bookingModel "appliance-booking/models/booking"
)

// Client talks to the SMS gateway configured via NOTIFY_BASE_URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// StatusChanged sends the customer a short message about their booking's new
// status.
func (c *Client) StatusChanged(ctx context.Context, phone, bookingID string, status bookingModel.BookingStatus) error {
	message := fmt.Sprintf("Your service booking %s is now %s.", bookingID, status)
	return c.send(ctx, phone, message)
}

func (c *Client) send(ctx context.Context, phone, message string) error {
	if c.baseURL == "" {
		return fmt.Errorf("notify base url is not set")
	}

	reqBody, err := json.Marshal(SendSMSRequest{Phone: phone, Message: message})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sms/send", bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, string(body))
	}

	var out SendSMSResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
