package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/spf13/viper"
)

const defaultAPIEndpoint = "https://onesignal.com/api/v1"

var ErrRequestFailed = fmt.Errorf("onesignal request failed")

// OneSignalClient is a minimal client for pushing notifications to
// hospital terminal devices tagged by hospital id.
type OneSignalClient struct {
	endpoint   string
	httpClient *http.Client
}

// NotificationRequest is a onesignal notification creation payload.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

func NewClient(client *http.Client) *OneSignalClient {
	endpoint := viper.GetString("onesignal.endpoint")
	if endpoint == "" {
		endpoint = defaultAPIEndpoint
	}

	return &OneSignalClient{
		endpoint:   endpoint,
		httpClient: client,
	}
}

// SendNotification submits a notification creation request.
func (c *OneSignalClient) SendNotification(ctx context.Context, req *NotificationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		c.endpoint+"/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+viper.GetString("onesignal.key"))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d, _ := ioutil.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(d))
	}
	return nil
}
