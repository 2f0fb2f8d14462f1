package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Telegram sends announcements through the Telegram Bot API.
type Telegram struct {
	BaseURL    string
	Token      string
	ChatID     string
	HTTPClient *http.Client
}

func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		BaseURL:    "https://api.telegram.org",
		Token:      token,
		ChatID:     chatID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type inlineButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type replyMarkup struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *Telegram) SendPhoto(ctx context.Context, photoURL string) error {
	return t.call(ctx, "sendPhoto", map[string]any{
		"chat_id": t.ChatID,
		"photo":   photoURL,
	})
}

func (t *Telegram) SendMessage(ctx context.Context, text string, opts MessageOptions) error {
	payload := map[string]any{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if opts.ActionURL != "" {
		payload["reply_markup"] = replyMarkup{
			InlineKeyboard: [][]inlineButton{{{Text: opts.ActionLabel, URL: opts.ActionURL}}},
		}
	}
	return t.call(ctx, "sendMessage", payload)
}

func (t *Telegram) call(ctx context.Context, method string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	u := strings.TrimRight(t.BaseURL, "/") + "/bot" + t.Token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}

	var out apiResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("telegram %s: status %d body=%q", method, resp.StatusCode, string(b[:min(len(b), 200)]))
	}
	if !out.OK {
		return fmt.Errorf("telegram %s: status %d: %s", method, resp.StatusCode, out.Description)
	}
	return nil
}
