package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
)

func newTestTelegram(t *testing.T, handler http.HandlerFunc) (*Telegram, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tg := NewTelegram("test-token", "chat-42")
	tg.BaseURL = srv.URL
	return tg, srv
}

func TestTelegram_SendPhoto(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	tg, _ := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	if err := tg.SendPhoto(context.Background(), "https://cdn/poster.jpg"); err != nil {
		t.Fatalf("send photo: %v", err)
	}
	if gotPath != "/bottest-token/sendPhoto" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["chat_id"] != "chat-42" || gotBody["photo"] != "https://cdn/poster.jpg" {
		t.Fatalf("unexpected payload %v", gotBody)
	}
}

func TestTelegram_SendMessageWithButton(t *testing.T) {
	var gotBody map[string]any
	tg, _ := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	err := tg.SendMessage(context.Background(), "<b>Free Guy</b>", MessageOptions{
		ActionURL:   "https://okko.tv/movie/free-guy",
		ActionLabel: "Go to watch",
	})
	if err != nil {
		t.Fatalf("send message: %v", err)
	}
	if gotBody["parse_mode"] != "HTML" {
		t.Fatalf("expected HTML parse mode, got %v", gotBody["parse_mode"])
	}
	markup, ok := gotBody["reply_markup"].(map[string]any)
	if !ok {
		t.Fatalf("expected reply_markup, got %v", gotBody)
	}
	rows, _ := markup["inline_keyboard"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected one keyboard row, got %v", markup)
	}
}

func TestTelegram_APIFailure(t *testing.T) {
	tg, _ := newTestTelegram(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	})

	if err := tg.SendPhoto(context.Background(), "x"); err == nil {
		t.Fatal("expected error for api failure")
	}
}
