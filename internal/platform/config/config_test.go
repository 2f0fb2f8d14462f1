package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceName != "catalog" {
		t.Fatalf("expected default service name 'catalog', got %q", cfg.ServiceName)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default addr ':8080', got %q", cfg.HTTP.Addr)
	}
	if cfg.IsProduction() {
		t.Fatal("expected development by default")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_TelegramChatIDRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when TELEGRAM_CHAT_ID is missing")
	}
}

func TestLoad_Production(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "Production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production mode")
	}
}
