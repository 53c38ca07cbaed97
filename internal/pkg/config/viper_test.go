package config

import (
	"testing"
	"time"
)

func TestNewViperFromBytes(t *testing.T) {
	yaml := []byte(`
app:
  name: "bookrack"
  workers: 4
  ratio: 0.5
  debug: true
  origins: "http://a.test, http://b.test,,"
  ttl_seconds: 30
  ttl_minutes: 10
  ttl_hours: 24
`)

	cfg, err := NewViperFromBytes("yaml", yaml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetString("app.name"); got != "bookrack" {
		t.Errorf("GetString = %q", got)
	}
	if got := cfg.GetInt("app.workers"); got != 4 {
		t.Errorf("GetInt = %d", got)
	}
	if got := cfg.GetFloat64("app.ratio"); got != 0.5 {
		t.Errorf("GetFloat64 = %v", got)
	}
	if !cfg.GetBool("app.debug") {
		t.Error("GetBool = false, want true")
	}
	if got := cfg.GetSecond("app.ttl_seconds"); got != 30*time.Second {
		t.Errorf("GetSecond = %v", got)
	}
	if got := cfg.GetMinute("app.ttl_minutes"); got != 10*time.Minute {
		t.Errorf("GetMinute = %v", got)
	}
	if got := cfg.GetHour("app.ttl_hours"); got != 24*time.Hour {
		t.Errorf("GetHour = %v", got)
	}

	origins := cfg.GetArray("app.origins")
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Errorf("GetArray = %v", origins)
	}
	if got := cfg.GetArray("app.missing"); got != nil {
		t.Errorf("GetArray for missing key = %v, want nil", got)
	}
}

func TestNewViperFromBytesRejectsEmptyType(t *testing.T) {
	if _, err := NewViperFromBytes("", []byte("a: 1")); err == nil {
		t.Fatal("expected an error for empty config type")
	}
}
