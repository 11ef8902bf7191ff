package commands

import (
	"ItemKeeper/internal/config"
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// withTempConfig возвращает конфиг, у которого файл токена лежит в temp,
// а сервер — переданный тестовый handler.
func withTempConfig(t *testing.T, h http.Handler) *config.Config {
	t.Helper()
	cfg := &config.Config{TokenFile: filepath.Join(t.TempDir(), "ItemKeeper", "token")}
	if h != nil {
		ts := httptest.NewServer(h)
		t.Cleanup(ts.Close)
		cfg.ServerURL = ts.URL
	}
	return cfg
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
