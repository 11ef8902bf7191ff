package handlers_test

import (
	"ItemKeeper/internal/auth"
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Паника в хендлере (мок без ожиданий) должна дойти до клиента как 500 и при Accept-Encoding: gzip.
func TestRouter_PanicWithGzipClientIs500(t *testing.T) {
	cfg := &config.Config{AuthSecret: testSecret, StrictDelete: true}
	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(service.NewItemService(&failingItemRepo{}, logger), auth.NewJWTVerifier(testSecret), nil, logger, cfg)

	for _, enc := range []string{"", "gzip"} {
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		if enc != "" {
			req.Header.Set("Accept-Encoding", enc)
		}
		rr := httptest.NewRecorder()
		h.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code, "Accept-Encoding=%q", enc)
		assert.Empty(t, rr.Header().Get("Content-Encoding"), "Accept-Encoding=%q", enc)
	}
}

func TestRouter_InvalidGzipBody(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "u1"))
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	e := decodeError(t, rr)
	assert.Equal(t, handlers.KindValidation, e.Kind)
	assert.Equal(t, "invalid gzip body", e.Message)

	legacy := newTestEnv(t, func(cfg *config.Config) { cfg.LegacyResponses = true })
	req = httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr = httptest.NewRecorder()
	legacy.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid gzip body", rr.Body.String())
}
