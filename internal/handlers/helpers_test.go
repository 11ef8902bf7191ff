package handlers_test

import (
	"ItemKeeper/internal/auth"
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// testEnv — роутер поверх настоящего репозитория на in-memory SQLite
type testEnv struct {
	router http.Handler
	repo   repo.ItemRepository
	cfg    *config.Config
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:h_%s?mode=memory&cache=shared", name)}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestEnv(t *testing.T, mutate func(cfg *config.Config)) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, StrictDelete: true}
	if mutate != nil {
		mutate(cfg)
	}
	logger := zap.NewNop().Sugar()
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	ir := repo.NewItemRepository(db)
	svc := service.NewItemService(ir, logger)
	h := handlers.NewHandler(svc, auth.NewJWTVerifier(cfg.AuthSecret), sqlDB, logger, cfg)
	return &testEnv{router: h.Router, repo: ir, cfg: cfg}
}

// tokenFor подписывает токен для пользователя тем же секретом, что и у сервера
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

// do выполняет запрос; userID == "" — без Authorization
func (e *testEnv) do(t *testing.T, method, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID))
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// seed кладёт запись напрямую в репозиторий
func (e *testEnv) seed(t *testing.T, name string, qty int, owner string) *model.Item {
	t.Helper()
	it, err := e.repo.Insert(context.Background(), &model.Item{Name: name, Quantity: qty, Owner: owner})
	require.NoError(t, err)
	return it
}

func decodeItem(t *testing.T, rr *httptest.ResponseRecorder) model.Item {
	t.Helper()
	var it model.Item
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&it))
	return it
}

func decodeItems(t *testing.T, rr *httptest.ResponseRecorder) []model.Item {
	t.Helper()
	var items []model.Item
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&items))
	return items
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) handlers.ErrorDetail {
	t.Helper()
	var body handlers.ErrorBody
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&body))
	return body.Error
}

// Minimal mock for store failures
type failingItemRepo struct{ mock.Mock }

func (m *failingItemRepo) Insert(ctx context.Context, it *model.Item) (*model.Item, error) {
	return nil, m.Called(ctx, it).Error(1)
}
func (m *failingItemRepo) FindAll(ctx context.Context) ([]model.Item, error) {
	return nil, m.Called(ctx).Error(1)
}
func (m *failingItemRepo) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	return nil, m.Called(ctx, id).Error(1)
}
func (m *failingItemRepo) UpdateByID(ctx context.Context, id int64, it *model.Item) (*model.Item, error) {
	return nil, m.Called(ctx, id, it).Error(1)
}
func (m *failingItemRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return false, m.Called(ctx, id).Error(1)
}
func (m *failingItemRepo) FindAllByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	return nil, m.Called(ctx, owner).Error(1)
}

var _ repo.ItemRepository = (*failingItemRepo)(nil)
