package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/cli/repo"
	fsrepo "ItemKeeper/internal/cli/repo/fs"
	"ItemKeeper/internal/config"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrNotLoggedIn — токен не сохранён, а команда требует авторизации.
var ErrNotLoggedIn = errors.New("no token saved: run `token <token>` first")

// tokenStore — хранилище токена по пути из конфига.
func tokenStore(cfg *config.Config) repo.TokenStore {
	return fsrepo.TokenFileStore{Path: cfg.TokenFile}
}

// newClient создаёт HTTP-клиента. requireToken — команда не работает без токена.
func newClient(cfg *config.Config, requireToken bool) (*api.Client, error) {
	tok, err := tokenStore(cfg).Load()
	if err != nil {
		if requireToken {
			return nil, ErrNotLoggedIn
		}
		tok = ""
	}
	return api.NewClient(cfg.ServerURL, tok), nil
}

// itemView — запись в том виде, в каком её отдаёт сервер.
type itemView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Owner    string `json:"owner"`
}

func (it itemView) line() string {
	return fmt.Sprintf("- %d  name=%s  quantity=%d  owner=%s", it.ID, it.Name, it.Quantity, it.Owner)
}

func printItem(it itemView) {
	fmt.Fprintf(Out, "id:        %d\n", it.ID)
	fmt.Fprintf(Out, "name:      %s\n", it.Name)
	fmt.Fprintf(Out, "quantity:  %d\n", it.Quantity)
	fmt.Fprintf(Out, "owner:     %s\n", it.Owner)
}

func printItems(items []itemView) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return
	}
	for _, it := range items {
		fmt.Fprintln(Out, it.line())
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
}

// serverError превращает неуспешный ответ в ошибку с текстом сервера.
func serverError(resp *http.Response, body []byte) error {
	msg := api.ErrorMessage(body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("server responded %d: %s", resp.StatusCode, msg)
}

func decodeItem(body []byte) (itemView, error) {
	var it itemView
	if err := json.Unmarshal(body, &it); err != nil {
		return it, fmt.Errorf("decode item: %w", err)
	}
	return it, nil
}

func decodeItems(body []byte) ([]itemView, error) {
	var items []itemView
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

// parseID проверяет id записи до отправки запроса.
func parseID(raw string) (string, error) {
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return "", fmt.Errorf("invalid item id %q", raw)
	}
	return raw, nil
}

// parseQuantity разбирает количество.
func parseQuantity(raw string) (int, error) {
	q, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("quantity must be an integer, got %q", raw)
	}
	return q, nil
}
