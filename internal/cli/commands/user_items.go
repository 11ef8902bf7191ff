package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"net/http"
	"net/url"
)

type userItemsCmd struct{}

func (userItemsCmd) Name() string        { return "user-items" }
func (userItemsCmd) Description() string { return "Показать записи пользователя" }
func (userItemsCmd) Usage() string       { return "user-items <user>" }

func (userItemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	c, err := newClient(cfg, false)
	if err != nil {
		return err
	}
	resp, body, err := c.Do(ctx, http.MethodGet, "/items/users/"+url.PathEscape(args[0]), nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	list, err := decodeItems(body)
	if err != nil {
		return err
	}
	printItems(list)
	return nil
}

func init() { RegisterCmd(userItemsCmd{}) }
