package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"net/http"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Показать все записи" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := newClient(cfg, false)
	if err != nil {
		return err
	}
	resp, body, err := c.Do(ctx, http.MethodGet, "/items", nil)
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

func init() { RegisterCmd(itemsCmd{}) }
