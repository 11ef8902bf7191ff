package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"net/http"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "Показать запись по id" }
func (itemGetCmd) Usage() string       { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := newClient(cfg, false)
	if err != nil {
		return err
	}
	resp, body, err := c.Do(ctx, http.MethodGet, "/items/"+id, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	it, err := decodeItem(body)
	if err != nil {
		return err
	}
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
