package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"context"
	"fmt"
	"net/http"
)

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Удалить запись" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

// Run отправляет токен, если он сохранён: сервер в строгом режиме без него не удаляет.
func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	resp, body, err := c.Do(ctx, http.MethodDelete, "/items/"+id, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	fmt.Fprintln(Out, api.ResultMessage(body))
	return nil
}

func init() { RegisterCmd(itemDeleteCmd{}) }
