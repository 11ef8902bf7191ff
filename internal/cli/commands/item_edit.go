package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"fmt"
	"net/http"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Изменить свою запись" }
func (itemEditCmd) Usage() string       { return "item-edit <id> <name> <quantity>" }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 || args[1] == "" {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	qty, err := parseQuantity(args[2])
	if err != nil {
		return err
	}
	c, err := newClient(cfg, true)
	if err != nil {
		return err
	}
	resp, body, err := c.Do(ctx, http.MethodPut, "/items/"+id, itemPayload{Name: args[1], Quantity: qty})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	fmt.Fprintf(Out, "Запись %s обновлена\n", id)
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }

func (itemEditCmd) RequiresToken() bool { return true }
