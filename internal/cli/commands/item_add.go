package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"fmt"
	"net/http"
)

// itemPayload — тело POST/PUT /items.
type itemPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Создать запись" }
func (itemAddCmd) Usage() string       { return "item-add <name> <quantity>" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 || args[0] == "" {
		return ErrUsage
	}
	qty, err := parseQuantity(args[1])
	if err != nil {
		return err
	}
	c, err := newClient(cfg, true)
	if err != nil {
		return err
	}
	resp, body, err := c.Do(ctx, http.MethodPost, "/items", itemPayload{Name: args[0], Quantity: qty})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp, body)
	}
	it, err := decodeItem(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Создана запись %d\n", it.ID)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }

func (itemAddCmd) RequiresToken() bool { return true }
