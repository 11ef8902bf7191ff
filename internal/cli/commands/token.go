package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"fmt"
)

type tokenCmd struct{}

func (tokenCmd) Name() string        { return "token" }
func (tokenCmd) Description() string { return "Сохранить bearer-токен для авторизованных команд" }
func (tokenCmd) Usage() string       { return "token <token>" }

func (tokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := tokenStore(cfg).Save(args[0]); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintln(Out, "Token saved")
	return nil
}

func init() { RegisterCmd(tokenCmd{}) }
