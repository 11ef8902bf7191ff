package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"errors"
	"fmt"
)

// Коды выхода ikcli.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// Dispatch выполняет команду args[0] и возвращает код выхода процесса.
// Флаги уже разобраны config.NewConfig, сюда приходят только позиционные аргументы.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	switch args[0] {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s (see ikcli help)\n", args[0])
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprint(Out, FormatCommandUsage(c))
		return ExitUsage
	case errors.Is(err, ErrNotLoggedIn):
		fmt.Fprintf(Out, "%s: no saved token, run: ikcli token <token>\n", c.Name())
		return ExitFailure
	case ctx.Err() != nil:
		fmt.Fprintf(Out, "%s: interrupted\n", c.Name())
		return ExitInterrupted
	default:
		fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
		return ExitFailure
	}
}

// help — "ikcli help" или "ikcli help <command>".
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	c, ok := Get(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}
	fmt.Fprint(Out, FormatCommandUsage(c))
	return ExitOK
}
