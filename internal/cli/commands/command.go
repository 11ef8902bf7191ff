package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage — неверные аргументы; диспетчер печатает usage команды.
var ErrUsage = errors.New("usage")

// Command — подкоманда ikcli.
type Command interface {
	// Name — имя, которое вводит пользователь, например "item-get".
	Name() string
	// Description — одна строка для справки.
	Description() string
	// Usage — строка вида "item-get <id>".
	Usage() string
	// Run выполняет команду; args без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// TokenCommand реализуют команды, которые без сохранённого токена не работают.
type TokenCommand interface {
	RequiresToken() bool
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, в тестах подменяется.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду в реестр; вызывается из init() файла команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get ищет команду по имени без учёта регистра.
func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// List — все команды по алфавиту.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

func requiresToken(c Command) bool {
	tc, ok := c.(TokenCommand)
	return ok && tc.RequiresToken()
}

// FormatGlobalUsage — общая справка: команды чтения, команды с токеном, настройки.
func FormatGlobalUsage() string {
	var public, private []string
	for _, c := range List() {
		line := fmt.Sprintf("  %-34s %s", c.Usage(), c.Description())
		if requiresToken(c) {
			private = append(private, line)
		} else {
			public = append(public, line)
		}
	}

	var b strings.Builder
	b.WriteString("ItemKeeper CLI: клиент сервиса учёта записей (name, quantity, owner)\n\n")
	b.WriteString("Usage:\n  ikcli [flags] <command> [args]\n  ikcli help <command>\n\n")
	b.WriteString("Commands:\n")
	b.WriteString(strings.Join(public, "\n") + "\n\n")
	if len(private) > 0 {
		b.WriteString("Commands that need a saved token (ikcli token <token>):\n")
		b.WriteString(strings.Join(private, "\n") + "\n\n")
	}
	b.WriteString("Flags / environment:\n")
	b.WriteString("  -base-url    BASE_URL       server host:port (default localhost:8081)\n")
	b.WriteString("  -https       ENABLE_HTTPS   use https\n")
	b.WriteString("  -token-file  TOKEN_FILE     where the bearer token is kept\n")
	b.WriteString("  -version                    print version and exit\n")
	return b.String()
}

// FormatCommandUsage — справка по одной команде.
func FormatCommandUsage(c Command) string {
	s := fmt.Sprintf("Usage: %s\n  %s\n", c.Usage(), c.Description())
	if requiresToken(c) {
		s += "  needs a saved token\n"
	}
	return s
}
