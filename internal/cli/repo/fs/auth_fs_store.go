package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenFileStore — файловое хранилище bearer-токена для CLI.
type TokenFileStore struct {
	Path string
}

// Save сохраняет токен в файл (создаёт каталог при необходимости).
func (s TokenFileStore) Save(token string) error {
	if s.Path == "" {
		return errors.New("token file path is not set")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s TokenFileStore) Load() (string, error) {
	if s.Path == "" {
		return "", errors.New("token file path is not set")
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", errors.New("empty token file")
	}
	return tok, nil
}
