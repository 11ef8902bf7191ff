package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes — предел размера тела запроса.
const maxBodyBytes = 1 << 20

// ItemRequest — тело POST/PUT /items. Указатели отличают отсутствующее поле от нулевого значения.
// Прочие поля (owner, uid) игнорируются: владелец берётся только из токена.
type ItemRequest struct {
	Name     *string `json:"name" validate:"required,min=1"`
	Quantity *int    `json:"quantity" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в сообщениях используем имена из json-тегов
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeItemRequest читает и проверяет тело запроса.
// Ошибка содержит текст, пригодный для ответа клиенту.
func decodeItemRequest(w http.ResponseWriter, r *http.Request) (ItemRequest, error) {
	var req ItemRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errors.New("request body is required")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, fmt.Errorf("%s must be %s", typeErr.Field, expectedType(typeErr.Type))
		}
		return req, errors.New("invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return req, validationMessage(err)
	}
	return req, nil
}

func expectedType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64, reflect.Int32:
		return "an integer"
	case reflect.String:
		return "a string"
	default:
		return t.String()
	}
}

func validationMessage(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fe.Field()+" must not be empty")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// pathItemID разбирает {id} из пути.
func pathItemID(r *http.Request) (int64, string, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, raw, fmt.Errorf("invalid item id %q", raw)
	}
	return id, raw, nil
}
