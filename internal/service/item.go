package service

import (
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrItemNotFound — записи с таким id нет.
	ErrItemNotFound = errors.New("item not found")
	// ErrForbidden — запись принадлежит другому пользователю.
	ErrForbidden = errors.New("forbidden")
	// ErrNoItemsForUser — у пользователя нет записей (или пользователя не существует).
	ErrNoItemsForUser = errors.New("no items for user")
)

// ItemService инкапсулирует бизнес-логику работы с Item: владение и проверки наличия.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ItemService{repo: r, logger: logger}
}

// Create сохраняет новую запись; владелец — текущий пользователь.
func (s *ItemService) Create(ctx context.Context, owner, name string, quantity int) (*model.Item, error) {
	it, err := s.repo.Insert(ctx, &model.Item{Name: name, Quantity: quantity, Owner: owner})
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	s.logger.Debugw("item created", "id", it.ID, "owner", owner)
	return it, nil
}

// List возвращает все записи без фильтрации.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Get возвращает запись по id.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("find item %d: %w", id, err)
	}
	return it, nil
}

// Update меняет name/quantity. Наличие записи проверяется раньше владения,
// чужую запись не трогаем.
func (s *ItemService) Update(ctx context.Context, caller string, id int64, name string, quantity int) (*model.Item, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Owner != caller {
		s.logger.Infow("update rejected: not owner", "id", id, "caller", caller)
		return nil, ErrForbidden
	}

	updated, err := s.repo.UpdateByID(ctx, id, &model.Item{Name: name, Quantity: quantity, Owner: current.Owner})
	if err != nil {
		if repo.IsNotFound(err) {
			// удалили между чтением и записью
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	return updated, nil
}

// Delete удаляет запись. В строгом режиме удалить может только владелец;
// в нестрогом — кто угодно, без предварительного чтения.
func (s *ItemService) Delete(ctx context.Context, caller string, id int64, strict bool) error {
	if strict {
		current, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		if current.Owner != caller {
			s.logger.Infow("delete rejected: not owner", "id", id, "caller", caller)
			return ErrForbidden
		}
	}

	ok, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if !ok {
		return ErrItemNotFound
	}
	return nil
}

// ListByOwner возвращает записи пользователя; пустой результат считается отсутствием.
func (s *ItemService) ListByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	items, err := s.repo.FindAllByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("find items of %q: %w", owner, err)
	}
	if len(items) == 0 {
		return nil, ErrNoItemsForUser
	}
	return items, nil
}
