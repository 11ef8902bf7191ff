package repo

import (
	"ItemKeeper/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт хранилища Item для слоя сервиса.
type ItemRepository interface {
	// Insert сохраняет новую запись; ID назначает хранилище.
	Insert(ctx context.Context, it *model.Item) (*model.Item, error)
	// FindAll возвращает все записи по возрастанию id.
	FindAll(ctx context.Context) ([]model.Item, error)
	// FindByID возвращает запись или gorm.ErrRecordNotFound.
	FindByID(ctx context.Context, id int64) (*model.Item, error)
	// UpdateByID перезаписывает name/quantity/owner и возвращает сохранённую запись.
	UpdateByID(ctx context.Context, id int64, it *model.Item) (*model.Item, error)
	// DeleteByID возвращает false, если записи с таким id не было.
	DeleteByID(ctx context.Context, id int64) (bool, error)
	// FindAllByOwner возвращает записи пользователя.
	FindAllByOwner(ctx context.Context, owner string) ([]model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Insert(ctx context.Context, it *model.Item) (*model.Item, error) {
	stored := *it
	stored.ID = 0
	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *itemRepo) FindAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) UpdateByID(ctx context.Context, id int64, it *model.Item) (*model.Item, error) {
	tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(map[string]any{
		"name":     it.Name,
		"quantity": it.Quantity,
		"owner":    it.Owner,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *itemRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *itemRepo) FindAllByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// IsNotFound сообщает, что ошибка означает отсутствие записи.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
