package repo

import (
	"context"

	"CartKeeper/internal/model"

	"gorm.io/gorm"
)

// ShoppingRepository — доступ к коллекциям shoppingLists и shoppingItems.
type ShoppingRepository struct {
	db *gorm.DB
}

func NewShoppingRepository(db *gorm.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

// Lists возвращает списки, при userID != "" — только этого владельца.
func (r *ShoppingRepository) Lists(ctx context.Context, userID string) ([]model.ShoppingList, error) {
	q := r.db.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var lists []model.ShoppingList
	if err := q.Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *ShoppingRepository) GetList(ctx context.Context, id string) (*model.ShoppingList, error) {
	var l model.ShoppingList
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ShoppingRepository) CreateList(ctx context.Context, l *model.ShoppingList) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ShoppingRepository) SaveList(ctx context.Context, l *model.ShoppingList) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// DeleteList удаляет один список. Позиции не трогаем: каскад — забота клиента.
func (r *ShoppingRepository) DeleteList(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ShoppingList{}, "id = ?", id).Error
}

// Items возвращает позиции, при listID != "" — только одного списка.
func (r *ShoppingRepository) Items(ctx context.Context, listID string) ([]model.ShoppingItem, error) {
	q := r.db.WithContext(ctx)
	if listID != "" {
		q = q.Where("list_id = ?", listID)
	}
	var items []model.ShoppingItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ShoppingRepository) GetItem(ctx context.Context, id string) (*model.ShoppingItem, error) {
	var it model.ShoppingItem
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ShoppingRepository) CreateItem(ctx context.Context, it *model.ShoppingItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ShoppingRepository) SaveItem(ctx context.Context, it *model.ShoppingItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *ShoppingRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ShoppingItem{}, "id = ?", id).Error
}

// CategoryRepository — read-only справочник категорий.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) All(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}
