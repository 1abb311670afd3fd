package api

import (
	"context"
	"net/http"
	"net/url"

	"CartKeeper/internal/cli/model"
)

// ItemsByList возвращает все позиции списка.
func (c *Client) ItemsByList(ctx context.Context, listID string) ([]model.ShoppingItem, error) {
	var items []model.ShoppingItem
	if err := c.do(ctx, http.MethodGet, "/shoppingItems?listId="+url.QueryEscape(listID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem читает одну позицию по id.
func (c *Client) GetItem(ctx context.Context, itemID string) (model.ShoppingItem, error) {
	var it model.ShoppingItem
	if err := c.do(ctx, http.MethodGet, "/shoppingItems/"+itemID, nil, &it); err != nil {
		return model.ShoppingItem{}, err
	}
	return it, nil
}

// CreateItem создаёт позицию в списке listID: новая позиция не куплена,
// id и метки времени клиентские.
func (c *Client) CreateItem(ctx context.Context, listID string, data model.ShoppingItemCreate) (model.ShoppingItem, error) {
	now := c.stamp()
	it := model.ShoppingItem{
		ID:        c.newID(),
		ListID:    listID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Category:  data.Category,
		Notes:     data.Notes,
		ImageURL:  data.ImageURL,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	var created model.ShoppingItem
	if err := c.do(ctx, http.MethodPost, "/shoppingItems", it, &created); err != nil {
		return model.ShoppingItem{}, err
	}
	return created, nil
}

// UpdateItem применяет частичное обновление позиции и штампует updatedAt.
func (c *Client) UpdateItem(ctx context.Context, itemID string, patch model.ShoppingItemPatch) (model.ShoppingItem, error) {
	body := struct {
		model.ShoppingItemPatch
		UpdatedAt string `json:"updatedAt"`
	}{patch, c.stamp()}
	var it model.ShoppingItem
	if err := c.do(ctx, http.MethodPatch, "/shoppingItems/"+itemID, body, &it); err != nil {
		return model.ShoppingItem{}, err
	}
	return it, nil
}

// DeleteItem удаляет одну позицию.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/shoppingItems/"+itemID, nil, nil)
}
