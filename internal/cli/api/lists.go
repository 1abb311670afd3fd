package api

import (
	"context"
	"net/http"
	"net/url"

	"CartKeeper/internal/cli/model"
)

// ListsByUser возвращает все списки владельца.
func (c *Client) ListsByUser(ctx context.Context, userID string) ([]model.ShoppingList, error) {
	var lists []model.ShoppingList
	if err := c.do(ctx, http.MethodGet, "/shoppingLists?userId="+url.QueryEscape(userID), nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetList читает один список по id.
func (c *Client) GetList(ctx context.Context, listID string) (model.ShoppingList, error) {
	var l model.ShoppingList
	if err := c.do(ctx, http.MethodGet, "/shoppingLists/"+listID, nil, &l); err != nil {
		return model.ShoppingList{}, err
	}
	return l, nil
}

// CreateList создаёт список для userID: id и метки времени клиентские,
// sharedWith стартует пустым.
func (c *Client) CreateList(ctx context.Context, userID string, data model.ShoppingListCreate) (model.ShoppingList, error) {
	now := c.stamp()
	l := model.ShoppingList{
		ID:          c.newID(),
		UserID:      userID,
		Name:        data.Name,
		Description: data.Description,
		SharedWith:  []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var created model.ShoppingList
	if err := c.do(ctx, http.MethodPost, "/shoppingLists", l, &created); err != nil {
		return model.ShoppingList{}, err
	}
	return created, nil
}

// UpdateList применяет частичное обновление списка и штампует updatedAt.
func (c *Client) UpdateList(ctx context.Context, listID string, patch model.ShoppingListPatch) (model.ShoppingList, error) {
	body := struct {
		model.ShoppingListPatch
		UpdatedAt string `json:"updatedAt"`
	}{patch, c.stamp()}
	var l model.ShoppingList
	if err := c.do(ctx, http.MethodPatch, "/shoppingLists/"+listID, body, &l); err != nil {
		return model.ShoppingList{}, err
	}
	return l, nil
}

// DeleteList удаляет один список. Каскад по позициям — забота вызывающего
// действия, шлюз оркестрацией не занимается.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodDelete, "/shoppingLists/"+listID, nil, nil)
}
