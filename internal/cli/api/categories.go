package api

import (
	"context"
	"net/http"

	"CartKeeper/internal/cli/model"
)

// Categories возвращает справочник категорий. Коллекция read-only:
// клиент её никогда не изменяет.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
