package api

import (
	"context"
	"net/http"
	"net/url"

	"CartKeeper/internal/cli/model"
)

// CreateUser сохраняет нового пользователя. Пароль в reg уже должен быть
// хеширован вызывающей стороной. Id и метки времени проставляет клиент.
func (c *Client) CreateUser(ctx context.Context, reg model.UserRegistration) (model.User, error) {
	now := c.stamp()
	u := model.User{
		ID:        c.newID(),
		Email:     reg.Email,
		Password:  reg.Password,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		CellPhone: reg.CellPhone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	var created model.User
	if err := c.do(ctx, http.MethodPost, "/users", u, &created); err != nil {
		return model.User{}, err
	}
	return created, nil
}

// FindUserByEmail ищет пользователя по email. Возвращает nil без ошибки,
// когда совпадений нет; при дубликатах побеждает первый.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/users?email="+url.QueryEscape(email), nil, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// GetUser читает пользователя по id.
func (c *Client) GetUser(ctx context.Context, id string) (model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// UpdateUser применяет частичное обновление и штампует updatedAt.
func (c *Client) UpdateUser(ctx context.Context, id string, patch model.UserPatch) (model.User, error) {
	body := struct {
		model.UserPatch
		UpdatedAt string `json:"updatedAt"`
	}{patch, c.stamp()}
	var u model.User
	if err := c.do(ctx, http.MethodPatch, "/users/"+id, body, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}
