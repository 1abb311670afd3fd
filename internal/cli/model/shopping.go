package model

// ShoppingList — список покупок. SharedWith хранит email-адреса,
// которым список расшарен; дубликатов быть не должно.
type ShoppingList struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SharedWith  []string `json:"sharedWith"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ShoppingListCreate — данные создания списка.
type ShoppingListCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ShoppingListPatch — частичное обновление списка.
type ShoppingListPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	SharedWith  *[]string `json:"sharedWith,omitempty"`
}

// ShoppingItem — позиция внутри списка. Quantity всегда >= 1.
type ShoppingItem struct {
	ID        string `json:"id"`
	ListID    string `json:"listId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
	Notes     string `json:"notes"`
	ImageURL  string `json:"imageUrl"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ShoppingItemCreate — данные создания позиции.
type ShoppingItemCreate struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Notes    string `json:"notes,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ShoppingItemPatch — частичное обновление позиции.
type ShoppingItemPatch struct {
	Name      *string `json:"name,omitempty"`
	Quantity  *int    `json:"quantity,omitempty"`
	Category  *string `json:"category,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Category — справочная категория товара. Клиент её не изменяет.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
