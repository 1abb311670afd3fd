package model

// ShoppingList — серверная модель списка покупок.
type ShoppingList struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"index;not null" json:"userId"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Email-адреса, которым список расшарен.
	SharedWith []string `gorm:"serializer:json" json:"sharedWith"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ShoppingItem — серверная модель позиции. Каскадное удаление вместе со
// списком выполняет клиент, а не БД: сервер повторяет семантику простого
// коллекционного хранилища.
type ShoppingItem struct {
	ID        string `gorm:"primaryKey" json:"id"`
	ListID    string `gorm:"index;not null" json:"listId"`
	Name      string `gorm:"not null" json:"name"`
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`
	Category  string `json:"category"`
	Notes     string `json:"notes"`
	ImageURL  string `json:"imageUrl"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Category — read-only справочник; наполняется сидом при старте.
type Category struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Color string `json:"color"`
}
