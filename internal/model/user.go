package model

// User — серверная модель пользователя. Метки времени хранятся строками
// RFC3339: их штампует клиент, сервер только сохраняет.
type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"index;not null" json:"email"`
	Password  string `json:"password"` // bcrypt-хеш, проставленный клиентом
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CellPhone string `json:"cellPhone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
