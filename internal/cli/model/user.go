package model

// User — полная запись пользователя, как её хранит удалённая коллекция users.
// Поле Password содержит bcrypt-хеш, а не открытый пароль.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CellPhone string `json:"cellPhone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UserProfile — пользователь без поля пароля; именно в таком виде
// профиль живёт в auth-состоянии клиента.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CellPhone string `json:"cellPhone"`
}

// Profile отбрасывает пароль.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CellPhone: u.CellPhone,
	}
}

// UserRegistration — данные формы регистрации (пароль открытый, хешируется перед отправкой).
type UserRegistration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CellPhone string `json:"cellPhone"`
}

// UserLogin — учётные данные входа.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPatch — частичное обновление профиля. Поле отправляется,
// только когда указатель не nil.
type UserPatch struct {
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	CellPhone *string `json:"cellPhone,omitempty"`
}
