package repo

import "errors"

// MemTokenStore — память вместо файла; используется в тестах и как
// хранилище по умолчанию, пока файловое не подключено.
type MemTokenStore struct {
	token string
}

func (m *MemTokenStore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	m.token = token
	return nil
}

func (m *MemTokenStore) Load() (string, error) {
	if m.token == "" {
		return "", errors.New("no token stored")
	}
	return m.token, nil
}

func (m *MemTokenStore) Clear() error {
	m.token = ""
	return nil
}
