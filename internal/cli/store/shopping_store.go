package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/auth"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/cli/repo"
	"CartKeeper/internal/cli/service"
	"CartKeeper/internal/cli/store/snapshot"

	"go.uber.org/zap"
)

// ShoppingState — нормализованный кеш домена: плоские коллекции по id
// плюс ссылка на выбранный список. Loading/Err общие на весь стор:
// видно состояние только одной мутации за раз.
type ShoppingState struct {
	Lists       []model.ShoppingList
	Items       []model.ShoppingItem
	Categories  []model.Category
	CurrentList *model.ShoppingList
	Loading     bool
	Err         string
}

// ShoppingStore единолично владеет коллекциями lists/items/categories и
// currentList. Все CRUD-действия проходят жизненный цикл start/success/
// failure; мутация кеша применяется только на success, поэтому откатывать
// на failure нечего. Мьютекс держится только на шаге применения — два
// конкурирующих применения не могут порвать коллекцию, а порядок двух
// одновременных обновлений одной сущности не гарантируется (побеждает
// завершившееся последним; это принятая гонка, не баг).
type ShoppingStore struct {
	mu     sync.Mutex
	gw     *api.Client
	tokens repo.TokenStore
	snap   *snapshot.Store // может быть nil: зеркало опционально
	log    *zap.SugaredLogger
	state  ShoppingState
}

func NewShoppingStore(gw *api.Client, tokens repo.TokenStore, snap *snapshot.Store, log *zap.SugaredLogger) *ShoppingStore {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ShoppingStore{gw: gw, tokens: tokens, snap: snap, log: log}
}

// State возвращает копию состояния: срезы скопированы, currentList — по значению.
func (s *ShoppingStore) State() ShoppingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := ShoppingState{
		Lists:      append([]model.ShoppingList(nil), s.state.Lists...),
		Items:      append([]model.ShoppingItem(nil), s.state.Items...),
		Categories: append([]model.Category(nil), s.state.Categories...),
		Loading:    s.state.Loading,
		Err:        s.state.Err,
	}
	if s.state.CurrentList != nil {
		cl := *s.state.CurrentList
		st.CurrentList = &cl
	}
	return st
}

// currentUserID восстанавливает id пользователя из сохранённого токена.
func (s *ShoppingStore) currentUserID() (string, error) {
	raw, err := s.tokens.Load()
	if err != nil {
		return "", service.ErrNotAuthenticated
	}
	tok, err := auth.DecodeSessionToken(raw)
	if err != nil {
		return "", service.ErrNotAuthenticated
	}
	return tok.Subject, nil
}

func (s *ShoppingStore) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

// fail — общий обработчик исхода-неудачи любого действия: фиксирует
// сообщение, снимает loading, кеш не трогает.
func (s *ShoppingStore) fail(op string, err error) error {
	s.log.Warnw("shopping action failed", "op", op, "error", err)
	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = err.Error()
	s.mu.Unlock()
	return err
}

// apply выполняет шаг применения атомарно и снимает loading.
func (s *ShoppingStore) apply(fn func(st *ShoppingState)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.Loading = false
	s.state.Err = ""
	s.mu.Unlock()
}

// FetchLists загружает все списки текущего пользователя.
func (s *ShoppingStore) FetchLists(ctx context.Context) error {
	s.begin()
	userID, err := s.currentUserID()
	if err != nil {
		return s.fail("fetchLists", err)
	}
	lists, err := s.gw.ListsByUser(ctx, userID)
	if err != nil {
		return s.fail("fetchLists", err)
	}
	s.apply(func(st *ShoppingState) {
		st.Lists = lists
	})
	if s.snap != nil {
		if err := s.snap.ReplaceLists(lists); err != nil {
			s.log.Warnw("snapshot mirror write failed", "op", "fetchLists", "error", err)
		}
	}
	return nil
}

// CreateList создаёт список и дописывает его в кеш.
func (s *ShoppingStore) CreateList(ctx context.Context, data model.ShoppingListCreate) error {
	s.begin()
	if strings.TrimSpace(data.Name) == "" {
		return s.fail("createList", errors.New("list name is required"))
	}
	userID, err := s.currentUserID()
	if err != nil {
		return s.fail("createList", err)
	}
	created, err := s.gw.CreateList(ctx, userID, data)
	if err != nil {
		return s.fail("createList", err)
	}
	s.apply(func(st *ShoppingState) {
		st.Lists = append(st.Lists, created)
	})
	return nil
}

// replaceList заменяет список с тем же id на месте; если это выбранный
// список — обновляет и ссылку, чтобы читатели не видели устаревший currentList.
func replaceList(st *ShoppingState, updated model.ShoppingList) {
	for i := range st.Lists {
		if st.Lists[i].ID == updated.ID {
			st.Lists[i] = updated
			break
		}
	}
	if st.CurrentList != nil && st.CurrentList.ID == updated.ID {
		cl := updated
		st.CurrentList = &cl
	}
}

// UpdateList применяет частичное обновление списка.
func (s *ShoppingStore) UpdateList(ctx context.Context, listID string, patch model.ShoppingListPatch) error {
	s.begin()
	updated, err := s.gw.UpdateList(ctx, listID, patch)
	if err != nil {
		return s.fail("updateList", err)
	}
	s.apply(func(st *ShoppingState) {
		replaceList(st, updated)
	})
	return nil
}

// DeleteList удаляет список с каскадом. Последовательность строгая:
// удалённый delete списка → fetch его позиций → удалённый delete каждой
// позиции → только после этого локальное применение каскада.
func (s *ShoppingStore) DeleteList(ctx context.Context, listID string) error {
	s.begin()
	if err := s.gw.DeleteList(ctx, listID); err != nil {
		return s.fail("deleteList", err)
	}
	items, err := s.gw.ItemsByList(ctx, listID)
	if err != nil {
		return s.fail("deleteList", err)
	}
	for _, it := range items {
		if err := s.gw.DeleteItem(ctx, it.ID); err != nil {
			return s.fail("deleteList", err)
		}
	}
	s.apply(func(st *ShoppingState) {
		kept := st.Lists[:0]
		for _, l := range st.Lists {
			if l.ID != listID {
				kept = append(kept, l)
			}
		}
		st.Lists = kept
		if st.CurrentList != nil && st.CurrentList.ID == listID {
			st.CurrentList = nil
		}
		keptItems := st.Items[:0]
		for _, it := range st.Items {
			if it.ListID != listID {
				keptItems = append(keptItems, it)
			}
		}
		st.Items = keptItems
	})
	return nil
}

// ShareList — read-modify-write по sharedWith: читаем актуальный список,
// добавляем email, если его там ещё нет, и сохраняем целиком.
func (s *ShoppingStore) ShareList(ctx context.Context, listID, email string) error {
	s.begin()
	if !auth.ValidEmail(email) {
		return s.fail("shareList", errors.New("invalid email address"))
	}
	list, err := s.gw.GetList(ctx, listID)
	if err != nil {
		return s.fail("shareList", err)
	}
	shared := append([]string(nil), list.SharedWith...)
	exists := false
	for _, e := range shared {
		if strings.EqualFold(e, email) {
			exists = true
			break
		}
	}
	if !exists {
		shared = append(shared, email)
	}
	updated, err := s.gw.UpdateList(ctx, listID, model.ShoppingListPatch{SharedWith: &shared})
	if err != nil {
		return s.fail("shareList", err)
	}
	s.apply(func(st *ShoppingState) {
		replaceList(st, updated)
	})
	return nil
}

// FetchItems загружает позиции списка и выполняет snapshot-merge:
// все кешированные позиции этого listId заменяются свежим набором.
// Поздний ответ для уже покинутого списка всё равно применяется —
// разделы по listId не пересекаются, last-write-wins безопасен.
func (s *ShoppingStore) FetchItems(ctx context.Context, listID string) error {
	s.begin()
	items, err := s.gw.ItemsByList(ctx, listID)
	if err != nil {
		return s.fail("fetchItems", err)
	}
	s.apply(func(st *ShoppingState) {
		kept := st.Items[:0]
		for _, it := range st.Items {
			if it.ListID != listID {
				kept = append(kept, it)
			}
		}
		st.Items = append(kept, items...)
	})
	if s.snap != nil {
		if err := s.snap.ReplaceItems(listID, items); err != nil {
			s.log.Warnw("snapshot mirror write failed", "op", "fetchItems", "error", err)
		}
	}
	return nil
}

// CreateItem создаёт позицию. listID обязан ссылаться на список,
// присутствующий в кеше, а quantity быть не меньше единицы.
func (s *ShoppingStore) CreateItem(ctx context.Context, listID string, data model.ShoppingItemCreate) error {
	s.begin()
	if strings.TrimSpace(data.Name) == "" {
		return s.fail("createItem", errors.New("item name is required"))
	}
	if data.Quantity < 1 {
		return s.fail("createItem", errors.New("quantity must be at least 1"))
	}
	s.mu.Lock()
	known := false
	for _, l := range s.state.Lists {
		if l.ID == listID {
			known = true
			break
		}
	}
	s.mu.Unlock()
	if !known {
		return s.fail("createItem", errors.New("unknown shopping list: "+listID))
	}
	created, err := s.gw.CreateItem(ctx, listID, data)
	if err != nil {
		return s.fail("createItem", err)
	}
	s.apply(func(st *ShoppingState) {
		st.Items = append(st.Items, created)
	})
	return nil
}

// UpdateItem применяет частичное обновление позиции.
func (s *ShoppingStore) UpdateItem(ctx context.Context, itemID string, patch model.ShoppingItemPatch) error {
	s.begin()
	if patch.Quantity != nil && *patch.Quantity < 1 {
		return s.fail("updateItem", errors.New("quantity must be at least 1"))
	}
	updated, err := s.gw.UpdateItem(ctx, itemID, patch)
	if err != nil {
		return s.fail("updateItem", err)
	}
	s.apply(func(st *ShoppingState) {
		for i := range st.Items {
			if st.Items[i].ID == updated.ID {
				st.Items[i] = updated
				break
			}
		}
	})
	return nil
}

// ToggleItem переключает признак «куплено» у позиции из кеша.
func (s *ShoppingStore) ToggleItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	var current *model.ShoppingItem
	for i := range s.state.Items {
		if s.state.Items[i].ID == itemID {
			it := s.state.Items[i]
			current = &it
			break
		}
	}
	s.mu.Unlock()
	if current == nil {
		s.begin()
		return s.fail("toggleItem", errors.New("unknown item: "+itemID))
	}
	next := !current.Completed
	return s.UpdateItem(ctx, itemID, model.ShoppingItemPatch{Completed: &next})
}

// DeleteItem удаляет одну позицию.
func (s *ShoppingStore) DeleteItem(ctx context.Context, itemID string) error {
	s.begin()
	if err := s.gw.DeleteItem(ctx, itemID); err != nil {
		return s.fail("deleteItem", err)
	}
	s.apply(func(st *ShoppingState) {
		kept := st.Items[:0]
		for _, it := range st.Items {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		st.Items = kept
	})
	return nil
}

// SearchAllItems собирает позиции всех списков пользователя, фильтрует по
// подстроке имени и замещает ими кеш позиций целиком.
func (s *ShoppingStore) SearchAllItems(ctx context.Context, term string) error {
	s.begin()
	userID, err := s.currentUserID()
	if err != nil {
		return s.fail("searchItems", err)
	}
	lists, err := s.gw.ListsByUser(ctx, userID)
	if err != nil {
		return s.fail("searchItems", err)
	}
	needle := strings.ToLower(term)
	var found []model.ShoppingItem
	for _, l := range lists {
		items, err := s.gw.ItemsByList(ctx, l.ID)
		if err != nil {
			return s.fail("searchItems", err)
		}
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), needle) {
				found = append(found, it)
			}
		}
	}
	s.apply(func(st *ShoppingState) {
		st.Items = found
	})
	return nil
}

// FetchCategories загружает справочник категорий; он неизменен в рамках сессии.
func (s *ShoppingStore) FetchCategories(ctx context.Context) error {
	s.begin()
	cats, err := s.gw.Categories(ctx)
	if err != nil {
		return s.fail("fetchCategories", err)
	}
	s.apply(func(st *ShoppingState) {
		st.Categories = cats
	})
	return nil
}

// SetCurrentList выбирает список; nil снимает выбор (возврат назад).
func (s *ShoppingStore) SetCurrentList(l *model.ShoppingList) {
	s.mu.Lock()
	if l == nil {
		s.state.CurrentList = nil
	} else {
		cl := *l
		s.state.CurrentList = &cl
	}
	s.mu.Unlock()
}

// ClearItems очищает кеш позиций (используется при возврате к списку списков).
func (s *ShoppingStore) ClearItems() {
	s.mu.Lock()
	s.state.Items = nil
	s.mu.Unlock()
}

// ClearError явно сбрасывает последнее сообщение об ошибке.
func (s *ShoppingStore) ClearError() {
	s.mu.Lock()
	s.state.Err = ""
	s.mu.Unlock()
}
