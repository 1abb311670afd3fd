package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/auth"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/cli/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend — коллекционный бэкенд в памяти с семантикой, как у
// боевого: фильтры ?userId=/?listId=, PATCH как частичный merge.
type fakeBackend struct {
	mu    sync.Mutex
	lists map[string]model.ShoppingList
	items map[string]model.ShoppingItem
	cats  []model.Category

	failNext bool // следующий запрос отвечает 500
	calls    []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		lists: map[string]model.ShoppingList{},
		items: map[string]model.ShoppingItem{},
		cats: []model.Category{
			{ID: "c1", Name: "Dairy", Color: "#fff"},
			{ID: "c2", Name: "Produce", Color: "#0f0"},
		},
	}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	if f.failNext {
		f.failNext = false
		http.Error(w, "backend unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON := func(v any) { _ = json.NewEncoder(w).Encode(v) }

	switch {
	case r.URL.Path == "/categories":
		writeJSON(f.cats)

	case r.URL.Path == "/shoppingLists" && r.Method == http.MethodGet:
		userID := r.URL.Query().Get("userId")
		out := []model.ShoppingList{}
		for _, l := range f.lists {
			if userID == "" || l.UserID == userID {
				out = append(out, l)
			}
		}
		writeJSON(out)

	case r.URL.Path == "/shoppingLists" && r.Method == http.MethodPost:
		var l model.ShoppingList
		_ = json.NewDecoder(r.Body).Decode(&l)
		f.lists[l.ID] = l
		writeJSON(l)

	case strings.HasPrefix(r.URL.Path, "/shoppingLists/"):
		id := strings.TrimPrefix(r.URL.Path, "/shoppingLists/")
		l, ok := f.lists[id]
		if !ok {
			http.Error(w, "list not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(l)
		case http.MethodPatch:
			var patch model.ShoppingListPatch
			_ = json.NewDecoder(r.Body).Decode(&patch)
			if patch.Name != nil {
				l.Name = *patch.Name
			}
			if patch.Description != nil {
				l.Description = *patch.Description
			}
			if patch.SharedWith != nil {
				l.SharedWith = *patch.SharedWith
			}
			f.lists[id] = l
			writeJSON(l)
		case http.MethodDelete:
			delete(f.lists, id)
			writeJSON(map[string]any{})
		}

	case r.URL.Path == "/shoppingItems" && r.Method == http.MethodGet:
		listID := r.URL.Query().Get("listId")
		out := []model.ShoppingItem{}
		for _, it := range f.items {
			if listID == "" || it.ListID == listID {
				out = append(out, it)
			}
		}
		writeJSON(out)

	case r.URL.Path == "/shoppingItems" && r.Method == http.MethodPost:
		var it model.ShoppingItem
		_ = json.NewDecoder(r.Body).Decode(&it)
		f.items[it.ID] = it
		writeJSON(it)

	case strings.HasPrefix(r.URL.Path, "/shoppingItems/"):
		id := strings.TrimPrefix(r.URL.Path, "/shoppingItems/")
		it, ok := f.items[id]
		if !ok {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(it)
		case http.MethodPatch:
			var patch model.ShoppingItemPatch
			_ = json.NewDecoder(r.Body).Decode(&patch)
			if patch.Name != nil {
				it.Name = *patch.Name
			}
			if patch.Quantity != nil {
				it.Quantity = *patch.Quantity
			}
			if patch.Completed != nil {
				it.Completed = *patch.Completed
			}
			f.items[id] = it
			writeJSON(it)
		case http.MethodDelete:
			delete(f.items, id)
			writeJSON(map[string]any{})
		}

	default:
		http.Error(w, "unexpected "+r.Method+" "+r.URL.Path, http.StatusTeapot)
	}
}

func newShoppingStore(t *testing.T, f *fakeBackend) *ShoppingStore {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	tokens := &repo.MemTokenStore{}
	require.NoError(t, tokens.Save(auth.NewSessionToken("u1").Encode()))
	return NewShoppingStore(api.New(ts.URL, tokens), tokens, nil, nil)
}

func TestShoppingStore_FetchAndCreateList(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "Weekly Groceries"}))
	require.NoError(t, s.FetchLists(ctx))

	st := s.State()
	require.Len(t, st.Lists, 1)
	assert.Equal(t, "Weekly Groceries", st.Lists[0].Name)
	assert.Equal(t, "u1", st.Lists[0].UserID)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
}

func TestShoppingStore_UpdateListRefreshesCurrentList(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "Old"}))
	list := s.State().Lists[0]
	s.SetCurrentList(&list)

	name := "Renamed"
	require.NoError(t, s.UpdateList(ctx, list.ID, model.ShoppingListPatch{Name: &name}))

	st := s.State()
	assert.Equal(t, "Renamed", st.Lists[0].Name)
	require.NotNil(t, st.CurrentList)
	assert.Equal(t, "Renamed", st.CurrentList.Name, "currentList must never go stale")
}

func TestShoppingStore_DeleteListCascades(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "A"}))
	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "B"}))
	st := s.State()
	listA, listB := st.Lists[0], st.Lists[1]
	s.SetCurrentList(&listA)

	require.NoError(t, s.CreateItem(ctx, listA.ID, model.ShoppingItemCreate{Name: "Milk", Quantity: 2, Category: "Dairy"}))
	require.NoError(t, s.CreateItem(ctx, listA.ID, model.ShoppingItemCreate{Name: "Eggs", Quantity: 1, Category: "Dairy"}))
	require.NoError(t, s.CreateItem(ctx, listB.ID, model.ShoppingItemCreate{Name: "Chips", Quantity: 1, Category: "Pantry"}))

	require.NoError(t, s.DeleteList(ctx, listA.ID))

	st = s.State()
	require.Len(t, st.Lists, 1)
	assert.Equal(t, listB.ID, st.Lists[0].ID)
	assert.Nil(t, st.CurrentList, "currentList must be cleared when the selected list is deleted")
	for _, it := range st.Items {
		assert.NotEqual(t, listA.ID, it.ListID, "no item of the deleted list may remain")
	}
	require.Len(t, st.Items, 1)

	// каскад дошёл и до удалённого хранилища
	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Len(t, f.items, 1)
	for _, it := range f.items {
		assert.Equal(t, listB.ID, it.ListID)
	}
}

func TestShoppingStore_FetchItemsSnapshotMerge(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "A"}))
	listA := s.State().Lists[0]
	require.NoError(t, s.CreateItem(ctx, listA.ID, model.ShoppingItemCreate{Name: "Milk", Quantity: 1, Category: "Dairy"}))

	// многократный fetch не дублирует позиции
	for i := 0; i < 3; i++ {
		require.NoError(t, s.FetchItems(ctx, listA.ID))
	}
	assert.Len(t, s.State().Items, 1)

	// fetch заменяет набор целиком, а не дополняет его
	f.mu.Lock()
	for id := range f.items {
		delete(f.items, id)
	}
	f.mu.Unlock()
	require.NoError(t, s.FetchItems(ctx, listA.ID))
	assert.Empty(t, s.State().Items)
}

func TestShoppingStore_ShareListDeduplicates(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "A"}))
	listID := s.State().Lists[0].ID

	require.NoError(t, s.ShareList(ctx, listID, "friend@example.com"))
	require.NoError(t, s.ShareList(ctx, listID, "friend@example.com"))
	require.NoError(t, s.ShareList(ctx, listID, "Friend@Example.com"))

	st := s.State()
	assert.Equal(t, []string{"friend@example.com"}, st.Lists[0].SharedWith)
}

func TestShoppingStore_FailureLeavesCacheUntouched(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "A"}))
	require.NoError(t, s.FetchLists(ctx))
	before := s.State()

	f.mu.Lock()
	f.failNext = true
	f.mu.Unlock()

	err := s.CreateList(ctx, model.ShoppingListCreate{Name: "B"})
	require.Error(t, err)

	after := s.State()
	assert.Equal(t, before.Lists, after.Lists, "rejected action must not mutate the collection")
	assert.False(t, after.Loading, "loading must be cleared on failure")
	assert.Contains(t, after.Err, "backend unavailable")

	// следующий start очищает ошибку
	require.NoError(t, s.FetchLists(ctx))
	assert.Empty(t, s.State().Err)
}

func TestShoppingStore_CreateItemValidation(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "A"}))
	listID := s.State().Lists[0].ID

	require.Error(t, s.CreateItem(ctx, listID, model.ShoppingItemCreate{Name: "Milk", Quantity: 0}))
	assert.Contains(t, s.State().Err, "quantity")

	require.Error(t, s.CreateItem(ctx, "no-such-list", model.ShoppingItemCreate{Name: "Milk", Quantity: 1}))
	assert.Contains(t, s.State().Err, "unknown shopping list")

	assert.Empty(t, s.State().Items)
}

func TestShoppingStore_ToggleItem(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "A"}))
	listID := s.State().Lists[0].ID
	require.NoError(t, s.CreateItem(ctx, listID, model.ShoppingItemCreate{Name: "Milk", Quantity: 2, Category: "Dairy"}))
	itemID := s.State().Items[0].ID

	require.NoError(t, s.ToggleItem(ctx, itemID))
	assert.True(t, s.State().Items[0].Completed)
	require.NoError(t, s.ToggleItem(ctx, itemID))
	assert.False(t, s.State().Items[0].Completed)
}

func TestShoppingStore_SearchAllItems(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)
	ctx := context.Background()

	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "A"}))
	require.NoError(t, s.CreateList(ctx, model.ShoppingListCreate{Name: "B"}))
	st := s.State()
	require.NoError(t, s.CreateItem(ctx, st.Lists[0].ID, model.ShoppingItemCreate{Name: "Whole Milk", Quantity: 1}))
	require.NoError(t, s.CreateItem(ctx, st.Lists[1].ID, model.ShoppingItemCreate{Name: "Oat Milk", Quantity: 1}))
	require.NoError(t, s.CreateItem(ctx, st.Lists[1].ID, model.ShoppingItemCreate{Name: "Bread", Quantity: 1}))

	require.NoError(t, s.SearchAllItems(ctx, "milk"))
	items := s.State().Items
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Contains(t, strings.ToLower(it.Name), "milk")
	}
}

func TestShoppingStore_FetchCategories(t *testing.T) {
	f := newFakeBackend()
	s := newShoppingStore(t, f)

	require.NoError(t, s.FetchCategories(context.Background()))
	st := s.State()
	require.Len(t, st.Categories, 2)
	assert.Equal(t, "Dairy", st.Categories[0].Name)
}

func TestShoppingStore_RequiresSession(t *testing.T) {
	f := newFakeBackend()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	tokens := &repo.MemTokenStore{}
	s := NewShoppingStore(api.New(ts.URL, tokens), tokens, nil, nil)

	err := s.FetchLists(context.Background())
	require.Error(t, err)
	assert.Contains(t, s.State().Err, "not authenticated")
}
