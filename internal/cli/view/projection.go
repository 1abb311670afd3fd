package view

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"CartKeeper/internal/cli/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey — ключ сортировки проекции.
type SortKey string

const (
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
	SortDateAsc  SortKey = "date-asc"
	SortDateDesc SortKey = "date-desc"
	SortCategory SortKey = "category" // только для позиций
)

// ParseSortKey проверяет строковый ключ из query-параметров.
// Пустая строка — вид по умолчанию (name-asc).
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case "":
		return SortNameAsc, nil
	case SortNameAsc, SortNameDesc, SortDateAsc, SortDateDesc, SortCategory:
		return SortKey(raw), nil
	default:
		return "", fmt.Errorf("unknown sort key: %q", raw)
	}
}

// Query — параметры проекции: полнотекстовый поиск, ключ сортировки и
// фильтр по категории (последний имеет смысл только для позиций).
// Нулевое значение эквивалентно виду по умолчанию.
type Query struct {
	Search   string
	Sort     SortKey
	Category string
}

// Коллатор без привязки к конкретной локали, игнорирующий регистр:
// это поведение сравнения имён в UI. Collator не потокобезопасен,
// поэтому на каждый вызов сортировки берём новый.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

func matches(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Lists — чистая проекция списков: фильтр, затем устойчивая сортировка.
// Исходный срез не изменяется; результат — всегда новый срез.
func Lists(lists []model.ShoppingList, q Query) []model.ShoppingList {
	out := make([]model.ShoppingList, 0, len(lists))
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		for _, l := range lists {
			if matches(needle, l.Name, l.Description) {
				out = append(out, l)
			}
		}
	} else {
		out = append(out, lists...)
	}

	sort := q.Sort
	if sort == "" {
		sort = SortNameAsc
	}
	col := newCollator()
	slices.SortStableFunc(out, func(a, b model.ShoppingList) int {
		switch sort {
		case SortNameDesc:
			return col.CompareString(b.Name, a.Name)
		case SortDateAsc:
			return compareDates(a.CreatedAt, b.CreatedAt)
		case SortDateDesc:
			return compareDates(b.CreatedAt, a.CreatedAt)
		default:
			return col.CompareString(a.Name, b.Name)
		}
	})
	return out
}

// Items — чистая проекция позиций: поиск по имени и заметкам, точный
// фильтр по категории, затем устойчивая сортировка.
func Items(items []model.ShoppingItem, q Query) []model.ShoppingItem {
	out := make([]model.ShoppingItem, 0, len(items))
	needle := strings.ToLower(q.Search)
	for _, it := range items {
		if q.Search != "" && !matches(needle, it.Name, it.Notes) {
			continue
		}
		if q.Category != "" && it.Category != q.Category {
			continue
		}
		out = append(out, it)
	}

	sort := q.Sort
	if sort == "" {
		sort = SortNameAsc
	}
	col := newCollator()
	slices.SortStableFunc(out, func(a, b model.ShoppingItem) int {
		switch sort {
		case SortNameDesc:
			return col.CompareString(b.Name, a.Name)
		case SortDateAsc:
			return compareDates(a.CreatedAt, b.CreatedAt)
		case SortDateDesc:
			return compareDates(b.CreatedAt, a.CreatedAt)
		case SortCategory:
			return col.CompareString(a.Category, b.Category)
		default:
			return col.CompareString(a.Name, b.Name)
		}
	})
	return out
}

// compareDates сравнивает метки RFC3339; нечитаемые значения
// сравниваются как строки, чтобы сортировка оставалась тотальной.
func compareDates(a, b string) int {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}
