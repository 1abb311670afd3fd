package commands

import (
	"context"
	"regexp"
	"strings"
	"testing"
)

var createdIDRe = regexp.MustCompile(`(?m)^  id:   (\S+)$`)

func mustCreatedID(t *testing.T, out string) string {
	t.Helper()
	m := createdIDRe.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no created id in output: %s", out)
	}
	return m[1]
}

// Полный пользовательский сценарий против реального бэкенда:
// регистрация → список → позиция → отметка → каскадное удаление.
func TestShoppingFlow_EndToEnd(t *testing.T) {
	withTempConfig(t)
	cfg := newTestBackend(t)
	ctx := context.Background()

	if code := Dispatch(ctx, cfg, []string{"register", "demo2@example.com", "Passw0rd"}); code != 0 {
		t.Fatalf("register failed")
	}

	out := withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"list-add", "Weekly Groceries", "обычная закупка"}); code != 0 {
			t.Fatalf("list-add failed")
		}
	})
	listID := mustCreatedID(t, out)

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"lists"}); code != 0 {
			t.Fatalf("lists failed")
		}
	})
	if !strings.Contains(out, "Weekly Groceries") || !strings.Contains(out, "Всего: 1") {
		t.Fatalf("lists output: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"item-add", listID, "Milk", "--qty", "2", "--category", "Dairy"}); code != 0 {
			t.Fatalf("item-add failed")
		}
	})
	itemID := mustCreatedID(t, out)

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"items", listID}); code != 0 {
			t.Fatalf("items failed")
		}
	})
	if !strings.Contains(out, "Milk") || !strings.Contains(out, "x2") || !strings.Contains(out, "[Dairy]") {
		t.Fatalf("items output: %s", out)
	}
	if !strings.Contains(out, "- [ ]") {
		t.Fatalf("item must start not completed: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"item-toggle", listID, itemID}); code != 0 {
			t.Fatalf("item-toggle failed")
		}
	})
	if !strings.Contains(out, "is now completed") {
		t.Fatalf("toggle output: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"items", listID}); code != 0 {
			t.Fatalf("items failed")
		}
	})
	if !strings.Contains(out, "- [x]") {
		t.Fatalf("item must be completed: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"search", "milk"}); code != 0 {
			t.Fatalf("search failed")
		}
	})
	if !strings.Contains(out, "Milk") {
		t.Fatalf("search output: %s", out)
	}

	if code := Dispatch(ctx, cfg, []string{"list-rm", listID}); code != 0 {
		t.Fatalf("list-rm failed")
	}

	// каскад: позиций удалённого списка на сервере не осталось
	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"search", "milk"}); code != 0 {
			t.Fatalf("search failed")
		}
	})
	if !strings.Contains(out, "Ничего не найдено") {
		t.Fatalf("cascade delete must remove items: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"lists"}); code != 0 {
			t.Fatalf("lists failed")
		}
	})
	if !strings.Contains(out, "Нет списков") {
		t.Fatalf("lists after delete: %s", out)
	}
}

func TestShareAndEditCommands(t *testing.T) {
	withTempConfig(t)
	cfg := newTestBackend(t)
	ctx := context.Background()

	if code := Dispatch(ctx, cfg, []string{"register", "owner@example.com", "Passw0rd"}); code != 0 {
		t.Fatalf("register failed")
	}
	out := withStdoutCapture(t, func() {
		_ = Dispatch(ctx, cfg, []string{"list-add", "Party"})
	})
	listID := mustCreatedID(t, out)

	if code := Dispatch(ctx, cfg, []string{"list-share", listID, "friend@example.com"}); code != 0 {
		t.Fatalf("list-share failed")
	}
	// повторный share того же адреса (в другом регистре) — no-op
	if code := Dispatch(ctx, cfg, []string{"list-share", listID, "FRIEND@example.com"}); code != 0 {
		t.Fatalf("repeat list-share failed")
	}
	out = withStdoutCapture(t, func() {
		_ = Dispatch(ctx, cfg, []string{"lists"})
	})
	if !strings.Contains(out, "shared=1") {
		t.Fatalf("expected one shared address: %s", out)
	}

	if code := Dispatch(ctx, cfg, []string{"list-edit", listID, "--name", "Party 2.0"}); code != 0 {
		t.Fatalf("list-edit failed")
	}
	out = withStdoutCapture(t, func() {
		_ = Dispatch(ctx, cfg, []string{"lists"})
	})
	if !strings.Contains(out, "Party 2.0") {
		t.Fatalf("rename not applied: %s", out)
	}
}

func TestCategoriesCommand(t *testing.T) {
	withTempConfig(t)
	cfg := newTestBackend(t)
	ctx := context.Background()

	if code := Dispatch(ctx, cfg, []string{"register", "cat@example.com", "Passw0rd"}); code != 0 {
		t.Fatalf("register failed")
	}
	out := withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"categories"}); code != 0 {
			t.Fatalf("categories failed")
		}
	})
	if !strings.Contains(out, "Dairy") || !strings.Contains(out, "Всего: 9") {
		t.Fatalf("categories output: %s", out)
	}
}

func TestItemAdd_ValidationErrors(t *testing.T) {
	withTempConfig(t)
	cfg := newTestBackend(t)
	ctx := context.Background()

	if code := Dispatch(ctx, cfg, []string{"register", "val@example.com", "Passw0rd"}); code != 0 {
		t.Fatalf("register failed")
	}
	// неизвестный список отклоняется до похода на сервер
	out := withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"item-add", "no-such-list", "Milk"}); code != 1 {
			t.Fatalf("expected exit 1 for unknown list")
		}
	})
	if !strings.Contains(out, "error") {
		t.Fatalf("error expected: %s", out)
	}

	out = withStdoutCapture(t, func() {
		_ = Dispatch(ctx, cfg, []string{"list-add", "Weekly"})
	})
	listID := mustCreatedID(t, out)
	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"item-add", listID, "Milk", "--qty", "0"}); code != 1 {
			t.Fatalf("expected exit 1 for zero quantity")
		}
	})
	if !strings.Contains(out, "error") {
		t.Fatalf("quantity error expected: %s", out)
	}
}
