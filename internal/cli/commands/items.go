package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/cli/view"
	"CartKeeper/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать позиции списка"
}
func (itemsCmd) Usage() string {
	return "items <listId> [--search <term>] [--sort <key>] [--category <name>]"
}

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	listID := args[0]
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "фильтр по имени/заметкам")
	sortKey := fs.String("sort", "", "ключ сортировки: name-asc|name-desc|date-asc|date-desc|category")
	category := fs.String("category", "", "точный фильтр по категории")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	key, err := view.ParseSortKey(*sortKey)
	if err != nil {
		return err
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.FetchItems(ctx, listID); err != nil {
		return err
	}

	items := view.Items(itemsOfList(c.Shopping.State().Items, listID),
		view.Query{Search: *search, Sort: key, Category: *category})
	if len(items) == 0 {
		fmt.Fprintln(Out, "Нет позиций")
		return nil
	}
	for _, it := range items {
		printItem(it)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
	return nil
}

// itemsOfList отбирает из кеша позиции одного списка: после
// snapshot-merge там могут оставаться и позиции других списков.
func itemsOfList(items []model.ShoppingItem, listID string) []model.ShoppingItem {
	out := make([]model.ShoppingItem, 0, len(items))
	for _, it := range items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out
}

func printItem(it model.ShoppingItem) {
	mark := " "
	if it.Completed {
		mark = "x"
	}
	cat := ""
	if it.Category != "" {
		cat = "  [" + it.Category + "]"
	}
	fmt.Fprintf(Out, "- [%s] %s  %s  x%d%s\n", mark, it.ID, it.Name, it.Quantity, cat)
	if it.Notes != "" {
		fmt.Fprintf(Out, "      %s\n", it.Notes)
	}
}

func init() { RegisterCmd(itemsCmd{}) }
