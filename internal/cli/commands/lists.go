package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/view"
	"CartKeeper/internal/config"
)

type listsCmd struct{}

func (listsCmd) Name() string { return "lists" }
func (listsCmd) Description() string {
	return "Показать списки покупок"
}
func (listsCmd) Usage() string { return "lists [--search <term>] [--sort <key>]" }

func (listsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("lists", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "фильтр по имени/описанию")
	sortKey := fs.String("sort", "", "ключ сортировки: name-asc|name-desc|date-asc|date-desc")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
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
	if err := c.Shopping.FetchLists(ctx); err != nil {
		return err
	}

	lists := view.Lists(c.Shopping.State().Lists, view.Query{Search: *search, Sort: key})
	if len(lists) == 0 {
		fmt.Fprintln(Out, "Нет списков")
		return nil
	}
	for _, l := range lists {
		shared := ""
		if n := len(l.SharedWith); n > 0 {
			shared = fmt.Sprintf("  shared=%d", n)
		}
		fmt.Fprintf(Out, "- %s  %s%s\n", l.ID, l.Name, shared)
		if l.Description != "" {
			fmt.Fprintf(Out, "    %s\n", l.Description)
		}
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(lists))
	return nil
}

func init() { RegisterCmd(listsCmd{}) }
