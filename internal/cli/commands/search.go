package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type searchCmd struct{}

func (searchCmd) Name() string { return "search" }
func (searchCmd) Description() string {
	return "Найти позиции по имени во всех списках"
}
func (searchCmd) Usage() string { return "search <term>" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.SearchAllItems(ctx, args[0]); err != nil {
		return err
	}
	items := c.Shopping.State().Items
	if len(items) == 0 {
		fmt.Fprintln(Out, "Ничего не найдено")
		return nil
	}
	for _, it := range items {
		printItem(it)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
