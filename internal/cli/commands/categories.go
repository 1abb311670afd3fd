package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type categoriesCmd struct{}

func (categoriesCmd) Name() string { return "categories" }
func (categoriesCmd) Description() string {
	return "Показать справочник категорий"
}
func (categoriesCmd) Usage() string { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.FetchCategories(ctx); err != nil {
		return err
	}
	cats := c.Shopping.State().Categories
	for _, cat := range cats {
		fmt.Fprintf(Out, "- %-16s %s\n", cat.Name, cat.Color)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(cats))
	return nil
}

func init() { RegisterCmd(categoriesCmd{}) }
