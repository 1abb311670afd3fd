package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type listAddCmd struct{}

func (listAddCmd) Name() string { return "list-add" }
func (listAddCmd) Description() string {
	return "Создать список покупок"
}
func (listAddCmd) Usage() string { return "list-add <name> [<description>]" }

func (listAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	data := model.ShoppingListCreate{Name: args[0]}
	if len(args) == 2 {
		data.Description = args[1]
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.CreateList(ctx, data); err != nil {
		return err
	}
	lists := c.Shopping.State().Lists
	l := lists[len(lists)-1]
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %s\n", l.ID)
	fmt.Fprintf(Out, "  name: %s\n", l.Name)
	return nil
}

func init() { RegisterCmd(listAddCmd{}) }
