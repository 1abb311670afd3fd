package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type itemToggleCmd struct{}

func (itemToggleCmd) Name() string { return "item-toggle" }
func (itemToggleCmd) Description() string {
	return "Переключить отметку «куплено»"
}
func (itemToggleCmd) Usage() string { return "item-toggle <listId> <itemId>" }

func (itemToggleCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	listID, itemID := args[0], args[1]
	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	// toggle читает текущее значение из кеша, поэтому сперва fetch
	if err := c.Shopping.FetchItems(ctx, listID); err != nil {
		return err
	}
	if err := c.Shopping.ToggleItem(ctx, itemID); err != nil {
		return err
	}
	for _, it := range c.Shopping.State().Items {
		if it.ID == itemID {
			mark := "not completed"
			if it.Completed {
				mark = "completed"
			}
			fmt.Fprintf(Out, "Item %s is now %s\n", itemID, mark)
			break
		}
	}
	return nil
}

func init() { RegisterCmd(itemToggleCmd{}) }
