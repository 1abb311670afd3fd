package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type itemRmCmd struct{}

func (itemRmCmd) Name() string { return "item-rm" }
func (itemRmCmd) Description() string {
	return "Удалить позицию"
}
func (itemRmCmd) Usage() string { return "item-rm <itemId>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.DeleteItem(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted item %s\n", args[0])
	return nil
}

func init() { RegisterCmd(itemRmCmd{}) }
