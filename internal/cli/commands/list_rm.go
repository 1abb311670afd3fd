package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type listRmCmd struct{}

func (listRmCmd) Name() string { return "list-rm" }
func (listRmCmd) Description() string {
	return "Удалить список вместе с его позициями"
}
func (listRmCmd) Usage() string { return "list-rm <listId>" }

func (listRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.DeleteList(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted list %s and its items\n", args[0])
	return nil
}

func init() { RegisterCmd(listRmCmd{}) }
