package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type listShareCmd struct{}

func (listShareCmd) Name() string { return "list-share" }
func (listShareCmd) Description() string {
	return "Расшарить список по email (повторный share — no-op)"
}
func (listShareCmd) Usage() string { return "list-share <listId> <email>" }

func (listShareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.ShareList(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "List %s shared with %s\n", args[0], args[1])
	return nil
}

func init() { RegisterCmd(listShareCmd{}) }
