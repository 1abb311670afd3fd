package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type listEditCmd struct{}

func (listEditCmd) Name() string { return "list-edit" }
func (listEditCmd) Description() string {
	return "Изменить имя или описание списка"
}
func (listEditCmd) Usage() string { return "list-edit <listId> [--name <v>] [--desc <v>]" }

func (listEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	listID := args[0]
	fs := flag.NewFlagSet("list-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "новое имя")
	desc := fs.String("desc", "", "новое описание")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	var patch model.ShoppingListPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "desc":
			patch.Description = desc
		}
	})
	if patch.Name == nil && patch.Description == nil {
		return ErrUsage
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.UpdateList(ctx, listID, patch); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated list %s\n", listID)
	return nil
}

func init() { RegisterCmd(listEditCmd{}) }
