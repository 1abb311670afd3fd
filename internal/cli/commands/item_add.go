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

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить позицию в список"
}
func (itemAddCmd) Usage() string {
	return "item-add <listId> <name> [--qty <n>] [--category <v>] [--notes <v>] [--image <url>]"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	listID, name := args[0], args[1]
	fs := flag.NewFlagSet("item-add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	qty := fs.Int("qty", 1, "количество (>= 1)")
	category := fs.String("category", "", "категория")
	notes := fs.String("notes", "", "заметки")
	image := fs.String("image", "", "URL картинки")
	if err := fs.Parse(args[2:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	// создание валидирует принадлежность listId кешу списков
	if err := c.Shopping.FetchLists(ctx); err != nil {
		return err
	}
	data := model.ShoppingItemCreate{
		Name:     name,
		Quantity: *qty,
		Category: *category,
		Notes:    *notes,
		ImageURL: *image,
	}
	if err := c.Shopping.CreateItem(ctx, listID, data); err != nil {
		return err
	}
	items := c.Shopping.State().Items
	it := items[len(items)-1]
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %s\n", it.ID)
	fmt.Fprintf(Out, "  name: %s  x%d\n", it.Name, it.Quantity)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
