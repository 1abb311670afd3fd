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

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить поля позиции (только указанные флагами)"
}
func (itemEditCmd) Usage() string {
	return "item-edit <itemId> [--name <v>] [--qty <n>] [--category <v>] [--notes <v>] [--image <url>]"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	itemID := args[0]
	fs := flag.NewFlagSet("item-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "имя")
	qty := fs.Int("qty", 0, "количество (>= 1)")
	category := fs.String("category", "", "категория")
	notes := fs.String("notes", "", "заметки")
	image := fs.String("image", "", "URL картинки")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	var patch model.ShoppingItemPatch
	touched := false
	fs.Visit(func(f *flag.Flag) {
		touched = true
		switch f.Name {
		case "name":
			patch.Name = name
		case "qty":
			patch.Quantity = qty
		case "category":
			patch.Category = category
		case "notes":
			patch.Notes = notes
		case "image":
			patch.ImageURL = image
		}
	})
	if !touched {
		return ErrUsage
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}
	if err := c.Shopping.UpdateItem(ctx, itemID, patch); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated item %s\n", itemID)
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }
