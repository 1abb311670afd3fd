package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"CartKeeper/internal/cli/auth"
	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type profileCmd struct{}

func (profileCmd) Name() string { return "profile" }
func (profileCmd) Description() string {
	return "Показать или изменить профиль (флаги меняют только указанные поля)"
}
func (profileCmd) Usage() string {
	return "profile [--first-name <v>] [--last-name <v>] [--phone <v>] [--email <v>] [--password <v>]"
}

func (profileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	firstName := fs.String("first-name", "", "имя")
	lastName := fs.String("last-name", "", "фамилия")
	phone := fs.String("phone", "", "телефон")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "новый пароль")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Restore(ctx); err != nil {
		return err
	}

	var patch model.UserPatch
	changed := false
	fs.Visit(func(f *flag.Flag) {
		changed = true
		switch f.Name {
		case "first-name":
			patch.FirstName = firstName
		case "last-name":
			patch.LastName = lastName
		case "phone":
			patch.CellPhone = phone
		case "email":
			patch.Email = email
		case "password":
			patch.Password = password
		}
	})

	if changed {
		if patch.Email != nil && !auth.ValidEmail(*patch.Email) {
			return fmt.Errorf("invalid email: %s", *patch.Email)
		}
		if patch.CellPhone != nil && !auth.ValidPhone(*patch.CellPhone) {
			return fmt.Errorf("invalid phone: %s", *patch.CellPhone)
		}
		if patch.Password != nil {
			if problems := auth.ValidatePassword(*patch.Password); len(problems) > 0 {
				return fmt.Errorf("weak password: %s", strings.Join(problems, "; "))
			}
		}
		if err := c.Auth.UpdateProfile(ctx, patch); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Profile updated")
	}

	u := c.Auth.State().User
	fmt.Fprintf(Out, "  id:        %s\n", u.ID)
	fmt.Fprintf(Out, "  email:     %s\n", u.Email)
	fmt.Fprintf(Out, "  firstName: %s\n", u.FirstName)
	fmt.Fprintf(Out, "  lastName:  %s\n", u.LastName)
	fmt.Fprintf(Out, "  cellPhone: %s\n", u.CellPhone)
	return nil
}

func init() { RegisterCmd(profileCmd{}) }
