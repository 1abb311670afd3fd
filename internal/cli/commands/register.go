package commands

import (
	"context"
	"fmt"
	"strings"

	"CartKeeper/internal/cli/auth"
	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string { return "register" }
func (registerCmd) Description() string {
	return "Зарегистрировать аккаунт и сразу войти"
}
func (registerCmd) Usage() string {
	return "register <email> <password> [<firstName> [<lastName> [<cellPhone>]]]"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 5 {
		return ErrUsage
	}
	reg := model.UserRegistration{Email: args[0], Password: args[1]}
	if !auth.ValidEmail(reg.Email) {
		return fmt.Errorf("invalid email: %s", reg.Email)
	}
	if problems := auth.ValidatePassword(reg.Password); len(problems) > 0 {
		return fmt.Errorf("weak password: %s", strings.Join(problems, "; "))
	}
	if len(args) > 2 {
		reg.FirstName = args[2]
	}
	if len(args) > 3 {
		reg.LastName = args[3]
	}
	if len(args) > 4 {
		reg.CellPhone = args[4]
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Auth.Register(ctx, reg); err != nil {
		return err
	}
	st := c.Auth.State()
	fmt.Fprintf(Out, "Registered and logged in as %s\n", st.User.Email)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
