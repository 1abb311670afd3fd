package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the session token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Auth.Login(ctx, model.UserLogin{Email: args[0], Password: args[1]}); err != nil {
		return err
	}
	st := c.Auth.State()
	fmt.Fprintf(Out, "Logged in as %s\n", st.User.Email)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
