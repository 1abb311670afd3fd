package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/auth"
	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/repo/fs"
	"CartKeeper/internal/cli/store/snapshot"
	"CartKeeper/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string { return "status" }
func (statusCmd) Description() string {
	return "Показать состояние сессии и локального снапшота"
}
func (statusCmd) Usage() string { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	raw, err := fs.TokenFSStore{}.Load()
	if err != nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	tok, err := auth.DecodeSessionToken(raw)
	if err != nil {
		return fmt.Errorf("stored token is malformed: %w", err)
	}

	// Снапшот открываем до похода в сеть: он должен быть доступен
	// и когда бэкенд лежит.
	snap, _, serr := snapshot.OpenForUser(tok.Subject)
	if serr == nil {
		defer snap.Close()
		if merr := snap.Migrate(); merr != nil {
			snap = nil
		}
	} else {
		snap = nil
	}

	c := bootstrap.New(cfg)
	defer c.Close()
	if err := c.Auth.Restore(ctx); err != nil {
		fmt.Fprintf(Out, "Backend unreachable or session rejected: %v\n", err)
		printSnapshot(snap, "Last known snapshot:")
		return nil
	}
	st := c.Auth.State()
	fmt.Fprintf(Out, "Authorized as %s (id=%s)\n", st.User.Email, st.User.ID)
	printSnapshot(snap, "Local snapshot:")
	return nil
}

func printSnapshot(snap *snapshot.Store, title string) {
	if snap == nil {
		fmt.Fprintln(Out, "No local snapshot")
		return
	}
	lists, items, err := snap.Summary()
	if err != nil {
		fmt.Fprintf(Out, "Snapshot unavailable: %v\n", err)
		return
	}
	fmt.Fprintln(Out, title)
	fmt.Fprintf(Out, "  lists: %d, items: %d\n", lists, items)
	cached, err := snap.Lists()
	if err != nil {
		return
	}
	for _, l := range cached {
		fmt.Fprintf(Out, "  - %s  %s\n", l.ID, l.Name)
	}
}

func init() { RegisterCmd(statusCmd{}) }
