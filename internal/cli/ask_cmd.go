package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carepal/backend/internal/service/assistant"
)

func newAskCmd(app *App) *cobra.Command {
	var personaID string

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			turn, err := Ask(ctx, app.Assistant, personaID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), turn.Reply.Content)
			return nil
		},
	}
	cmd.Flags().StringVar(&personaID, "persona", "", "persona id (see `carepal personas`)")
	return cmd
}

// Ask answers a single question in a fresh session.
func Ask(ctx context.Context, svc *assistant.Service, personaID, question string) (assistant.Turn, error) {
	session, err := svc.StartSession(ctx, personaID)
	if err != nil {
		return assistant.Turn{}, err
	}
	return svc.Reply(ctx, session.ID, question)
}
