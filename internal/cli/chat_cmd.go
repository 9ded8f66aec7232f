package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carepal/backend/internal/service/advice"
)

const chatHelp = "Commands: /reset clears the chat, /persona <id> switches persona, /quit exits."

func newChatCmd(app *App) *cobra.Command {
	var personaID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &chatSession{
				app: app,
				out: cmd.OutOrStdout(),
				st:  newStyles(app.Styled),
			}
			return s.run(cmd.Context(), cmd.InOrStdin(), personaID)
		},
	}
	cmd.Flags().StringVar(&personaID, "persona", "", "persona id (see `carepal personas`)")
	return cmd
}

type chatSession struct {
	app       *App
	out       io.Writer
	st        styles
	sessionID string
}

func (s *chatSession) run(ctx context.Context, in io.Reader, personaID string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	session, err := s.app.Assistant.StartSession(ctx, personaID)
	if err != nil {
		return err
	}
	s.sessionID = session.ID

	fmt.Fprintln(s.out, s.st.heading.Render("Care Pal")+s.st.dim.Render(" ("+s.app.Assistant.Mode()+" mode, persona "+session.PersonaID+")"))
	fmt.Fprintln(s.out, s.st.warn.Render(advice.Disclaimer))
	fmt.Fprintln(s.out, s.st.dim.Render("Try: "+strings.Join(advice.ExamplePrompts, " · ")))
	fmt.Fprintln(s.out, s.st.dim.Render(chatHelp))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "\n"+s.st.user.Render("You: "))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, err := s.command(ctx, line)
			if err != nil {
				fmt.Fprintln(s.out, s.st.warn.Render(err.Error()))
			}
			if quit {
				return nil
			}
			continue
		}

		if err := s.reply(ctx, line); err != nil {
			return err
		}
	}
}

func (s *chatSession) command(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		fmt.Fprintln(s.out, s.st.dim.Render("Take care!"))
		return true, nil
	case "/reset":
		if _, err := s.app.Assistant.Reset(ctx, s.sessionID); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, s.st.dim.Render("Chat cleared."))
	case "/persona":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: /persona <id>")
		}
		session, err := s.app.Assistant.SwitchPersona(ctx, s.sessionID, fields[1])
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, s.st.dim.Render("Persona set to "+session.PersonaID+"."))
	case "/help":
		fmt.Fprintln(s.out, s.st.dim.Render(chatHelp))
	default:
		return false, fmt.Errorf("unknown command %s", fields[0])
	}
	return false, nil
}

func (s *chatSession) reply(ctx context.Context, text string) error {
	fmt.Fprint(s.out, s.st.pal.Render("Care Pal: "))

	var shown strings.Builder
	turn, err := s.app.Assistant.StreamReply(ctx, s.sessionID, text, func(delta string) error {
		shown.WriteString(delta)
		_, err := io.WriteString(s.out, delta)
		return err
	})
	if err != nil {
		return err
	}

	// A model failure mid-stream is replaced by the local answer.
	if shown.String() != turn.Reply.Content {
		fmt.Fprint(s.out, "\n\n"+turn.Reply.Content)
	}
	fmt.Fprintln(s.out)
	return nil
}
