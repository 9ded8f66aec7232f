package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carepal/backend/internal/model/persona"
)

func newPersonasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the available personas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStyles(app.Styled)
			out := cmd.OutOrStdout()
			for _, p := range app.Personas.List() {
				marker := " "
				if p.ID == persona.DefaultID {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s  %s\n", marker, st.heading.Render(p.ID), p.Name)
				if p.Description != "" {
					fmt.Fprintf(out, "    %s\n", st.dim.Render(p.Description))
				}
			}
			return nil
		},
	}
}
