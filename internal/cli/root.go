// Package cli implements the carepal terminal client.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/carepal/backend/internal/model/persona"
	"github.com/carepal/backend/internal/service/assistant"
)

// App holds the services the commands run against.
type App struct {
	Assistant *assistant.Service
	Personas  persona.Store

	// Styled enables lipgloss colouring. main sets it when stdout is a terminal.
	Styled bool
}

// NewRootCmd creates the top-level "carepal" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "carepal",
		Short:         "Care Pal wellness assistant",
		Long:          "Care Pal offers general wellness information, first-aid basics and emergency guidance.\nIt is not a medical professional.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newPersonasCmd(app),
	)

	return root
}
