package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/spf13/cobra"
)

// writeOutput prints data as indented JSON, or page rendered for the terminal.
func writeOutput(cmd *cobra.Command, app *app, asJSON bool, data any, page view.Page) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	rendered, err := app.render(page)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// writeThenFail prints the output of an action that went through before reporting
// err from a later step. A write error is returned only when err is nil.
func writeThenFail(cmd *cobra.Command, app *app, asJSON bool, data any, page view.Page, err error) error {
	if writeErr := writeOutput(cmd, app, asJSON, data, page); writeErr != nil && err == nil {
		return writeErr
	}

	return err
}

type messageOutput struct {
	Message string `json:"message"`
}

func writeMessage(cmd *cobra.Command, app *app, message string) error {
	return writeOutput(cmd, app, false, messageOutput{Message: message}, view.Message(message))
}

func addJSONFlag(cmd *cobra.Command, asJSON *bool) {
	cmd.Flags().BoolVar(asJSON, "json", false, "Render JSON output")
}
