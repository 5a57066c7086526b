package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gstwebsrc/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the engine options",
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EngineOptionsSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(app.Out, string(data))
	return err
}
