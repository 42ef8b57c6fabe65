package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/kutil/terminal"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stylist := terminal.StdoutStylist
		terminal.Printf("%s %s\n", stylist.Name("prairielearn-lsp"), stylist.Value(version))
		terminal.Printf("  commit: %s\n", commit)
		terminal.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
