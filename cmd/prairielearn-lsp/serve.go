package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/glsp/server"

	"github.com/PrairieLearn/vscode-prairielearn/implementation"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the language server",
	Long: `Run the language server over stdio (the default), tcp, or websocket.
Editors normally launch it with no arguments beyond "serve".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(config.GetString(keyServeTransport), config.GetString(keyServeAddress))
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.String("transport", defaultServeTransport, "stdio, tcp or websocket")
	flags.String("address", defaultServeAddress, "listen address for the tcp and websocket transports")
	bindFlag(keyServeTransport, flags.Lookup("transport"))
	bindFlag(keyServeAddress, flags.Lookup("address"))
	rootCmd.AddCommand(serveCmd)
}

func serve(transport string, address string) error {
	implementation.Version = version
	debug := config.GetString(keyLogLevel) == "debug"
	lspServer := server.NewServer(&implementation.Handler, implementation.Name, debug)

	log.Infof("starting %s %s on %s", implementation.Name, version, transport)
	switch transport {
	case "stdio":
		return lspServer.RunStdio()
	case "tcp":
		return lspServer.RunTCP(address)
	case "websocket":
		return lspServer.RunWebSocket(address)
	default:
		return fmt.Errorf("unsupported transport %q", transport)
	}
}
