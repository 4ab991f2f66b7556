package cmd

import (
	"os"

	"ramal/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"2222"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	srv, err := server.NewServer(s.Host, s.Port, cwd)
	if err != nil {
		return err
	}

	return srv.Start()
}
