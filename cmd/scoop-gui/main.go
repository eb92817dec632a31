package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mori5600/scoop-gui/internal/config"
	"github.com/mori5600/scoop-gui/internal/controller"
	"github.com/mori5600/scoop-gui/internal/shell"
	"github.com/mori5600/scoop-gui/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config file (default scoop-gui.yaml when present)")
	shellExe := flag.String("shell", "", "PowerShell executable (default: auto-detect pwsh, then powershell)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("scoop-gui", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *shellExe != "" {
		cfg.Shell = *shellExe
	}

	relay := tui.NewRelay()
	ctrl := controller.New(cfg, shell.ExecRunner{}, relay)
	app := tui.NewApp(ctrl)

	p := tea.NewProgram(app, tea.WithAltScreen())
	relay.Bind(func(msg tea.Msg) { p.Send(msg) })

	ctrl.Start()
	defer ctrl.Close()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
