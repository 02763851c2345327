// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command identifies the top-level action.
type Command int

const (
	// CmdTUI launches the full-screen interface (default).
	CmdTUI Command = iota
	// CmdAsk runs the line-oriented REPL, or a single question.
	CmdAsk
	// CmdVersion prints version information.
	CmdVersion
	// CmdHelp prints usage.
	CmdHelp
)

// Parse routes os.Args to a command and its parsed arguments.
func Parse() (Command, *ArgParser) {
	args := NewArgParser(os.Args[1:])

	switch args.Subcommand() {
	case "ask":
		return CmdAsk, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	}
	if args.BoolFlag("version") {
		return CmdVersion, args
	}
	if args.BoolFlag("help") || args.BoolFlag("h") {
		return CmdHelp, args
	}
	return CmdTUI, args
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("iurista %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// PrintHelp prints usage.
func PrintHelp() {
	fmt.Print(`iurista - Asistente legal de IuristaTech para la terminal

Uso:
  iurista                 Interfaz completa (TUI)
  iurista ask [pregunta]  Consulta única o REPL de línea de comandos
  iurista version         Versión del binario

Flags:
  --api-url URL   URL del backend (por defecto la del archivo de configuración)
  --local         Modo local sin servidor (simulador integrado)
  --login         Iniciar sesión antes de preguntar (modo ask)
  --config RUTA   Archivo de configuración alternativo
`)
}
