// Package cli implements the hashvatar command-line interface.
//
// This package provides commands for rendering deterministic avatars
// from input strings, serving them over HTTP, and previewing them in
// the terminal. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
//   - render: Write an avatar to a PNG, or an animated GIF
//   - serve:  Run the avatar HTTP server
//   - preview: Show an avatar in the terminal, optionally animated
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
//
// # Example
//
//	import "github.com/matzehuels/hashvatar/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli
