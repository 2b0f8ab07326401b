package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/logo-fix/internal/config"
	"github.com/ironsheep/logo-fix/internal/fixer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("fix-logo %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("fix-logo - remove the checkerboard background from the project logo")
			fmt.Println()
			fmt.Println("Usage: fix-logo")
			fmt.Println()
			fmt.Printf("Reads %s, clears the border-connected checkerboard and writes\n", config.DefaultInputPath)
			fmt.Println("the result to:")
			for _, p := range config.DefaultOutputPaths {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging\n", config.LogLevelEnv)
			return
		}
	}

	// Logs go to stderr, stdout only carries the confirmation line
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := run(os.Stdout); err != nil {
		log.Fatalf("fix-logo: %v", err)
	}
}

func run(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Debug() {
		log.Printf("fix-logo v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	report, err := fixer.Run(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, report.Message())
	return err
}
