package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/filex/internal/app"
	"github.com/kk-code-lab/filex/internal/config"
)

func printHelp() {
	fmt.Print(`filex - Keyboard-driven terminal file browser

USAGE:
    filex [OPTIONS] [PATH]

OPTIONS:
    -h, --help    Show this help message and exit

PATH defaults to the current working directory. Set FILEX_LOG to a file
path to enable debug logging.
`)
}

func setupLogging() {
	path := os.Getenv("FILEX_LOG")
	if path == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// resolveStartPath validates the start directory. Failures here are
// fatal: there is nothing sensible to browse.
func resolveStartPath(arg string) (string, error) {
	path := arg
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = cwd
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	path, err = filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", arg, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", path)
	}
	return path, nil
}

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	startArg := ""
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-h" || arg == "--help" {
			printHelp()
			os.Exit(0)
		}
		startArg = arg
	}

	setupLogging()

	startPath, err := resolveStartPath(startArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A malformed config file is fatal; a missing one is not.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	application, err := apppkg.NewApplication(cfg, startPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}

	application.Run()
}
