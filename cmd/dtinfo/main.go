package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/datatypes"
	"github.com/wippyai/datatypes/loader"
	"github.com/wippyai/datatypes/registry"
)

func main() {
	var (
		defsFile    = flag.String("defs", "", "Path to a YAML definitions file")
		list        = flag.Bool("list", false, "List definitions and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *defsFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: dtinfo -defs <file.yaml> [-list]")
		fmt.Fprintln(os.Stderr, "       dtinfo -defs <file.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		loader.SetLogger(logger)
		registry.SetLogger(logger)
	}

	reg := registry.New()
	defs, err := loader.New(reg).LoadFile(*defsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*defsFile, defs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printDefinitions(*defsFile, defs, *list)
}

func printDefinitions(filename string, defs []datatypes.Definition, list bool) {
	fmt.Printf("Definitions: %s\n", filename)
	fmt.Printf("Count: %d\n", len(defs))

	if !list {
		return
	}
	fmt.Println()
	for _, def := range defs {
		fmt.Printf("  %-24s %-14s %8s  %s\n",
			def.Base().Name,
			def.Kind(),
			byteSizeStr(def),
			strings.Join(def.AttributeNames(), ", "))
	}
}

func byteSizeStr(def datatypes.Definition) string {
	size, ok := def.ByteSize()
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%d", size)
}
