// Command dhallcheck type-checks a wire-encoded (YAML/JSON) term document and
// prints its type, or serves the same check over gRPC.
//
// Usage:
//
//	dhallcheck <file.dhallterm.yaml>     type-check a file
//	dhallcheck -                         type-check stdin
//	dhallcheck -normalize <file>         also print the term's normal form
//	dhallcheck -serve [addr]             serve TypeChecker.TypeOf over gRPC (default :9090)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dhallcore/dhallcore/internal/pipeline"
	"github.com/dhallcore/dhallcore/internal/prettyprinter"
	"github.com/dhallcore/dhallcore/internal/service"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if handleServe() {
		return
	}
	if handleHelp() {
		return
	}

	normalize := false
	var path string
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-normalize" || arg == "--normalize":
			normalize = true
		case path == "":
			path = arg
		}
	}

	source, err := readSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	ctx := pipeline.NewPipelineContext(source)
	pipeline.Standard().Run(ctx)

	if !ctx.OK() {
		for _, e := range ctx.Errors {
			fmt.Fprintf(os.Stderr, "- %s\n", e)
		}
		os.Exit(1)
	}

	printResult(ctx, normalize)
}

func printResult(ctx *pipeline.PipelineContext, normalize bool) {
	typeLabel := "Type"
	if isatty.IsTerminal(os.Stdout.Fd()) {
		typeLabel = "\x1b[1mType\x1b[0m"
	}
	fmt.Printf("%s: %s\n", typeLabel, prettyprinter.Print(ctx.Type))
	if normalize {
		fmt.Printf("Normal form: %s\n", ctx.Rendered)
	}
}

func handleHelp() bool {
	if len(os.Args) < 2 {
		return false
	}
	switch os.Args[1] {
	case "-help", "--help", "help":
	default:
		return false
	}
	fmt.Print(usage)
	return true
}

func handleServe() bool {
	if len(os.Args) < 2 || (os.Args[1] != "-serve" && os.Args[1] != "--serve") {
		return false
	}
	addr := ":9090"
	if len(os.Args) >= 3 {
		addr = os.Args[2]
	}
	srv, err := service.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error starting service: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("dhallcheck: serving TypeChecker.TypeOf on %s\n", addr)
	if err := srv.Serve(addr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	return true
}

func readSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, fmt.Errorf("usage: dhallcheck <file> (or pipe a document on stdin)")
		}
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

const usage = `dhallcheck: type-check a wire-encoded term document

Usage:
  dhallcheck <file.dhallterm.yaml>   type-check a file
  dhallcheck -                       type-check stdin
  dhallcheck -normalize <file>       also print the term's normal form
  dhallcheck -serve [addr]           serve TypeChecker.TypeOf over gRPC (default :9090)
`
