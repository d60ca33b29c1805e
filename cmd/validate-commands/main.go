package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/cloak_gw/pkg/validate"
)

// CLI для проверки команд управления кэшем перед публикацией в Kafka.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin читаем как jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(context.Background(), validate.NewCommandValidator(), path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
