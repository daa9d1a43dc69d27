package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/edadma/editline"
)

func main() {
	term, err := editline.NewStdioTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	editor := editline.NewLineEditor(1024, 50)

	for {
		fmt.Print("> ")

		line, err := editor.ReadLine(term)
		if errors.Is(err, editline.ErrInterrupted) {
			fmt.Println("^C")
			continue
		}
		if errors.Is(err, editline.ErrEndOfInput) {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}

		if line == "exit" {
			break
		}
		if line != "" {
			fmt.Println(line)
		}
	}
}
