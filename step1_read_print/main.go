// step1_read_print echoes each form it reads, normalized by the printer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/LostInTheLogs/mal/printer"
	"github.com/LostInTheLogs/mal/reader"
	"github.com/LostInTheLogs/mal/types"
)

func rep(input string) (string, error) {
	form, err := reader.ReadStr(input)
	if err != nil {
		return "", err
	}
	return printer.PrintStr(form, true), nil
}

func main() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for {
		line, err := ln.Prompt("user> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			break
		}
		ln.AppendHistory(line)

		s, err := rep(line)
		switch {
		case errors.Is(err, types.ErrNoForm):
		case err != nil:
			fmt.Printf("error: %v\n", err)
		default:
			fmt.Println(s)
		}
	}
}
