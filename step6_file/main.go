package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/LostInTheLogs/mal/config"
	"github.com/LostInTheLogs/mal/evaluator"
	"github.com/LostInTheLogs/mal/types"
)

func main() {
	log.SetFlags(0)

	configPath := flag.String("config", "", "path to a YAML config file (default $"+config.EnvVar+" or ~/.mal.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var script string
	var argv []string
	if args := flag.Args(); len(args) > 0 {
		script, argv = args[0], args[1:]
	}

	replEnv, err := evaluator.NewRootEnv(cfg.CoreOptions(), os.Stdout, argv)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DebugEval {
		replEnv.Set("DEBUG-EVAL", types.True)
	}

	if script != "" {
		load := types.NewList(types.NewSymbol("load-file"), types.NewString(script))
		if _, err := evaluator.Eval(load, replEnv); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	repl(cfg, replEnv)
}

func repl(cfg *config.Config, replEnv *types.Env) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			fmt.Println()
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		s, err := evaluator.Rep(line, replEnv)
		switch {
		case errors.Is(err, types.ErrNoForm):
		case err != nil:
			fmt.Printf("error: %v\n", err)
		default:
			fmt.Println(s)
		}
	}
}
