package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/peak/internal/cli"
	"github.com/alexanderramin/peak/internal/intelligence"
	"github.com/alexanderramin/peak/internal/llm"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Generated nudges only when the LLM is enabled; otherwise every plan
	// comes from the knowledge base.
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return fmt.Errorf("llm config: %w", err)
	}
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewClient(llmCfg, observer)
		if !client.Available(context.Background()) {
			fmt.Fprintf(os.Stderr, "Warning: model server not reachable at %s, nudges will come from the knowledge base\n", llmCfg.Endpoint)
		}
		app.Nudges = intelligence.NewNudgeService(client)
	}

	return cli.NewRootCmd(app).Execute()
}
