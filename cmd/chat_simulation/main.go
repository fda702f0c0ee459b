package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"markethub-be/internal/entity"
	"markethub-be/internal/repository/memory"
	"markethub-be/pkg/catalog"
	"markethub-be/pkg/chat"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type options struct {
	seed      uint64
	latency   time.Duration
	storeId   int
	cartCount int
	script    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "chat_simulation [message...]",
		Short: "Talk to the storefront assistant from the terminal",
		Long: "Runs the conversation engine against the embedded catalog. Messages come from the\n" +
			"arguments, from --script (one per line) or interactively from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			messages := args
			if opts.script != "" {
				lines, err := readScript(opts.script)
				if err != nil {
					return err
				}
				messages = append(messages, lines...)
			}
			return simulate(opts, messages, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reply selection (0 = random)")
	cmd.Flags().DurationVar(&opts.latency, "latency", 0, "fixed reply delay, e.g. 1s (0 = none)")
	cmd.Flags().IntVar(&opts.storeId, "store", 0, "id of the store the shopper is browsing")
	cmd.Flags().IntVar(&opts.cartCount, "cart-count", 0, "number of items in the shopper's cart")
	cmd.Flags().StringVar(&opts.script, "script", "", "file with one message per line")
	return cmd
}

func readScript(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func simulate(opts options, messages []string, in io.Reader, out io.Writer) error {
	seed := catalog.DefaultSeed()
	stores := seed.StoreEntities()

	cc := chat.Context{Stores: stores, CartCount: opts.cartCount}
	if opts.storeId != 0 {
		for i := range stores {
			if stores[i].Id == opts.storeId {
				cc.CurrentStore = &stores[i]
			}
		}
		if cc.CurrentStore == nil {
			return fmt.Errorf("unknown store %d", opts.storeId)
		}
	}

	engineOpts := []chat.Option{chat.WithLatency(opts.latency, opts.latency)}
	if opts.seed != 0 {
		engineOpts = append(engineOpts, chat.WithSeed(opts.seed))
	}
	engine := chat.NewEngine(memory.NewSessionRepository(0), engineOpts...)

	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(out, "MarketHub assistant (session %s)\n", engine.GetCurrentSession())
	if cc.CurrentStore != nil {
		color.New(color.FgYellow).Fprintf(out, "Browsing: %s\n", cc.CurrentStore.Name)
	}

	send := func(text string) {
		engine.AddMessage(entity.ChatRoleUser, text)
		cc.UserHistory = append(cc.UserHistory, text)

		reply := engine.GenerateResponse(text, cc)
		engine.AddMessage(entity.ChatRoleBot, reply)

		color.New(color.FgGreen).Fprintf(out, "\nYOU: %s\n", text)
		color.New(color.Faint).Fprintf(out, "[%s]\n", chat.Classify(text))
		fmt.Fprintf(out, "BOT: %s\n", reply)
	}

	if len(messages) > 0 {
		for _, m := range messages {
			send(m)
		}
		return nil
	}

	color.New(color.Faint).Fprintln(out, "Type a message, or 'exit' to quit.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}
		send(text)
	}
	return scanner.Err()
}
