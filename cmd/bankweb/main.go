// Command bankweb exercises the web client core from a shell: session
// inspection, login URLs, account reads, payments, and the onboarding
// workflow, all through the same pipeline the browser products use.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/imaginarybank/webcore/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	App    *bootstrap.App
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage(os.Stderr)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cmd, os.Args[2:]); err != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmdName, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cmd command, args []string) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close app failed", "error", cerr)
		}
	}()

	return cmd.run(&commandContext{Ctx: ctx, Logger: logger, App: app}, args)
}

func commands() map[string]command {
	return map[string]command{
		"session": {
			name:        "session",
			description: "Show the current session (anonymous when none)",
			run:         runSession,
		},
		"login-url": {
			name:        "login-url",
			description: "Print the hosted login URL for a return path",
			run:         runLoginURL,
		},
		"logout": {
			name:        "logout",
			description: "Terminate the session and clear local caches",
			run:         runLogout,
		},
		"overview": {
			name:        "overview",
			description: "Read the accounts overview",
			run:         runOverview,
		},
		"statement": {
			name:        "statement",
			description: "Read one page of an account statement",
			run:         runStatement,
		},
		"pay": {
			name:        "pay",
			description: "Execute a payment",
			run:         runPay,
		},
		"onboard": {
			name:        "onboard",
			description: "Run the account enrollment workflow end to end",
			run:         runOnboard,
		},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: bankweb <command> [flags]")
	fmt.Fprintln(w)
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, cmds[name].description)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runSession(ctx *commandContext, _ []string) error {
	sess := ctx.App.Sessions.Get(ctx.Ctx)
	return printJSON(sess)
}

func runLoginURL(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login-url", flag.ContinueOnError)
	returnPath := fs.String("return", "/home", "in-app destination after login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Println(ctx.App.Auth.LoginURL(*returnPath))
	return nil
}

func runLogout(ctx *commandContext, _ []string) error {
	return ctx.App.Auth.Logout(ctx.Ctx)
}

func runOverview(ctx *commandContext, _ []string) error {
	overview, err := ctx.App.Banking.Overview(ctx.Ctx)
	if err != nil {
		return err
	}
	return printJSON(overview)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
