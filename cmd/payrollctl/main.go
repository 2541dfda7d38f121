// payrollctl is the command line front end for the payroll backend. Every
// command maps onto one backend operation; access rules are declared per
// command and checked locally before any request is made.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"payrollkit/internal/api"
	"payrollkit/internal/guard"
	"payrollkit/internal/platform/config"
	"payrollkit/internal/session"
)

type app struct {
	cfg      config.Config
	sessions session.Store
	client   *api.Client
	log      *slog.Logger
}

type command struct {
	name    string
	summary string
	// require is nil for commands that work without a session (login, help).
	require *guard.Requirement
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{}

func register(c command) {
	if _, dup := commands[c.name]; dup {
		panic("duplicate command " + c.name)
	}
	commands[c.name] = c
}

var (
	anyRole   = &guard.Requirement{}
	adminOnly = &guard.Requirement{Role: session.RoleAdmin}
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "payrollctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	cfg := config.Load()

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		var err error
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return err
		}
	}
	sessions := session.NewFileStore(sessionPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if os.Getenv("PAYROLL_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	client, err := api.New(cfg.APIBaseURL, sessions, api.Options{
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     logger,
		PageSize:   cfg.PageSize,
	})
	if err != nil {
		return err
	}

	if cmd.require != nil {
		switch guard.Authorize(sessions, *cmd.require) {
		case guard.RedirectLogin:
			return fmt.Errorf("not logged in; run `payrollctl login` first")
		case guard.RedirectHome:
			return fmt.Errorf("%s is not available for your role; see %s", cmd.name, guard.Landing(sessions.Role()))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{cfg: cfg, sessions: sessions, client: client, log: logger}
	return cmd.run(ctx, a, args[1:])
}

func usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Usage: payrollctl <command> [flags]")
	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, commands[name].summary)
	}
	tw.Flush()
	fmt.Println()
	fmt.Println("Environment: PAYROLL_API_URL, PAYROLL_SESSION_FILE, PAYROLL_HTTP_TIMEOUT,")
	fmt.Println("             PAYROLL_PAGE_SIZE, PAYROLL_WAREHOUSE_URL, PAYROLL_DEBUG")
}
