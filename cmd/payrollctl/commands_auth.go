package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

func init() {
	register(command{
		name:    "login",
		summary: "authenticate and save the session",
		run:     cmdLogin,
	})
	register(command{
		name:    "logout",
		summary: "invalidate the token and clear the session",
		require: anyRole,
		run:     cmdLogout,
	})
	register(command{
		name:    "whoami",
		summary: "show the logged in account",
		require: anyRole,
		run:     cmdWhoami,
	})
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("login: -email is required")
	}
	if *password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		*password = strings.TrimRight(line, "\r\n")
	}

	result, err := a.client.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", *email, result.Role)
	return nil
}

func cmdLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.client.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func cmdWhoami(ctx context.Context, a *app, _ []string) error {
	profile, err := a.client.Auth.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s <%s> role=%s\n", profile.FirstName, profile.LastName, profile.Email, a.sessions.Role())
	return nil
}
