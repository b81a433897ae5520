package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"esg-maturity-backend/internal/service"
)

// runAdminCommand creates an administrator account:
//
//	app admin -email admin@prefeitura.gov.br
//
// The password is read from the terminal without echo, or from one line of
// stdin when stdin is not a terminal.
func runAdminCommand(authService service.AuthService, args []string) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	email := fs.String("email", "", "administrator email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-email is required")
	}

	password, err := readPassword()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	created, err := authService.EnsureAdmin(context.Background(), *email, password)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("an account for %s already exists", *email)
	}
	fmt.Printf("administrator %s created\n", *email)
	return nil
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
