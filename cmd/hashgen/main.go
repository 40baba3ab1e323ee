// Command hashgen prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
//
//	hashgen -cost 12                 # prompts for the password without echo
//	printf '%s\n' "$PW" | hashgen    # non-interactive, reads one line from stdin
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/isdelr/admin-auth-be/internal/auth"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "hashgen:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hashgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	password := fs.String("password", "", "password to hash; visible in shell history and ps, prefer the prompt or stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hasher, err := auth.NewBcryptHasher(*cost)
	if err != nil {
		return err
	}

	pw := *password
	if pw == "" {
		pw, err = promptPassword(stdin, stderr)
		if err != nil {
			return err
		}
	}
	if pw == "" {
		return errors.New("password must not be empty")
	}

	hash, err := hasher.Hash(pw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hash)
	return err
}

// promptPassword reads without echo from a terminal, or a single line otherwise.
func promptPassword(stdin *os.File, w io.Writer) (string, error) {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "read password")
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(w, "Enter password: ")
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}
	return string(pw), nil
}
