package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	promptMarker   = "\n> "
	passwordPrompt = "Enter password: "
)

// swapped out in tests; the real one needs a tty on stdin
var readPassword = term.ReadPassword

// PromptLine asks for one answer on the console, e.g. a name or an email.
// A last answer without a newline still counts; an empty input at EOF is
// io.EOF.
func PromptLine(in *bufio.Reader, question string, out io.Writer) (string, error) {
	if _, err := io.WriteString(out, question+promptMarker); err != nil {
		return "", err
	}

	answer, err := in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && answer != "":
	default:
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// PromptPassword reads the account password with echo off. The bytes belong
// to the caller, which zeroes them after the request is sent.
func PromptPassword(out io.Writer) ([]byte, error) {
	if _, err := io.WriteString(out, passwordPrompt); err != nil {
		return nil, err
	}

	secret, err := readPassword(int(os.Stdin.Fd()))
	// echo was off, so the user's Enter never reached the screen
	fmt.Fprintln(out)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return secret, nil
}
