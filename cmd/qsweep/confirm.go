package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// affirmativeTokens are the only answers that count as consent. The tool
// originated in a Portuguese-speaking deployment, hence "s"/"sim" next to
// "y"/"yes".
var affirmativeTokens = map[string]bool{
	"s":   true,
	"sim": true,
	"y":   true,
	"yes": true,
}

// consoleConfirmer prompts the operator on the terminal.
type consoleConfirmer struct {
	in  io.Reader
	out io.Writer
}

func newConsoleConfirmer() *consoleConfirmer {
	return &consoleConfirmer{in: os.Stdin, out: os.Stdout}
}

// Confirm prints the prompt and reads one line. Anything other than an
// affirmative token, including an empty line or a read error, declines.
func (c *consoleConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [s/N]: ", prompt)

	reader := bufio.NewReader(c.in)
	response, _ := reader.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))

	return affirmativeTokens[response]
}
