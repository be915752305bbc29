package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errConfirmationRequired is returned when a destructive command runs
// without a terminal and without --yes.
var errConfirmationRequired = errors.New("refusing to delete without confirmation; pass --yes")

// stdinIsTerminal reports whether prompts can be answered interactively.
// Tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirm asks a y/N question on the command's input. Anything but an
// explicit yes declines.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if !stdinIsTerminal() {
		return false, errConfirmationRequired
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer := readLine(reader)

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
