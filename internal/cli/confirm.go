package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/beacon-labs/beacon/internal/collection"
)

// stdinConfirm builds a ConfirmFunc that prints the prompt to stdout and
// reads one answer line from stdin. An empty answer takes defaultYes;
// otherwise only "y"/"yes" is affirmative.
func stdinConfirm(defaultYes bool) collection.ConfirmFunc {
	return func(prompt string) (bool, error) {
		fmt.Fprint(os.Stdout, prompt)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, err
			}
			return defaultYes, nil
		}
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if answer == "" {
			return defaultYes, nil
		}
		return answer == "y" || answer == "yes", nil
	}
}
