package cmd

import (
	"fmt"
	"strings"
)

// promptConfirmation prompts the user for a yes/no confirmation.
func promptConfirmation(prompt string) (bool, error) {
	fmt.Print(prompt)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		// Empty input (just Enter) means no
		return false, nil
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
