package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITDESK_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GITDESK_TEST_NO_INTERACTIVE is set)")

func checkInteractiveAllowed() error {
	if os.Getenv("GITDESK_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// PromptToken asks for a personal access token without echoing it
func PromptToken(message string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var token string
	prompt := &survey.Password{Message: message}
	if err := survey.AskOne(prompt, &token, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}
