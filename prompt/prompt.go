package prompt

import (
	"fmt"
	"strings"

	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/erikgeiser/promptkit/textinput"
)

// UserInterface lets commands ask questions without talking to the terminal
// directly, so tests can swap in canned answers.
type UserInterface interface {
	ReadStringFromUser(message string, defaultValue string) (string, error)
	AskUserToConfirm(message string) bool
}

// InteractiveUI prompts on the terminal.
type InteractiveUI struct{}

// ReadStringFromUser can be used to read any value from the user or the
// defaultValue when provided. Blank answers are rejected.
func (InteractiveUI) ReadStringFromUser(message string, defaultValue string) (string, error) {
	input := textinput.New(message)
	input.Placeholder = defaultValue
	input.InitialValue = defaultValue
	input.Validate = NotBlank

	result, err := input.RunPrompt()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// AskUserToConfirm will prompt the user to confirm with the provided message.
func (InteractiveUI) AskUserToConfirm(message string) bool {
	input := confirmation.New(message, confirmation.No)
	result, err := input.RunPrompt()
	return err == nil && result
}

// TestingUI answers every prompt with Input and Confirm.
type TestingUI struct {
	Input   string
	Confirm bool
	Asked   []string
}

func (ui *TestingUI) ReadStringFromUser(message string, defaultValue string) (string, error) {
	ui.Asked = append(ui.Asked, message)
	if err := NotBlank(ui.Input); err != nil {
		return "", err
	}
	return strings.TrimSpace(ui.Input), nil
}

func (ui *TestingUI) AskUserToConfirm(message string) bool {
	ui.Asked = append(ui.Asked, message)
	return ui.Confirm
}

// NotBlank is a textinput validator.
func NotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}
