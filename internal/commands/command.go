// Package commands interprets text submitted through the task input box.
// A handful of reserved words act as hidden commands; everything else is
// treated as the text of a new task.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeAdmin   Type = "admin"
	TypeUnadmin Type = "unadmin"
	TypeAlarm   Type = "alarm"
)

type ErrorCode string

const (
	ErrCodeEmptyInput     ErrorCode = "empty_input"
	ErrCodeHandlerMissing ErrorCode = "handler_missing"
	ErrCodeUnknownCommand ErrorCode = "unknown_command"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
}

// Parse classifies submitted input. Reserved words match the whole trimmed
// input case-insensitively, so "  ADMIN  " toggles admin mode while
// "admin panel" stays a plain task.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "input is empty"}
	}

	switch strings.ToLower(raw) {
	case string(TypeAdmin):
		return Command{Type: TypeAdmin, Raw: input}, nil
	case string(TypeUnadmin):
		return Command{Type: TypeUnadmin, Raw: input}, nil
	case string(TypeAlarm):
		return Command{Type: TypeAlarm, Raw: input}, nil
	}
	return Command{Type: TypeAdd, Raw: input, Add: &AddArgs{Text: raw}}, nil
}
