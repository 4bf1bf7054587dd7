package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Admin   func() (Result, error)
	Unadmin func() (Result, error)
	Alarm   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeAdmin:
		if handlers.Admin == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "admin handler not configured"}
		}
		return handlers.Admin()
	case TypeUnadmin:
		if handlers.Unadmin == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "unadmin handler not configured"}
		}
		return handlers.Unadmin()
	case TypeAlarm:
		if handlers.Alarm == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "alarm handler not configured"}
		}
		return handlers.Alarm()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
