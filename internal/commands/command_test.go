package commands

import (
	"errors"
	"testing"
)

func TestParseReservedWordsAreCaseInsensitive(t *testing.T) {
	cases := []struct {
		input string
		want  Type
	}{
		{"admin", TypeAdmin},
		{"  ADMIN  ", TypeAdmin},
		{"Unadmin", TypeUnadmin},
		{"alarm", TypeAlarm},
		{"AlArM", TypeAlarm},
	}
	for _, tc := range cases {
		cmd, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if cmd.Type != tc.want {
			t.Fatalf("parse %q: type = %s, want %s", tc.input, cmd.Type, tc.want)
		}
	}
}

func TestParsePlainTextBecomesAdd(t *testing.T) {
	cmd, err := Parse("  buy groceries  ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd {
		t.Fatalf("type = %s, want add", cmd.Type)
	}
	if cmd.Add == nil || cmd.Add.Text != "buy groceries" {
		t.Fatalf("add args = %+v", cmd.Add)
	}
}

func TestParseReservedWordInsideSentenceIsATask(t *testing.T) {
	cmd, err := Parse("admin panel redesign")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd {
		t.Fatalf("type = %s, want add", cmd.Type)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("   ")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty_input error, got %v", err)
	}
}

func TestExecuteDispatchesToHandlers(t *testing.T) {
	var got string
	handlers := Handlers{
		Add:     func(args AddArgs) (Result, error) { got = "add:" + args.Text; return Result{Message: "added"}, nil },
		Admin:   func() (Result, error) { got = "admin"; return Result{}, nil },
		Unadmin: func() (Result, error) { got = "unadmin"; return Result{}, nil },
		Alarm:   func() (Result, error) { got = "alarm"; return Result{}, nil },
	}

	cmd, _ := Parse("write tests")
	res, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute add: %v", err)
	}
	if res.Message != "added" || got != "add:write tests" {
		t.Fatalf("add dispatch: result=%+v got=%q", res, got)
	}

	for _, input := range []string{"admin", "unadmin", "alarm"} {
		cmd, _ := Parse(input)
		if _, err := Execute(cmd, handlers); err != nil {
			t.Fatalf("execute %s: %v", input, err)
		}
		if got != input {
			t.Fatalf("dispatch %s: got %q", input, got)
		}
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, _ := Parse("alarm")
	_, err := Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing error, got %v", err)
	}
}
