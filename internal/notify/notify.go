// Package notify wraps desktop notifications and the alarm sound behind
// small interfaces so the update loop can fire them without caring about
// the host OS, and tests can substitute fakes.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Permission mirrors the desktop notification permission states: nothing
// decided yet, granted, or denied.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

func (p Permission) IsValid() bool {
	switch p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return true
	}
	return false
}

type Notification struct {
	Title string
	Body  string
}

type Notifier interface {
	Send(Notification) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(Notification) error { return nil }

type ExecNotifier struct{}

func (ExecNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Service tracks the permission state and gates every Send on it. The
// permission is consulted at send time, never cached by callers, so a
// revocation takes effect on the very next alert.
type Service struct {
	permission Permission
	notifier   Notifier
}

func NewService(notifier Notifier) *Service {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &Service{permission: PermissionDefault, notifier: notifier}
}

func (s *Service) Permission() Permission {
	return s.permission
}

func (s *Service) SetPermission(p Permission) {
	if !p.IsValid() {
		return
	}
	s.permission = p
}

// RequestPermission resolves a default state to an answer. Granting or
// re-denying an already-decided state is a no-op apart from returning the
// current value.
func (s *Service) RequestPermission(grant bool) Permission {
	if s.permission == PermissionDefault {
		if grant {
			s.permission = PermissionGranted
		} else {
			s.permission = PermissionDenied
		}
	}
	return s.permission
}

// Send delivers the notification only when permission is granted. The
// first return value reports whether delivery was attempted.
func (s *Service) Send(n Notification) (bool, error) {
	if s.permission != PermissionGranted {
		return false, nil
	}
	return true, s.notifier.Send(n)
}
