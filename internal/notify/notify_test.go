package notify

import "testing"

type recordingNotifier struct {
	sent []Notification
}

func (r *recordingNotifier) Send(n Notification) error {
	r.sent = append(r.sent, n)
	return nil
}

func TestSendRequiresGrantedPermission(t *testing.T) {
	rec := &recordingNotifier{}
	svc := NewService(rec)

	delivered, err := svc.Send(Notification{Title: "Task due soon"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if delivered || len(rec.sent) != 0 {
		t.Fatalf("notification delivered without permission: %+v", rec.sent)
	}

	svc.SetPermission(PermissionGranted)
	delivered, err = svc.Send(Notification{Title: "Task due soon"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !delivered || len(rec.sent) != 1 {
		t.Fatalf("granted send not delivered: %+v", rec.sent)
	}
}

func TestSendStopsAfterDenial(t *testing.T) {
	rec := &recordingNotifier{}
	svc := NewService(rec)
	svc.SetPermission(PermissionGranted)
	svc.SetPermission(PermissionDenied)

	if delivered, _ := svc.Send(Notification{Title: "x"}); delivered {
		t.Fatal("denied permission must block delivery")
	}
}

func TestRequestPermissionOnlyResolvesDefault(t *testing.T) {
	svc := NewService(nil)
	if got := svc.RequestPermission(false); got != PermissionDenied {
		t.Fatalf("deny from default = %s", got)
	}
	// A later grant attempt does not flip a decided state.
	if got := svc.RequestPermission(true); got != PermissionDenied {
		t.Fatalf("request after denial = %s", got)
	}
}

func TestSetPermissionRejectsInvalid(t *testing.T) {
	svc := NewService(nil)
	svc.SetPermission(Permission("maybe"))
	if svc.Permission() != PermissionDefault {
		t.Fatalf("invalid permission accepted: %s", svc.Permission())
	}
}
