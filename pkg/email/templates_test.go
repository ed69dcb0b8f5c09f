package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildStaffWelcomeEmail(t *testing.T) {
	msg := BuildStaffWelcomeEmail(StaffWelcomeData{
		FirstName:    "Elif",
		Email:        "elif@example.com",
		BranchName:   "Kadıköy",
		TempPassword: "s3cret-tmp",
		LoginURL:     "https://app.example.com",
	})

	if len(msg.To) != 1 || msg.To[0] != "elif@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "X-Ear") {
		t.Errorf("subject missing app name: %q", msg.Subject)
	}
	for _, want := range []string{"Elif", "Kadıköy", "s3cret-tmp", "https://app.example.com"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}

func TestBuildAppointmentReminderEmail(t *testing.T) {
	at := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)
	msg := BuildAppointmentReminderEmail(AppointmentReminderData{
		PatientName: "Ahmet Demir",
		Email:       "ahmet@example.com",
		BranchName:  "Şişli",
		ScheduledAt: at,
		Kind:        "first_visit",
	})

	if !strings.Contains(msg.TextBody, "14.09.2026 10:30") {
		t.Errorf("text body missing formatted time: %q", msg.TextBody)
	}
	if !strings.Contains(msg.TextBody, "İlk Muayene") {
		t.Errorf("text body missing translated kind: %q", msg.TextBody)
	}
}

func TestBuildAppointmentReminderEmailUnknownKind(t *testing.T) {
	msg := BuildAppointmentReminderEmail(AppointmentReminderData{
		PatientName: "Ahmet Demir",
		Email:       "ahmet@example.com",
		ScheduledAt: time.Now(),
		Kind:        "device_fitting_v2",
	})
	if !strings.Contains(msg.TextBody, "Randevu") {
		t.Errorf("unknown kind should fall back to generic label: %q", msg.TextBody)
	}
}
