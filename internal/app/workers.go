package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entappt "github.com/omrozmn/x-ear-sub003/internal/repo/appointment"
	entbranch "github.com/omrozmn/x-ear-sub003/internal/repo/branch"
	entassign "github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	entloaner "github.com/omrozmn/x-ear-sub003/internal/repo/loanerdevice"
	entpatient "github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	entpay "github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
	entsms "github.com/omrozmn/x-ear-sub003/internal/repo/smsmessage"
	"github.com/omrozmn/x-ear-sub003/internal/service/payment"
	"github.com/omrozmn/x-ear-sub003/pkg/email"
	svcsms "github.com/omrozmn/x-ear-sub003/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	NC         *nats.Conn
	DB         *repo.Client
	PaymentSvc payment.Service
	SMS        *svcsms.Client
	Email      *email.Client
}

func RegisterWorkers(p WorkerParams) {
	stop := make(chan struct{})
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startTimelineWorker(p.NC, p.DB)
			startSMSWorker(p.NC, p.DB, p.SMS)
			startMaintenanceWorker(p.DB, p.PaymentSvc, p.Email, stop)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// NATS drain handled by ProvideNatsClient
			close(stop)
			return nil
		},
	})
}

func parseEventID(msg *nats.Msg) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	return id, err == nil
}

// ---------------------------------------------------------------------------
// timeline_worker
// ---------------------------------------------------------------------------

// startTimelineWorker materializes domain events into TimelineEvent rows so
// the patient timeline endpoint can read them without fanning out to every
// table on each request.
func startTimelineWorker(nc *nats.Conn, db *repo.Client) {
	subscribe := func(subject string, handle func(ctx context.Context, id uuid.UUID, event string) error) {
		_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
			id, valid := parseEventID(msg)
			if !valid {
				return
			}
			parts := strings.Split(msg.Subject, ".")
			if len(parts) < 3 {
				return
			}
			event := parts[1] + "." + parts[2]
			if err := handle(context.Background(), id, event); err != nil {
				slog.Warn("timeline_worker: event dropped", "subject", msg.Subject, "err", err)
			}
		})
		if err != nil {
			slog.Error("timeline_worker: subscribe failed", "subject", subject, "err", err)
		}
	}

	assignmentTitles := map[string]string{
		"assignment.created":  "Cihaz atandı",
		"assignment.replaced": "Cihaz değiştirildi",
		"assignment.returned": "Cihaz iade edildi",
	}
	subscribe("xear.assignment.*.*", func(ctx context.Context, id uuid.UUID, event string) error {
		a, err := db.DeviceAssignment.Query().Where(entassign.ID(id)).Only(ctx)
		if err != nil {
			return fmt.Errorf("load assignment: %w", err)
		}
		title, known := assignmentTitles[event]
		if !known {
			return nil
		}
		return writeTimelineEvent(ctx, db, a.PatientID, event, title, map[string]any{
			"assignment_id": a.ID.String(),
			"ear":           string(a.Ear),
			"serial_number": a.SerialNumber,
		})
	})

	loanerTitles := map[string]string{
		"loaner.issued":   "Emanet cihaz verildi",
		"loaner.returned": "Emanet cihaz iade edildi",
	}
	subscribe("xear.loaner.*.*", func(ctx context.Context, id uuid.UUID, event string) error {
		l, err := db.LoanerDevice.Query().Where(entloaner.ID(id)).Only(ctx)
		if err != nil {
			return fmt.Errorf("load loaner: %w", err)
		}
		title, known := loanerTitles[event]
		if !known {
			return nil
		}
		return writeTimelineEvent(ctx, db, l.PatientID, event, title, map[string]any{
			"loaner_id":     l.ID.String(),
			"serial_number": l.SerialNumber,
		})
	})

	subscribe("xear.payment.received.*", func(ctx context.Context, id uuid.UUID, event string) error {
		pr, err := db.PaymentRecord.Query().Where(entpay.ID(id)).Only(ctx)
		if err != nil {
			return fmt.Errorf("load payment: %w", err)
		}
		a, err := db.DeviceAssignment.Query().Where(entassign.ID(pr.AssignmentID)).Only(ctx)
		if err != nil {
			return fmt.Errorf("load assignment: %w", err)
		}
		return writeTimelineEvent(ctx, db, a.PatientID, event, "Ödeme alındı", map[string]any{
			"payment_id": pr.ID.String(),
			"amount":     pr.Amount,
			"method":     string(pr.Method),
		})
	})

	subscribe("xear.promissory.created.*", func(ctx context.Context, id uuid.UUID, event string) error {
		a, err := db.DeviceAssignment.Query().Where(entassign.ID(id)).Only(ctx)
		if err != nil {
			return fmt.Errorf("load assignment: %w", err)
		}
		return writeTimelineEvent(ctx, db, a.PatientID, event, "Senet planı oluşturuldu", map[string]any{
			"assignment_id": a.ID.String(),
		})
	})

	appointmentTitles := map[string]string{
		"appointment.created":   "Randevu oluşturuldu",
		"appointment.cancelled": "Randevu iptal edildi",
		"appointment.completed": "Randevu tamamlandı",
		"appointment.no_show":   "Randevuya gelinmedi",
	}
	subscribe("xear.appointment.*.*", func(ctx context.Context, id uuid.UUID, event string) error {
		appt, err := db.Appointment.Query().Where(entappt.ID(id)).Only(ctx)
		if err != nil {
			return fmt.Errorf("load appointment: %w", err)
		}
		title, known := appointmentTitles[event]
		if !known {
			return nil
		}
		return writeTimelineEvent(ctx, db, appt.PatientID, event, title, map[string]any{
			"appointment_id": appt.ID.String(),
			"scheduled_at":   appt.ScheduledAt,
			"kind":           string(appt.Kind),
		})
	})

	slog.Info("timeline_worker: started")
}

func writeTimelineEvent(ctx context.Context, db *repo.Client, patientID uuid.UUID, event, title string, payload map[string]any) error {
	_, err := db.TimelineEvent.Create().
		SetPatientID(patientID).
		SetEventType(event).
		SetTitle(title).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create timeline event: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// sms_worker
// ---------------------------------------------------------------------------

func startSMSWorker(nc *nats.Conn, db *repo.Client, smsCli *svcsms.Client) {
	// Bulk campaigns: rows are created as queued by the bulk send endpoint,
	// the worker drains one batch per event.
	_, err := nc.Subscribe("xear.sms.bulk.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		batchID := parts[3]
		ctx := context.Background()

		queued, err := db.SmsMessage.Query().
			Where(entsms.BatchID(batchID), entsms.StatusEQ(entsms.StatusQueued)).
			All(ctx)
		if err != nil {
			slog.Warn("sms_worker: load batch failed", "batch_id", batchID, "err", err)
			return
		}

		sent, failed := 0, 0
		for _, m := range queued {
			if err := smsCli.Send(ctx, m.Phone, m.Body); err != nil {
				failed++
				errText := err.Error()
				if len(errText) > 512 {
					errText = errText[:512]
				}
				if _, uerr := db.SmsMessage.UpdateOne(m).
					SetStatus(entsms.StatusFailed).
					SetError(errText).
					Save(ctx); uerr != nil {
					slog.Warn("sms_worker: mark failed", "id", m.ID, "err", uerr)
				}
				continue
			}
			sent++
			if _, uerr := db.SmsMessage.UpdateOne(m).
				SetStatus(entsms.StatusSent).
				SetSentAt(time.Now()).
				Save(ctx); uerr != nil {
				slog.Warn("sms_worker: mark sent", "id", m.ID, "err", uerr)
			}
		}
		slog.Info("sms_worker: batch drained", "batch_id", batchID, "sent", sent, "failed", failed)
	})
	if err != nil {
		slog.Error("sms_worker: subscribe sms.bulk failed", "err", err)
	}

	// Booking confirmations
	_, err = nc.Subscribe("xear.appointment.created.*", func(msg *nats.Msg) {
		apptID, valid := parseEventID(msg)
		if !valid {
			return
		}
		ctx := context.Background()

		appt, err := db.Appointment.Query().Where(entappt.ID(apptID)).Only(ctx)
		if err != nil {
			slog.Warn("sms_worker: appointment not found", "id", apptID, "err", err)
			return
		}
		p, err := db.Patient.Query().Where(entpatient.ID(appt.PatientID)).Only(ctx)
		if err != nil {
			slog.Warn("sms_worker: patient not found", "id", appt.PatientID, "err", err)
			return
		}

		body := fmt.Sprintf("Sayın %s %s, %s tarihli randevunuz oluşturulmuştur.",
			p.FirstName, p.LastName, appt.ScheduledAt.Format("02.01.2006 15:04"))

		create := db.SmsMessage.Create().
			SetPatientID(p.ID).
			SetPhone(p.Phone).
			SetBody(body)

		if err := smsCli.Send(ctx, p.Phone, body); err != nil {
			slog.Warn("sms_worker: confirmation send failed", "appointment_id", apptID, "err", err)
			if _, cerr := create.SetStatus(entsms.StatusFailed).SetError(err.Error()).Save(ctx); cerr != nil {
				slog.Warn("sms_worker: log failed sms", "err", cerr)
			}
			return
		}
		if _, cerr := create.SetStatus(entsms.StatusSent).SetSentAt(time.Now()).Save(ctx); cerr != nil {
			slog.Warn("sms_worker: log sent sms", "err", cerr)
		}
	})
	if err != nil {
		slog.Error("sms_worker: subscribe appointment.created failed", "err", err)
	}

	slog.Info("sms_worker: started")
}

// ---------------------------------------------------------------------------
// maintenance_worker
// ---------------------------------------------------------------------------

// startMaintenanceWorker runs the hourly housekeeping pass: pending
// promissory notes past their due date flip to overdue, and tomorrow's
// appointments get a reminder email.
func startMaintenanceWorker(db *repo.Client, paymentSvc payment.Service, emailClient *email.Client, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ctx := context.Background()
				n, err := paymentSvc.MarkOverdueNotes(ctx, time.Now())
				if err != nil {
					slog.Warn("maintenance_worker: mark overdue notes failed", "err", err)
				} else if n > 0 {
					slog.Info("maintenance_worker: notes marked overdue", "count", n)
				}
				sendAppointmentReminders(ctx, db, emailClient)
			}
		}
	}()
	slog.Info("maintenance_worker: started")
}

// sendAppointmentReminders emails patients whose appointment is within the
// next 24 hours and who have not been reminded yet. Patients without an
// email address are skipped silently.
func sendAppointmentReminders(ctx context.Context, db *repo.Client, emailClient *email.Client) {
	if !emailClient.Enabled() {
		return
	}

	now := time.Now()
	appts, err := db.Appointment.Query().
		Where(
			entappt.StatusEQ(entappt.StatusScheduled),
			entappt.ScheduledAtGT(now),
			entappt.ScheduledAtLTE(now.Add(24*time.Hour)),
			entappt.ReminderSentAtIsNil(),
			entappt.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		slog.Warn("maintenance_worker: list upcoming appointments failed", "err", err)
		return
	}

	for _, a := range appts {
		p, err := db.Patient.Query().
			Where(entpatient.ID(a.PatientID), entpatient.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			slog.Warn("maintenance_worker: load patient for reminder failed",
				"appointment_id", a.ID, "err", err)
			continue
		}
		if p.Email == nil || *p.Email == "" {
			continue
		}

		branchName := ""
		if b, err := db.Branch.Query().Where(entbranch.ID(a.BranchID)).Only(ctx); err == nil {
			branchName = b.Name
		}

		msg := email.BuildAppointmentReminderEmail(email.AppointmentReminderData{
			PatientName: strings.TrimSpace(p.FirstName + " " + p.LastName),
			Email:       *p.Email,
			BranchName:  branchName,
			ScheduledAt: a.ScheduledAt,
			Kind:        string(a.Kind),
		})
		if err := emailClient.Send(ctx, msg); err != nil {
			slog.Warn("maintenance_worker: reminder email failed",
				"appointment_id", a.ID, "err", err)
			continue
		}

		if err := db.Appointment.UpdateOne(a).SetReminderSentAt(now).Exec(ctx); err != nil {
			slog.Warn("maintenance_worker: mark reminder sent failed",
				"appointment_id", a.ID, "err", err)
		}
	}
}
