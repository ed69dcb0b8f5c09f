package party

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entpatient "github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	entsms "github.com/omrozmn/x-ear-sub003/internal/repo/smsmessage"
	"github.com/omrozmn/x-ear-sub003/internal/tabular"
	"github.com/omrozmn/x-ear-sub003/pkg/crypto"
	"github.com/omrozmn/x-ear-sub003/pkg/util/codes"
)

const (
	importKeyPrefix = "import:"
	importTTL       = time.Hour
)

// PatientImportFields is the column schema for patient bulk imports.
// Labels are what clinic staff see in exported templates.
var PatientImportFields = []tabular.Field{
	{Key: "name", Label: "Ad Soyad", Required: true, Kind: tabular.KindText},
	{Key: "phone", Label: "Telefon", Required: true, Kind: tabular.KindPhone},
	{Key: "email", Label: "E-posta", Kind: tabular.KindEmail},
	{Key: "tax_id", Label: "TC Kimlik No", Kind: tabular.KindText},
	{Key: "birth_date", Label: "Doğum Tarihi", Kind: tabular.KindDate},
	{Key: "address", Label: "Adres", Kind: tabular.KindText},
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ImportView struct {
	ID      string             `json:"id"`
	Stage   tabular.Stage      `json:"stage"`
	Headers []string           `json:"headers,omitempty"`
	Mapping tabular.Mapping    `json:"mapping,omitempty"`
	Fields  []tabular.Field    `json:"fields"`
	Valid   []tabular.Record   `json:"valid,omitempty"`
	Errors  []tabular.RowError `json:"errors,omitempty"`
}

type CommitResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type BulkSMSRequest struct {
	Body       string
	Tag        *string
	Status     *string
	PatientIDs []uuid.UUID
}

type BulkTagRequest struct {
	Tag        string
	Remove     bool
	PatientIDs []uuid.UUID
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Import flow
	StartImport(ctx context.Context, branchID uuid.UUID, fh *multipart.FileHeader) (*ImportView, error)
	GetImport(ctx context.Context, branchID uuid.UUID, importID string) (*ImportView, error)
	OverrideMapping(ctx context.Context, branchID uuid.UUID, importID, fieldKey string, columnIdx int) (*ImportView, error)
	Advance(ctx context.Context, branchID uuid.UUID, importID string) (*ImportView, error)
	Back(ctx context.Context, branchID uuid.UUID, importID string) (*ImportView, error)
	Commit(ctx context.Context, branchID uuid.UUID, importID string) (*CommitResult, error)

	// Bulk operations
	ExportCSV(ctx context.Context, branchID uuid.UUID, w io.Writer) error
	BulkTag(ctx context.Context, branchID uuid.UUID, req BulkTagRequest) (int, error)
	BulkSMS(ctx context.Context, branchID uuid.UUID, req BulkSMSRequest) (string, int, error)
}

type partyService struct {
	db     *repo.Client
	rdb    *redis.Client
	nc     *nats.Conn
	encKey []byte
	logger *slog.Logger
}

func New(db *repo.Client, rdb *redis.Client, nc *nats.Conn, encKey []byte, logger *slog.Logger) Service {
	return &partyService{db: db, rdb: rdb, nc: nc, encKey: encKey, logger: logger}
}

// ---------------------------------------------------------------------------
// Import flow
// ---------------------------------------------------------------------------

func importKey(branchID uuid.UUID, importID string) string {
	return importKeyPrefix + branchID.String() + ":" + importID
}

func (s *partyService) saveSession(ctx context.Context, branchID uuid.UUID, importID string, sess *tabular.Session) error {
	raw, err := json.Marshal(sess.State())
	if err != nil {
		return fmt.Errorf("marshal import session: %w", err)
	}
	return s.rdb.Set(ctx, importKey(branchID, importID), raw, importTTL).Err()
}

func (s *partyService) loadSession(ctx context.Context, branchID uuid.UUID, importID string) (*tabular.Session, error) {
	raw, err := s.rdb.Get(ctx, importKey(branchID, importID)).Bytes()
	if err == redis.Nil {
		return nil, ErrImportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load import session: %w", err)
	}
	var st tabular.SessionState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("unmarshal import session: %w", err)
	}
	return tabular.RestoreSession(st), nil
}

func view(importID string, sess *tabular.Session) *ImportView {
	v := &ImportView{
		ID:      importID,
		Stage:   sess.Stage(),
		Mapping: sess.Mapping(),
		Fields:  PatientImportFields,
		Valid:   sess.Valid(),
		Errors:  sess.Errors(),
	}
	if t := sess.Table(); t != nil {
		v.Headers = t.Headers
	}
	return v
}

func (s *partyService) StartImport(ctx context.Context, branchID uuid.UUID, fh *multipart.FileHeader) (*ImportView, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	var table *tabular.Table
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".csv":
		table, err = tabular.ParseCSV(src)
	case ".xlsx":
		table, err = tabular.ParseXLSX(src)
	default:
		return nil, ErrUnsupportedFile
	}
	if err != nil {
		return nil, err
	}

	sess := tabular.NewSession(PatientImportFields)
	sess.SetFile(table)

	importID := uuid.New().String()
	if err := s.saveSession(ctx, branchID, importID, sess); err != nil {
		return nil, err
	}

	s.logger.Info("import started",
		slog.String("import_id", importID),
		slog.String("branch_id", branchID.String()),
		slog.Int("rows", len(table.Rows)),
	)
	return view(importID, sess), nil
}

func (s *partyService) GetImport(ctx context.Context, branchID uuid.UUID, importID string) (*ImportView, error) {
	sess, err := s.loadSession(ctx, branchID, importID)
	if err != nil {
		return nil, err
	}
	return view(importID, sess), nil
}

func (s *partyService) OverrideMapping(ctx context.Context, branchID uuid.UUID, importID, fieldKey string, columnIdx int) (*ImportView, error) {
	sess, err := s.loadSession(ctx, branchID, importID)
	if err != nil {
		return nil, err
	}
	if err := sess.OverrideMapping(fieldKey, columnIdx); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, branchID, importID, sess); err != nil {
		return nil, err
	}
	return view(importID, sess), nil
}

func (s *partyService) Advance(ctx context.Context, branchID uuid.UUID, importID string) (*ImportView, error) {
	sess, err := s.loadSession(ctx, branchID, importID)
	if err != nil {
		return nil, err
	}
	if err := sess.Next(); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, branchID, importID, sess); err != nil {
		return nil, err
	}
	return view(importID, sess), nil
}

func (s *partyService) Back(ctx context.Context, branchID uuid.UUID, importID string) (*ImportView, error) {
	sess, err := s.loadSession(ctx, branchID, importID)
	if err != nil {
		return nil, err
	}
	if err := sess.Back(); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, branchID, importID, sess); err != nil {
		return nil, err
	}
	return view(importID, sess), nil
}

// Commit upserts all valid rows keyed by normalized phone. Existing patients
// get their blank fields filled in; nothing already set is overwritten.
func (s *partyService) Commit(ctx context.Context, branchID uuid.UUID, importID string) (*CommitResult, error) {
	sess, err := s.loadSession(ctx, branchID, importID)
	if err != nil {
		return nil, err
	}
	if sess.Stage() != tabular.StageUpload {
		return nil, tabular.ErrInvalidTransition
	}

	res := &CommitResult{}
	for _, rec := range sess.Valid() {
		created, err := s.upsertPatient(ctx, branchID, rec)
		if err != nil {
			s.logger.Warn("import row failed",
				slog.String("import_id", importID),
				slog.String("phone", rec["phone"]),
				slog.Any("error", err),
			)
			res.Skipped++
			continue
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	_ = s.rdb.Del(ctx, importKey(branchID, importID)).Err()

	s.logger.Info("import committed",
		slog.String("import_id", importID),
		slog.Int("created", res.Created),
		slog.Int("updated", res.Updated),
		slog.Int("skipped", res.Skipped),
	)
	return res, nil
}

// restoreRecord strips the formula-injection prefix the parser added so
// values are persisted in their original form.
func restoreRecord(rec tabular.Record) tabular.Record {
	out := make(tabular.Record, len(rec))
	for k, v := range rec {
		out[k] = tabular.UnsanitizeCell(v)
	}
	return out
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

func (s *partyService) upsertPatient(ctx context.Context, branchID uuid.UUID, rec tabular.Record) (created bool, err error) {
	rec = restoreRecord(rec)

	// Match on the same E.164 form the patient service stores, otherwise
	// re-importing an exported file would duplicate every patient.
	phone, err := tabular.NormalizePhone(rec["phone"])
	if err != nil {
		return false, fmt.Errorf("normalize phone %q: %w", rec["phone"], err)
	}

	existing, err := s.db.Patient.Query().
		Where(entpatient.BranchID(branchID), entpatient.Phone(phone), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return false, err
	}

	first, last := splitName(rec["name"])

	if existing == nil {
		fileNumber, err := codes.GenerateFileNumber()
		if err != nil {
			return false, err
		}
		c := s.db.Patient.Create().
			SetBranchID(branchID).
			SetFirstName(first).
			SetLastName(last).
			SetPhone(phone).
			SetFileNumber(fileNumber)
		if v := rec["email"]; v != "" {
			c = c.SetEmail(v)
		}
		if v := rec["tax_id"]; v != "" {
			enc, err := crypto.Encrypt(s.encKey, v)
			if err != nil {
				return false, err
			}
			c = c.SetTaxIDEncrypted(enc)
		}
		if v := rec["birth_date"]; v != "" {
			if d, ok := tabular.ParseDate(v); ok {
				c = c.SetBirthDate(d)
			}
		}
		if v := rec["address"]; v != "" {
			c = c.SetAddress(v)
		}
		_, err = c.Save(ctx)
		return true, err
	}

	upd := s.db.Patient.UpdateOne(existing)
	if existing.Email == nil {
		if v := rec["email"]; v != "" {
			upd = upd.SetEmail(v)
		}
	}
	if existing.TaxIDEncrypted == nil {
		if v := rec["tax_id"]; v != "" {
			enc, err := crypto.Encrypt(s.encKey, v)
			if err != nil {
				return false, err
			}
			upd = upd.SetTaxIDEncrypted(enc)
		}
	}
	if existing.BirthDate == nil {
		if v := rec["birth_date"]; v != "" {
			if d, ok := tabular.ParseDate(v); ok {
				upd = upd.SetBirthDate(d)
			}
		}
	}
	if existing.Address == nil {
		if v := rec["address"]; v != "" {
			upd = upd.SetAddress(v)
		}
	}
	_, err = upd.Save(ctx)
	return false, err
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

var exportHeaders = []string{"Ad Soyad", "Telefon", "E-posta", "TC Kimlik No", "Doğum Tarihi", "Adres", "Durum"}

func (s *partyService) ExportCSV(ctx context.Context, branchID uuid.UUID, w io.Writer) error {
	patients, err := s.db.Patient.Query().
		Where(entpatient.BranchID(branchID), entpatient.DeletedAtIsNil()).
		Order(entpatient.ByLastName(), entpatient.ByFirstName()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list patients: %w", err)
	}

	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		taxID := ""
		if p.TaxIDEncrypted != nil {
			if dec, err := crypto.Decrypt(s.encKey, *p.TaxIDEncrypted); err == nil {
				taxID = dec
			}
		}
		email := ""
		if p.Email != nil {
			email = *p.Email
		}
		birth := ""
		if p.BirthDate != nil {
			birth = p.BirthDate.Format("2006-01-02")
		}
		address := ""
		if p.Address != nil {
			address = *p.Address
		}
		rows = append(rows, []string{
			strings.TrimSpace(p.FirstName + " " + p.LastName),
			p.Phone,
			email,
			taxID,
			birth,
			address,
			string(p.Status),
		})
	}

	return tabular.ExportCSV(w, exportHeaders, rows)
}

// ---------------------------------------------------------------------------
// Bulk operations
// ---------------------------------------------------------------------------

func (s *partyService) targets(ctx context.Context, branchID uuid.UUID, tag, status *string, ids []uuid.UUID) ([]*repo.Patient, error) {
	q := s.db.Patient.Query().
		Where(entpatient.BranchID(branchID), entpatient.DeletedAtIsNil())
	if len(ids) > 0 {
		q = q.Where(entpatient.IDIn(ids...))
	}
	if status != nil {
		q = q.Where(entpatient.StatusEQ(entpatient.Status(*status)))
	}
	patients, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		patients = lo.Filter(patients, func(p *repo.Patient, _ int) bool {
			return lo.Contains(p.Tags, *tag)
		})
	}
	return patients, nil
}

func (s *partyService) BulkTag(ctx context.Context, branchID uuid.UUID, req BulkTagRequest) (int, error) {
	patients, err := s.targets(ctx, branchID, nil, nil, req.PatientIDs)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, p := range patients {
		var tags []string
		if req.Remove {
			if !lo.Contains(p.Tags, req.Tag) {
				continue
			}
			tags = lo.Without(p.Tags, req.Tag)
		} else {
			if lo.Contains(p.Tags, req.Tag) {
				continue
			}
			tags = append(p.Tags, req.Tag)
		}
		if err := s.db.Patient.UpdateOne(p).SetTags(tags).Exec(ctx); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// BulkSMS queues one message per matched patient and hands the batch to the
// SMS worker over NATS.
func (s *partyService) BulkSMS(ctx context.Context, branchID uuid.UUID, req BulkSMSRequest) (string, int, error) {
	if strings.TrimSpace(req.Body) == "" {
		return "", 0, ErrEmptyMessage
	}

	patients, err := s.targets(ctx, branchID, req.Tag, req.Status, req.PatientIDs)
	if err != nil {
		return "", 0, err
	}
	if len(patients) == 0 {
		return "", 0, ErrNothingToSend
	}

	batchID, err := codes.GenerateBatchID()
	if err != nil {
		return "", 0, fmt.Errorf("generate batch id: %w", err)
	}

	builders := make([]*repo.SmsMessageCreate, 0, len(patients))
	for _, p := range patients {
		builders = append(builders, s.db.SmsMessage.Create().
			SetPatientID(p.ID).
			SetPhone(p.Phone).
			SetBody(req.Body).
			SetBatchID(batchID).
			SetStatus(entsms.StatusQueued))
	}
	if _, err := s.db.SmsMessage.CreateBulk(builders...).Save(ctx); err != nil {
		return "", 0, fmt.Errorf("queue messages: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.sms.bulk.%s", batchID)
		_ = s.nc.Publish(subject, []byte(batchID))
	}

	s.logger.Info("bulk sms queued",
		slog.String("batch_id", batchID),
		slog.Int("recipients", len(patients)),
	)
	return batchID, len(patients), nil
}
