package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entnote "github.com/omrozmn/x-ear-sub003/internal/repo/patientnote"
	entpatient "github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	enttimeline "github.com/omrozmn/x-ear-sub003/internal/repo/timelineevent"
	"github.com/omrozmn/x-ear-sub003/internal/tabular"
	"github.com/omrozmn/x-ear-sub003/pkg/crypto"
	"github.com/omrozmn/x-ear-sub003/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListPatientsRequest struct {
	Page    int
	PerPage int
	Status  *string
	Tag     *string
	Query   string // matches name, phone or file number
	Sort    string // created_at | last_name
	Order   string // asc | desc
}

type CreatePatientRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Email     *string
	TaxID     *string // raw TC kimlik no; encrypted before storage
	BirthDate *time.Time
	Address   *string
	SGKStatus *string
	Tags      []string
}

type UpdatePatientRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	TaxID     *string
	BirthDate *time.Time
	Address   *string
	Status    *string
	SGKStatus *string
	Tags      []string
}

type CreateNoteRequest struct {
	Content string
	Pinned  bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, branchID uuid.UUID, req CreatePatientRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, branchID, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, branchID uuid.UUID, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, branchID, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error)
	Delete(ctx context.Context, branchID, patientID uuid.UUID) error

	// Notes
	CreateNote(ctx context.Context, branchID, patientID uuid.UUID, authorID *uuid.UUID, req CreateNoteRequest) (*repo.PatientNote, error)
	ListNotes(ctx context.Context, branchID, patientID uuid.UUID) ([]*repo.PatientNote, error)
	DeleteNote(ctx context.Context, branchID, patientID, noteID uuid.UUID) error

	// Timeline
	Timeline(ctx context.Context, branchID, patientID uuid.UUID, limit int) ([]*repo.TimelineEvent, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, encKey []byte) Service {
	return &patientService{db: db, encKey: encKey}
}

func (s *patientService) Create(ctx context.Context, branchID uuid.UUID, req CreatePatientRequest) (*repo.Patient, error) {
	phone, err := tabular.NormalizePhone(req.Phone)
	if err != nil {
		return nil, ErrInvalidPhone
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.BranchID(branchID), entpatient.Phone(phone), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if exists {
		return nil, ErrPatientAlreadyExists
	}

	fileNumber, err := codes.GenerateFileNumber()
	if err != nil {
		return nil, fmt.Errorf("generate file number: %w", err)
	}

	c := s.db.Patient.Create().
		SetBranchID(branchID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetPhone(phone).
		SetFileNumber(fileNumber)

	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}
	if req.TaxID != nil && *req.TaxID != "" {
		enc, err := crypto.Encrypt(s.encKey, *req.TaxID)
		if err != nil {
			return nil, fmt.Errorf("encrypt tax id: %w", err)
		}
		c = c.SetTaxIDEncrypted(enc)
	}
	if req.BirthDate != nil {
		c = c.SetNillableBirthDate(req.BirthDate)
	}
	if req.Address != nil {
		c = c.SetNillableAddress(req.Address)
	}
	if req.SGKStatus != nil {
		c = c.SetSgkStatus(entpatient.SgkStatus(*req.SGKStatus))
	}
	if len(req.Tags) > 0 {
		c = c.SetTags(lo.Uniq(req.Tags))
	}

	return c.Save(ctx)
}

func (s *patientService) GetByID(ctx context.Context, branchID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.BranchID(branchID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, branchID uuid.UUID, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.BranchID(branchID), entpatient.DeletedAtIsNil())

	if req.Status != nil {
		q = q.Where(entpatient.StatusEQ(entpatient.Status(*req.Status)))
	}
	if req.Query != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(req.Query),
			entpatient.LastNameContainsFold(req.Query),
			entpatient.PhoneContains(req.Query),
			entpatient.FileNumberContainsFold(req.Query),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	orderOpt := sql.OrderDesc()
	if req.Order == "asc" {
		orderOpt = sql.OrderAsc()
	}
	switch req.Sort {
	case "last_name":
		q = q.Order(entpatient.ByLastName(orderOpt))
	default:
		q = q.Order(entpatient.ByCreatedAt(orderOpt))
	}

	rows, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	// Tag filtering happens after the fetch; tags live in a JSON column.
	if req.Tag != nil {
		rows = lo.Filter(rows, func(p *repo.Patient, _ int) bool {
			return lo.Contains(p.Tags, *req.Tag)
		})
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       rows,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, branchID, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, branchID, patientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(p)

	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		phone, err := tabular.NormalizePhone(*req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		upd = upd.SetPhone(phone)
	}
	if req.Email != nil {
		upd = upd.SetNillableEmail(req.Email)
	}
	if req.TaxID != nil && *req.TaxID != "" {
		enc, err := crypto.Encrypt(s.encKey, *req.TaxID)
		if err != nil {
			return nil, fmt.Errorf("encrypt tax id: %w", err)
		}
		upd = upd.SetTaxIDEncrypted(enc)
	}
	if req.BirthDate != nil {
		upd = upd.SetNillableBirthDate(req.BirthDate)
	}
	if req.Address != nil {
		upd = upd.SetNillableAddress(req.Address)
	}
	if req.Status != nil {
		upd = upd.SetStatus(entpatient.Status(*req.Status))
	}
	if req.SGKStatus != nil {
		upd = upd.SetSgkStatus(entpatient.SgkStatus(*req.SGKStatus))
	}
	if req.Tags != nil {
		upd = upd.SetTags(lo.Uniq(req.Tags))
	}

	return upd.Save(ctx)
}

func (s *patientService) Delete(ctx context.Context, branchID, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, branchID, patientID)
	if err != nil {
		return err
	}
	_, err = s.db.Patient.UpdateOne(p).SetDeletedAt(time.Now()).Save(ctx)
	return err
}

// ---------------------------------------------------------------------------
// Notes
// ---------------------------------------------------------------------------

func (s *patientService) CreateNote(ctx context.Context, branchID, patientID uuid.UUID, authorID *uuid.UUID, req CreateNoteRequest) (*repo.PatientNote, error) {
	if _, err := s.GetByID(ctx, branchID, patientID); err != nil {
		return nil, err
	}

	c := s.db.PatientNote.Create().
		SetPatientID(patientID).
		SetContent(req.Content).
		SetPinned(req.Pinned)
	if authorID != nil {
		c = c.SetNillableAuthorID(authorID)
	}
	return c.Save(ctx)
}

func (s *patientService) ListNotes(ctx context.Context, branchID, patientID uuid.UUID) ([]*repo.PatientNote, error) {
	if _, err := s.GetByID(ctx, branchID, patientID); err != nil {
		return nil, err
	}
	return s.db.PatientNote.Query().
		Where(entnote.PatientID(patientID), entnote.DeletedAtIsNil()).
		Order(entnote.ByPinned(sql.OrderDesc()), entnote.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *patientService) DeleteNote(ctx context.Context, branchID, patientID, noteID uuid.UUID) error {
	if _, err := s.GetByID(ctx, branchID, patientID); err != nil {
		return err
	}
	n, err := s.db.PatientNote.Query().
		Where(entnote.ID(noteID), entnote.PatientID(patientID), entnote.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("get note: %w", err)
	}
	_, err = s.db.PatientNote.UpdateOne(n).SetDeletedAt(time.Now()).Save(ctx)
	return err
}

// ---------------------------------------------------------------------------
// Timeline
// ---------------------------------------------------------------------------

func (s *patientService) Timeline(ctx context.Context, branchID, patientID uuid.UUID, limit int) ([]*repo.TimelineEvent, error) {
	if _, err := s.GetByID(ctx, branchID, patientID); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return s.db.TimelineEvent.Query().
		Where(enttimeline.PatientID(patientID)).
		Order(enttimeline.ByCreatedAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
}
