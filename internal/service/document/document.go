package document

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entdoc "github.com/omrozmn/x-ear-sub003/internal/repo/patientdocument"
	entpatient "github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/pkg/email"
	s3pkg "github.com/omrozmn/x-ear-sub003/pkg/s3"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrInvalidKind      = errors.New("invalid document kind")
	ErrNoPatientEmail   = errors.New("patient has no email address")
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadResult struct {
	Key      string
	FileName string
	Size     int64
	MimeType string
}

type CreateDocumentRequest struct {
	Key         string
	FileName    string
	Size        int64
	MimeType    string
	Kind        string
	Description *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Upload(ctx context.Context, branchID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)
	Create(ctx context.Context, branchID, patientID uuid.UUID, uploadedBy *uuid.UUID, req CreateDocumentRequest) (*repo.PatientDocument, error)
	List(ctx context.Context, branchID, patientID uuid.UUID, kind *string) ([]*repo.PatientDocument, error)
	DownloadURL(ctx context.Context, branchID, patientID, documentID uuid.UUID) (string, error)
	Share(ctx context.Context, branchID, patientID, documentID uuid.UUID) error
	Delete(ctx context.Context, branchID, patientID, documentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type documentService struct {
	db    *repo.Client
	s3    *s3pkg.Client
	email *email.Client
}

func New(db *repo.Client, s3Client *s3pkg.Client, emailClient *email.Client) Service {
	return &documentService{db: db, s3: s3Client, email: emailClient}
}

func (s *documentService) checkPatient(ctx context.Context, branchID, patientID uuid.UUID) error {
	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.BranchID(branchID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return ErrPatientNotFound
	}
	return nil
}

func (s *documentService) Upload(ctx context.Context, branchID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("documents/%s/%s%s", branchID, uuid.New(), ext)

	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:      key,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

func (s *documentService) Create(ctx context.Context, branchID, patientID uuid.UUID, uploadedBy *uuid.UUID, req CreateDocumentRequest) (*repo.PatientDocument, error) {
	if err := s.checkPatient(ctx, branchID, patientID); err != nil {
		return nil, err
	}

	kind := entdoc.Kind(req.Kind)
	switch kind {
	case entdoc.KindAudiogram, entdoc.KindSgkReport, entdoc.KindContract, entdoc.KindOther:
	case "":
		kind = entdoc.KindOther
	default:
		return nil, ErrInvalidKind
	}

	c := s.db.PatientDocument.Create().
		SetPatientID(patientID).
		SetStorageKey(req.Key).
		SetFileName(req.FileName).
		SetSizeBytes(req.Size).
		SetMimeType(req.MimeType).
		SetKind(kind)
	if uploadedBy != nil {
		c = c.SetNillableUploadedBy(uploadedBy)
	}
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	return c.Save(ctx)
}

func (s *documentService) List(ctx context.Context, branchID, patientID uuid.UUID, kind *string) ([]*repo.PatientDocument, error) {
	if err := s.checkPatient(ctx, branchID, patientID); err != nil {
		return nil, err
	}
	q := s.db.PatientDocument.Query().
		Where(entdoc.PatientID(patientID), entdoc.DeletedAtIsNil())
	if kind != nil {
		q = q.Where(entdoc.KindEQ(entdoc.Kind(*kind)))
	}
	return q.Order(entdoc.ByCreatedAt(sql.OrderDesc())).All(ctx)
}

func (s *documentService) get(ctx context.Context, branchID, patientID, documentID uuid.UUID) (*repo.PatientDocument, error) {
	if err := s.checkPatient(ctx, branchID, patientID); err != nil {
		return nil, err
	}
	d, err := s.db.PatientDocument.Query().
		Where(entdoc.ID(documentID), entdoc.PatientID(patientID), entdoc.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (s *documentService) DownloadURL(ctx context.Context, branchID, patientID, documentID uuid.UUID) (string, error) {
	d, err := s.get(ctx, branchID, patientID, documentID)
	if err != nil {
		return "", err
	}
	url, err := s.s3.PresignDownload(ctx, d.StorageKey)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

// Share emails the patient a presigned download link for one of their
// documents. Fails when the patient record carries no email address.
func (s *documentService) Share(ctx context.Context, branchID, patientID, documentID uuid.UUID) error {
	d, err := s.get(ctx, branchID, patientID, documentID)
	if err != nil {
		return err
	}

	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.BranchID(branchID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load patient: %w", err)
	}
	if p.Email == nil || *p.Email == "" {
		return ErrNoPatientEmail
	}

	url, err := s.s3.PresignDownload(ctx, d.StorageKey)
	if err != nil {
		return fmt.Errorf("presign: %w", err)
	}

	hours := int(s.s3.PresignTTL().Hours())
	if hours < 1 {
		hours = 1
	}
	msg := email.BuildDocumentShareEmail(email.DocumentShareData{
		PatientName: strings.TrimSpace(p.FirstName + " " + p.LastName),
		Email:       *p.Email,
		FileName:    d.FileName,
		DownloadURL: url,
		ExpiryHours: hours,
	})
	if err := s.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("send share email: %w", err)
	}
	return nil
}

func (s *documentService) Delete(ctx context.Context, branchID, patientID, documentID uuid.UUID) error {
	d, err := s.get(ctx, branchID, patientID, documentID)
	if err != nil {
		return err
	}

	// Best-effort S3 delete (don't block DB delete if S3 fails)
	_ = s.s3.Delete(ctx, d.StorageKey)

	_, err = s.db.PatientDocument.UpdateOne(d).SetDeletedAt(time.Now()).Save(ctx)
	return err
}
