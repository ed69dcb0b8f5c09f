package assignment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/omrozmn/x-ear-sub003/internal/pricing"
	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entassign "github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	entloaner "github.com/omrozmn/x-ear-sub003/internal/repo/loanerdevice"
	entpatient "github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/service/inventory"
	"github.com/omrozmn/x-ear-sub003/internal/service/settings"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// PricingRequest carries the client-controlled pricing inputs. Derived
// amounts are always recomputed server-side.
type PricingRequest struct {
	SGKSchemeKey     string
	DiscountType     string
	DiscountValue    float64
	DownPayment      float64
	PaymentMethod    string
	InstallmentCount int
}

type CreateAssignmentRequest struct {
	InventoryItemID uuid.UUID
	SerialNumber    *string
	Ear             string
	Notes           *string
	Pricing         PricingRequest
}

type UpdatePricingRequest struct {
	SGKSchemeKey     *string
	DiscountType     *string
	DiscountValue    *float64
	DownPayment      *float64
	PaymentMethod    *string
	InstallmentCount *int
}

type ReplaceRequest struct {
	InventoryItemID uuid.UUID
	SerialNumber    *string
	Notes           *string
	Pricing         PricingRequest
}

type IssueLoanerRequest struct {
	InventoryItemID uuid.UUID
	SerialNumber    *string
	Ear             string
	Notes           *string
}

// Quote is a dry-run pricing preview for the given inputs.
type Quote struct {
	pricing.Result
	MonthlyInstallment float64 `json:"monthly_installment"`
	SchemeFallback     bool    `json:"scheme_fallback"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Preview(ctx context.Context, listPrice float64, ear string, req PricingRequest) (*Quote, error)
	Create(ctx context.Context, branchID, patientID uuid.UUID, req CreateAssignmentRequest) (*repo.DeviceAssignment, error)
	GetByID(ctx context.Context, branchID, assignmentID uuid.UUID) (*repo.DeviceAssignment, error)
	ListByPatient(ctx context.Context, branchID, patientID uuid.UUID) ([]*repo.DeviceAssignment, error)
	UpdatePricing(ctx context.Context, branchID, assignmentID uuid.UUID, req UpdatePricingRequest) (*repo.DeviceAssignment, error)
	Replace(ctx context.Context, branchID, assignmentID uuid.UUID, req ReplaceRequest) (*repo.DeviceAssignment, error)
	Return(ctx context.Context, branchID, assignmentID uuid.UUID) (*repo.DeviceAssignment, error)

	// Loaners
	IssueLoaner(ctx context.Context, branchID, patientID uuid.UUID, req IssueLoanerRequest) (*repo.LoanerDevice, error)
	ReturnLoaner(ctx context.Context, branchID, loanerID uuid.UUID) (*repo.LoanerDevice, error)
	ListLoaners(ctx context.Context, branchID, patientID uuid.UUID) ([]*repo.LoanerDevice, error)
}

type assignmentService struct {
	db     *repo.Client
	invSvc inventory.Service
	setSvc settings.Service
	nc     *nats.Conn
}

func New(db *repo.Client, invSvc inventory.Service, setSvc settings.Service, nc *nats.Conn) Service {
	return &assignmentService{db: db, invSvc: invSvc, setSvc: setSvc, nc: nc}
}

// schemeTable loads the configured subsidy table, falling back to the
// built-in legacy values when no table is configured.
func (s *assignmentService) schemeTable(ctx context.Context) (pricing.SchemeTable, bool, error) {
	res, err := s.setSvc.SGKSchemes(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load sgk schemes: %w", err)
	}
	return res.Table, res.Fallback, nil
}

func validatePricing(req PricingRequest) error {
	if !pricing.DiscountType(req.DiscountType).Valid() {
		return ErrInvalidDiscount
	}
	method := pricing.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	if method == pricing.PaymentInstallment && !pricing.IsAllowedInstallmentCount(req.InstallmentCount) {
		return ErrInvalidInstallment
	}
	return nil
}

func (s *assignmentService) Preview(ctx context.Context, listPrice float64, ear string, req PricingRequest) (*Quote, error) {
	if !pricing.Ear(ear).Valid() {
		return nil, ErrInvalidEar
	}
	if err := validatePricing(req); err != nil {
		return nil, err
	}
	table, fallback, err := s.schemeTable(ctx)
	if err != nil {
		return nil, err
	}

	result := pricing.Compute(table, pricing.Input{
		ListPrice:     listPrice,
		SGKSchemeKey:  req.SGKSchemeKey,
		DiscountType:  pricing.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		Ear:           pricing.Ear(ear),
		DownPayment:   req.DownPayment,
	})

	monthly := 0.0
	if pricing.PaymentMethod(req.PaymentMethod) == pricing.PaymentInstallment {
		monthly = pricing.MonthlyInstallment(result.RemainingAmount, req.InstallmentCount)
	}

	return &Quote{Result: result, MonthlyInstallment: monthly, SchemeFallback: fallback}, nil
}

func (s *assignmentService) Create(ctx context.Context, branchID, patientID uuid.UUID, req CreateAssignmentRequest) (*repo.DeviceAssignment, error) {
	if !pricing.Ear(req.Ear).Valid() {
		return nil, ErrInvalidEar
	}
	if err := validatePricing(req.Pricing); err != nil {
		return nil, err
	}

	// Patient must belong to the branch.
	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.BranchID(branchID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrAssignmentNotFound
	}

	item, err := s.invSvc.GetByID(ctx, branchID, req.InventoryItemID)
	if err != nil {
		return nil, err
	}

	table, _, err := s.schemeTable(ctx)
	if err != nil {
		return nil, err
	}
	result := pricing.Compute(table, pricing.Input{
		ListPrice:     item.Price,
		SGKSchemeKey:  req.Pricing.SGKSchemeKey,
		DiscountType:  pricing.DiscountType(req.Pricing.DiscountType),
		DiscountValue: req.Pricing.DiscountValue,
		Ear:           pricing.Ear(req.Ear),
		DownPayment:   req.Pricing.DownPayment,
	})

	if err := s.invSvc.ReserveUnit(ctx, branchID, item.ID, req.SerialNumber); err != nil {
		return nil, err
	}
	if pricing.Ear(req.Ear) == pricing.EarBoth {
		if err := s.invSvc.ReserveUnit(ctx, branchID, item.ID, nil); err != nil {
			_ = s.invSvc.RestoreUnit(ctx, branchID, item.ID, req.SerialNumber)
			return nil, err
		}
	}

	monthly := 0.0
	if pricing.PaymentMethod(req.Pricing.PaymentMethod) == pricing.PaymentInstallment {
		monthly = pricing.MonthlyInstallment(result.RemainingAmount, req.Pricing.InstallmentCount)
	}

	c := s.db.DeviceAssignment.Create().
		SetPatientID(patientID).
		SetInventoryItemID(item.ID).
		SetEar(entassign.Ear(req.Ear)).
		SetListPrice(item.Price).
		SetSgkSchemeKey(req.Pricing.SGKSchemeKey).
		SetSgkReduction(result.SGKReduction).
		SetDiscountType(entassign.DiscountType(req.Pricing.DiscountType)).
		SetDiscountValue(req.Pricing.DiscountValue).
		SetSalePrice(result.SalePrice).
		SetPatientPayment(result.PatientPayment).
		SetDownPayment(req.Pricing.DownPayment).
		SetRemainingAmount(result.RemainingAmount).
		SetPaymentMethod(entassign.PaymentMethod(req.Pricing.PaymentMethod)).
		SetInstallmentCount(req.Pricing.InstallmentCount).
		SetMonthlyInstallment(monthly)
	if req.SerialNumber != nil {
		c = c.SetNillableSerialNumber(req.SerialNumber)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	a, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.assignment.created.%s", a.ID.String())
		_ = s.nc.Publish(subject, []byte(a.ID.String()))
	}

	return a, nil
}

func (s *assignmentService) GetByID(ctx context.Context, branchID, assignmentID uuid.UUID) (*repo.DeviceAssignment, error) {
	a, err := s.db.DeviceAssignment.Query().
		Where(
			entassign.ID(assignmentID),
			entassign.DeletedAtIsNil(),
			entassign.HasPatientWith(entpatient.BranchID(branchID)),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

func (s *assignmentService) ListByPatient(ctx context.Context, branchID, patientID uuid.UUID) ([]*repo.DeviceAssignment, error) {
	return s.db.DeviceAssignment.Query().
		Where(
			entassign.PatientID(patientID),
			entassign.DeletedAtIsNil(),
			entassign.HasPatientWith(entpatient.BranchID(branchID)),
		).
		Order(entassign.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *assignmentService) UpdatePricing(ctx context.Context, branchID, assignmentID uuid.UUID, req UpdatePricingRequest) (*repo.DeviceAssignment, error) {
	a, err := s.GetByID(ctx, branchID, assignmentID)
	if err != nil {
		return nil, err
	}
	if a.Status != entassign.StatusActive {
		return nil, ErrAssignmentNotActive
	}

	merged := PricingRequest{
		SGKSchemeKey:     a.SgkSchemeKey,
		DiscountType:     string(a.DiscountType),
		DiscountValue:    a.DiscountValue,
		DownPayment:      a.DownPayment,
		PaymentMethod:    string(a.PaymentMethod),
		InstallmentCount: a.InstallmentCount,
	}
	if req.SGKSchemeKey != nil {
		merged.SGKSchemeKey = *req.SGKSchemeKey
	}
	if req.DiscountType != nil {
		merged.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		merged.DiscountValue = *req.DiscountValue
	}
	if req.DownPayment != nil {
		merged.DownPayment = *req.DownPayment
	}
	if req.PaymentMethod != nil {
		merged.PaymentMethod = *req.PaymentMethod
	}
	if req.InstallmentCount != nil {
		merged.InstallmentCount = *req.InstallmentCount
	}
	if err := validatePricing(merged); err != nil {
		return nil, err
	}

	table, _, err := s.schemeTable(ctx)
	if err != nil {
		return nil, err
	}
	result := pricing.Compute(table, pricing.Input{
		ListPrice:     a.ListPrice,
		SGKSchemeKey:  merged.SGKSchemeKey,
		DiscountType:  pricing.DiscountType(merged.DiscountType),
		DiscountValue: merged.DiscountValue,
		Ear:           pricing.Ear(a.Ear),
		DownPayment:   merged.DownPayment,
	})

	monthly := 0.0
	if pricing.PaymentMethod(merged.PaymentMethod) == pricing.PaymentInstallment {
		monthly = pricing.MonthlyInstallment(result.RemainingAmount, merged.InstallmentCount)
	}

	return s.db.DeviceAssignment.UpdateOne(a).
		SetSgkSchemeKey(merged.SGKSchemeKey).
		SetSgkReduction(result.SGKReduction).
		SetDiscountType(entassign.DiscountType(merged.DiscountType)).
		SetDiscountValue(merged.DiscountValue).
		SetSalePrice(result.SalePrice).
		SetPatientPayment(result.PatientPayment).
		SetDownPayment(merged.DownPayment).
		SetRemainingAmount(result.RemainingAmount).
		SetPaymentMethod(entassign.PaymentMethod(merged.PaymentMethod)).
		SetInstallmentCount(merged.InstallmentCount).
		SetMonthlyInstallment(monthly).
		Save(ctx)
}

func (s *assignmentService) Replace(ctx context.Context, branchID, assignmentID uuid.UUID, req ReplaceRequest) (*repo.DeviceAssignment, error) {
	old, err := s.GetByID(ctx, branchID, assignmentID)
	if err != nil {
		return nil, err
	}
	if old.Status != entassign.StatusActive {
		return nil, ErrAssignmentNotActive
	}

	replacement, err := s.Create(ctx, branchID, old.PatientID, CreateAssignmentRequest{
		InventoryItemID: req.InventoryItemID,
		SerialNumber:    req.SerialNumber,
		Ear:             string(old.Ear),
		Notes:           req.Notes,
		Pricing:         req.Pricing,
	})
	if err != nil {
		return nil, err
	}

	// Returned device goes back to stock.
	if err := s.invSvc.RestoreUnit(ctx, branchID, old.InventoryItemID, old.SerialNumber); err != nil {
		return nil, err
	}
	if pricing.Ear(string(old.Ear)) == pricing.EarBoth {
		_ = s.invSvc.RestoreUnit(ctx, branchID, old.InventoryItemID, nil)
	}

	_, err = s.db.DeviceAssignment.UpdateOne(old).
		SetStatus(entassign.StatusReplaced).
		SetReplacedByID(replacement.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark replaced: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.assignment.replaced.%s", old.ID.String())
		_ = s.nc.Publish(subject, []byte(replacement.ID.String()))
	}

	return replacement, nil
}

func (s *assignmentService) Return(ctx context.Context, branchID, assignmentID uuid.UUID) (*repo.DeviceAssignment, error) {
	a, err := s.GetByID(ctx, branchID, assignmentID)
	if err != nil {
		return nil, err
	}
	if a.Status != entassign.StatusActive {
		return nil, ErrAssignmentNotActive
	}

	if err := s.invSvc.RestoreUnit(ctx, branchID, a.InventoryItemID, a.SerialNumber); err != nil {
		return nil, err
	}
	if pricing.Ear(string(a.Ear)) == pricing.EarBoth {
		_ = s.invSvc.RestoreUnit(ctx, branchID, a.InventoryItemID, nil)
	}

	updated, err := s.db.DeviceAssignment.UpdateOne(a).
		SetStatus(entassign.StatusReturned).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.assignment.returned.%s", a.ID.String())
		_ = s.nc.Publish(subject, []byte(a.ID.String()))
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Loaners
// ---------------------------------------------------------------------------

func (s *assignmentService) IssueLoaner(ctx context.Context, branchID, patientID uuid.UUID, req IssueLoanerRequest) (*repo.LoanerDevice, error) {
	if !pricing.Ear(req.Ear).Valid() {
		return nil, ErrInvalidEar
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.BranchID(branchID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrLoanerNotFound
	}

	if err := s.invSvc.ReserveUnit(ctx, branchID, req.InventoryItemID, req.SerialNumber); err != nil {
		return nil, err
	}

	c := s.db.LoanerDevice.Create().
		SetPatientID(patientID).
		SetInventoryItemID(req.InventoryItemID).
		SetEar(entloaner.Ear(req.Ear)).
		SetIssuedAt(time.Now())
	if req.SerialNumber != nil {
		c = c.SetNillableSerialNumber(req.SerialNumber)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	l, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("issue loaner: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.loaner.issued.%s", l.ID.String())
		_ = s.nc.Publish(subject, []byte(l.ID.String()))
	}
	return l, nil
}

func (s *assignmentService) ReturnLoaner(ctx context.Context, branchID, loanerID uuid.UUID) (*repo.LoanerDevice, error) {
	l, err := s.db.LoanerDevice.Query().
		Where(
			entloaner.ID(loanerID),
			entloaner.HasPatientWith(entpatient.BranchID(branchID)),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLoanerNotFound
		}
		return nil, fmt.Errorf("get loaner: %w", err)
	}
	if l.Status == entloaner.StatusReturned {
		return nil, ErrLoanerAlreadyReturned
	}

	if err := s.invSvc.RestoreUnit(ctx, branchID, l.InventoryItemID, l.SerialNumber); err != nil {
		return nil, err
	}

	updated, err := s.db.LoanerDevice.UpdateOne(l).
		SetStatus(entloaner.StatusReturned).
		SetReturnedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.loaner.returned.%s", l.ID.String())
		_ = s.nc.Publish(subject, []byte(l.ID.String()))
	}
	return updated, nil
}

func (s *assignmentService) ListLoaners(ctx context.Context, branchID, patientID uuid.UUID) ([]*repo.LoanerDevice, error) {
	return s.db.LoanerDevice.Query().
		Where(
			entloaner.PatientID(patientID),
			entloaner.HasPatientWith(entpatient.BranchID(branchID)),
		).
		Order(entloaner.ByIssuedAt(sql.OrderDesc())).
		All(ctx)
}
