package inventory

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entitem "github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SearchRequest struct {
	Query    string
	Category *string
	Page     int
	PerPage  int
	// Seq is an opaque client sequence number echoed back unchanged so
	// out-of-order responses can be discarded.
	Seq int64
}

type SearchResult struct {
	Data       []*repo.InventoryItem
	Total      int
	Page       int
	PerPage    int
	TotalPages int
	Seq        int64
}

type CreateItemRequest struct {
	Brand             string
	Model             string
	Category          string
	Ear               *string
	Price             float64
	Barcode           *string
	AvailableQuantity int
	AvailableSerials  []string
}

type UpdateItemRequest struct {
	Brand             *string
	Model             *string
	Category          *string
	Ear               *string
	Price             *float64
	Barcode           *string
	AvailableQuantity *int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, branchID uuid.UUID, req CreateItemRequest) (*repo.InventoryItem, error)
	GetByID(ctx context.Context, branchID, itemID uuid.UUID) (*repo.InventoryItem, error)
	Search(ctx context.Context, branchID uuid.UUID, req SearchRequest) (*SearchResult, error)
	Update(ctx context.Context, branchID, itemID uuid.UUID, req UpdateItemRequest) (*repo.InventoryItem, error)
	Delete(ctx context.Context, branchID, itemID uuid.UUID) error

	// Stock movements used by the assignment service.
	ReserveUnit(ctx context.Context, branchID, itemID uuid.UUID, serial *string) error
	RestoreUnit(ctx context.Context, branchID, itemID uuid.UUID, serial *string) error
	AddSerials(ctx context.Context, branchID, itemID uuid.UUID, serials []string) (*repo.InventoryItem, error)
}

type inventoryService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &inventoryService{db: db}
}

func (s *inventoryService) Create(ctx context.Context, branchID uuid.UUID, req CreateItemRequest) (*repo.InventoryItem, error) {
	if req.Barcode != nil && *req.Barcode != "" {
		exists, err := s.db.InventoryItem.Query().
			Where(entitem.BranchID(branchID), entitem.Barcode(*req.Barcode), entitem.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check barcode: %w", err)
		}
		if exists {
			return nil, ErrDuplicateBarcode
		}
	}

	qty := req.AvailableQuantity
	if len(req.AvailableSerials) > 0 {
		qty = len(req.AvailableSerials)
	}

	c := s.db.InventoryItem.Create().
		SetBranchID(branchID).
		SetBrand(req.Brand).
		SetModel(req.Model).
		SetCategory(entitem.Category(req.Category)).
		SetPrice(req.Price).
		SetAvailableQuantity(qty)
	if req.Ear != nil {
		c = c.SetEar(entitem.Ear(*req.Ear))
	}
	if req.Barcode != nil {
		c = c.SetNillableBarcode(req.Barcode)
	}
	if len(req.AvailableSerials) > 0 {
		c = c.SetAvailableSerials(lo.Uniq(req.AvailableSerials))
	}
	return c.Save(ctx)
}

func (s *inventoryService) GetByID(ctx context.Context, branchID, itemID uuid.UUID) (*repo.InventoryItem, error) {
	it, err := s.db.InventoryItem.Query().
		Where(entitem.ID(itemID), entitem.BranchID(branchID), entitem.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

func (s *inventoryService) Search(ctx context.Context, branchID uuid.UUID, req SearchRequest) (*SearchResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.InventoryItem.Query().
		Where(entitem.BranchID(branchID), entitem.DeletedAtIsNil())
	if req.Category != nil {
		q = q.Where(entitem.CategoryEQ(entitem.Category(*req.Category)))
	}
	if req.Query != "" {
		q = q.Where(entitem.Or(
			entitem.BrandContainsFold(req.Query),
			entitem.ModelContainsFold(req.Query),
			entitem.BarcodeContains(req.Query),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	rows, err := q.Order(entitem.ByBrand(sql.OrderAsc()), entitem.ByModel(sql.OrderAsc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	return &SearchResult{
		Data:       rows,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
		Seq:        req.Seq,
	}, nil
}

func (s *inventoryService) Update(ctx context.Context, branchID, itemID uuid.UUID, req UpdateItemRequest) (*repo.InventoryItem, error) {
	it, err := s.GetByID(ctx, branchID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Barcode != nil && *req.Barcode != "" && (it.Barcode == nil || *it.Barcode != *req.Barcode) {
		exists, err := s.db.InventoryItem.Query().
			Where(entitem.BranchID(branchID), entitem.Barcode(*req.Barcode), entitem.DeletedAtIsNil(), entitem.IDNEQ(itemID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check barcode: %w", err)
		}
		if exists {
			return nil, ErrDuplicateBarcode
		}
	}

	upd := s.db.InventoryItem.UpdateOne(it)
	if req.Brand != nil {
		upd = upd.SetBrand(*req.Brand)
	}
	if req.Model != nil {
		upd = upd.SetModel(*req.Model)
	}
	if req.Category != nil {
		upd = upd.SetCategory(entitem.Category(*req.Category))
	}
	if req.Ear != nil {
		upd = upd.SetEar(entitem.Ear(*req.Ear))
	}
	if req.Price != nil {
		upd = upd.SetPrice(*req.Price)
	}
	if req.Barcode != nil {
		upd = upd.SetNillableBarcode(req.Barcode)
	}
	if req.AvailableQuantity != nil {
		upd = upd.SetAvailableQuantity(*req.AvailableQuantity)
	}
	return upd.Save(ctx)
}

func (s *inventoryService) Delete(ctx context.Context, branchID, itemID uuid.UUID) error {
	it, err := s.GetByID(ctx, branchID, itemID)
	if err != nil {
		return err
	}
	_, err = s.db.InventoryItem.UpdateOne(it).SetDeletedAt(time.Now()).Save(ctx)
	return err
}

// ---------------------------------------------------------------------------
// Stock movements
// ---------------------------------------------------------------------------

func (s *inventoryService) ReserveUnit(ctx context.Context, branchID, itemID uuid.UUID, serial *string) error {
	it, err := s.GetByID(ctx, branchID, itemID)
	if err != nil {
		return err
	}

	// The stock check lives in the UPDATE predicate so two concurrent
	// reserves cannot both take the last unit.
	upd := s.db.InventoryItem.Update().
		Where(
			entitem.ID(itemID),
			entitem.BranchID(branchID),
			entitem.DeletedAtIsNil(),
			entitem.AvailableQuantityGT(0),
		).
		AddAvailableQuantity(-1)
	if serial != nil && *serial != "" {
		if !lo.Contains(it.AvailableSerials, *serial) {
			return ErrSerialNotInStock
		}
		upd = upd.SetAvailableSerials(lo.Without(it.AvailableSerials, *serial))
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOutOfStock
	}
	return nil
}

func (s *inventoryService) RestoreUnit(ctx context.Context, branchID, itemID uuid.UUID, serial *string) error {
	it, err := s.GetByID(ctx, branchID, itemID)
	if err != nil {
		return err
	}

	upd := s.db.InventoryItem.Update().
		Where(
			entitem.ID(itemID),
			entitem.BranchID(branchID),
			entitem.DeletedAtIsNil(),
		).
		AddAvailableQuantity(1)
	if serial != nil && *serial != "" && !lo.Contains(it.AvailableSerials, *serial) {
		upd = upd.SetAvailableSerials(append(it.AvailableSerials, *serial))
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *inventoryService) AddSerials(ctx context.Context, branchID, itemID uuid.UUID, serials []string) (*repo.InventoryItem, error) {
	it, err := s.GetByID(ctx, branchID, itemID)
	if err != nil {
		return nil, err
	}
	for _, sn := range serials {
		if lo.Contains(it.AvailableSerials, sn) {
			return nil, ErrSerialAlreadyHeld
		}
	}

	added := lo.Uniq(serials)
	merged := append(it.AvailableSerials, added...)
	n, err := s.db.InventoryItem.Update().
		Where(
			entitem.ID(itemID),
			entitem.BranchID(branchID),
			entitem.DeletedAtIsNil(),
		).
		SetAvailableSerials(merged).
		AddAvailableQuantity(len(added)).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrItemNotFound
	}
	return s.GetByID(ctx, branchID, itemID)
}
