package inventory

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	"github.com/omrozmn/x-ear-sub003/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func TestReserveUnitDecrementsGuardedByStock(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	branch, err := client.Branch.Create().SetName("Merkez").Save(ctx)
	if err != nil {
		t.Fatalf("create branch: %v", err)
	}
	item, err := client.InventoryItem.Create().
		SetBranchID(branch.ID).
		SetBrand("Phonak").
		SetModel("Audeo L90").
		SetAvailableQuantity(1).
		Save(ctx)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	if err := svc.ReserveUnit(ctx, branch.ID, item.ID, nil); err != nil {
		t.Fatalf("ReserveUnit() first call = %v, want nil", err)
	}

	// The stock predicate lives in the UPDATE itself, so draining the last
	// unit must fail with zero rows affected, not go negative.
	if err := svc.ReserveUnit(ctx, branch.ID, item.ID, nil); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("ReserveUnit() on empty stock = %v, want ErrOutOfStock", err)
	}

	got, err := svc.GetByID(ctx, branch.ID, item.ID)
	if err != nil {
		t.Fatalf("GetByID() = %v", err)
	}
	if got.AvailableQuantity != 0 {
		t.Errorf("available quantity = %d, want 0", got.AvailableQuantity)
	}
}

func TestReserveAndRestoreSerialUnit(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	branch, err := client.Branch.Create().SetName("Merkez").Save(ctx)
	if err != nil {
		t.Fatalf("create branch: %v", err)
	}
	item, err := client.InventoryItem.Create().
		SetBranchID(branch.ID).
		SetBrand("Oticon").
		SetModel("Real 1").
		SetAvailableQuantity(2).
		SetAvailableSerials([]string{"SN-1", "SN-2"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	serial := "SN-1"
	if err := svc.ReserveUnit(ctx, branch.ID, item.ID, &serial); err != nil {
		t.Fatalf("ReserveUnit(SN-1) = %v, want nil", err)
	}

	missing := "SN-9"
	if err := svc.ReserveUnit(ctx, branch.ID, item.ID, &missing); !errors.Is(err, ErrSerialNotInStock) {
		t.Fatalf("ReserveUnit(SN-9) = %v, want ErrSerialNotInStock", err)
	}

	if err := svc.RestoreUnit(ctx, branch.ID, item.ID, &serial); err != nil {
		t.Fatalf("RestoreUnit(SN-1) = %v, want nil", err)
	}

	got, err := svc.GetByID(ctx, branch.ID, item.ID)
	if err != nil {
		t.Fatalf("GetByID() = %v", err)
	}
	if got.AvailableQuantity != 2 {
		t.Errorf("available quantity = %d, want 2", got.AvailableQuantity)
	}
	if len(got.AvailableSerials) != 2 {
		t.Errorf("available serials = %v, want SN-1 and SN-2 back in stock", got.AvailableSerials)
	}
}
