package usecase

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRentalFixture(t *testing.T, stock int, pricePerDay float64) (*memDB, *rentalService, uuid.UUID) {
	t.Helper()

	db := newMemDB()
	svc := NewRentalService(db.repository(), nopLogger()).(*rentalService)
	svc.now = fixedClock(time.Date(2026, 1, 19, 8, 0, 0, 0, time.UTC))

	created, err := svc.CreateEquipment(context.Background(), &request.CreateEquipmentRequest{
		Name:        "Tenda 4 orang",
		Category:    "tent",
		PricePerDay: pricePerDay,
		Stock:       stock,
	})
	require.NoError(t, err)
	require.Equal(t, stock, created.Available)

	return db, svc, uuid.MustParse(created.ID)
}

func rentalRequest(equipmentID uuid.UUID, quantity int) *request.CreateRentalRequest {
	return &request.CreateRentalRequest{
		EquipmentID:   equipmentID.String(),
		CustomerName:  "Budi",
		CustomerPhone: "081234567890",
		RentalDate:    "2026-01-20",
		ReturnDate:    "2026-01-22",
		Quantity:      quantity,
	}
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name       string
		rentalDate string
		returnDate string
		want       int
	}{
		{"two nights", "2026-01-20", "2026-01-22", 2},
		{"same day", "2026-01-20", "2026-01-20", 1},
		{"return before rental", "2026-01-22", "2026-01-20", 1},
		{"malformed rental date", "20-01-2026", "2026-01-22", 1},
		{"malformed return date", "2026-01-20", "soon", 1},
		{"across month end", "2026-01-30", "2026-02-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(tt.rentalDate, tt.returnDate))
		})
	}
}

func TestRentalQuote(t *testing.T) {
	_, svc, equipmentID := newRentalFixture(t, 5, 100000)
	ctx := context.Background()

	quote, err := svc.Quote(ctx, &request.QuoteRequest{
		EquipmentID: equipmentID.String(),
		RentalDate:  "2026-01-20",
		ReturnDate:  "2026-01-22",
		Quantity:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Days)
	assert.Equal(t, float64(400000), quote.TotalPrice)

	quote, err = svc.Quote(ctx, &request.QuoteRequest{
		EquipmentID: equipmentID.String(),
		RentalDate:  "bad",
		ReturnDate:  "2026-01-22",
		Quantity:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Days)
	assert.Equal(t, float64(100000), quote.TotalPrice)

	_, err = svc.Quote(ctx, &request.QuoteRequest{EquipmentID: uuid.NewString(), Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRental_PricesAndReservesStock(t *testing.T) {
	db, svc, equipmentID := newRentalFixture(t, 5, 100000)

	rental, err := svc.CreateRental(context.Background(), rentalRequest(equipmentID, 2))
	require.NoError(t, err)
	assert.Equal(t, float64(400000), rental.TotalPrice)
	assert.Equal(t, entity.RentalStatusPending, rental.Status)
	assert.Equal(t, "Tenda 4 orang", rental.EquipmentName)
	assert.Equal(t, 3, db.equipment[equipmentID].Available)
}

func TestCreateRental_InsufficientStock(t *testing.T) {
	db, svc, equipmentID := newRentalFixture(t, 2, 50000)
	ctx := context.Background()

	_, err := svc.CreateRental(ctx, rentalRequest(equipmentID, 3))
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, db.equipment[equipmentID].Available)
	assert.Empty(t, db.rentals)

	_, err = svc.CreateRental(ctx, rentalRequest(equipmentID, 2))
	require.NoError(t, err)

	_, err = svc.CreateRental(ctx, rentalRequest(equipmentID, 1))
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, db.equipment[equipmentID].Available)
}

func TestCreateRental_RejectsBadInput(t *testing.T) {
	_, svc, equipmentID := newRentalFixture(t, 2, 50000)
	ctx := context.Background()

	req := rentalRequest(equipmentID, 1)
	req.ReturnDate = "2026-01-19"
	_, err := svc.CreateRental(ctx, req)
	require.ErrorIs(t, err, ErrInvalidInput)

	req = rentalRequest(equipmentID, 0)
	_, err = svc.CreateRental(ctx, req)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateRental(ctx, rentalRequest(uuid.New(), 1))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRental_ConcurrentNeverOversells(t *testing.T) {
	db, svc, equipmentID := newRentalFixture(t, 5, 10000)

	const renters = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range renters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateRental(context.Background(), rentalRequest(equipmentID, 1))
			if err != nil {
				assert.ErrorIs(t, err, ErrInsufficientStock)
				return
			}
			mu.Lock()
			granted++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, granted)
	assert.Equal(t, 0, db.equipment[equipmentID].Available)
}

func TestRentalUpdateStatus_ReturnReleasesOnce(t *testing.T) {
	db, svc, equipmentID := newRentalFixture(t, 5, 100000)
	ctx := context.Background()

	rental, err := svc.CreateRental(ctx, rentalRequest(equipmentID, 2))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusActive))
	require.NoError(t, err)
	assert.Equal(t, 3, db.equipment[equipmentID].Available)

	returned, err := svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusReturned))
	require.NoError(t, err)
	assert.Equal(t, entity.RentalStatusReturned, returned.Status)
	assert.Equal(t, 5, db.equipment[equipmentID].Available)

	// Same status again is a no-op, not a second credit.
	_, err = svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusReturned))
	require.NoError(t, err)
	assert.Equal(t, 5, db.equipment[equipmentID].Available)

	_, err = svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusCancelled))
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 5, db.equipment[equipmentID].Available)
}

func TestRentalUpdateStatus_CancelReleases(t *testing.T) {
	db, svc, equipmentID := newRentalFixture(t, 4, 100000)
	ctx := context.Background()

	rental, err := svc.CreateRental(ctx, rentalRequest(equipmentID, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, db.equipment[equipmentID].Available)

	_, err = svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusCancelled))
	require.NoError(t, err)
	assert.Equal(t, 4, db.equipment[equipmentID].Available)
	assert.True(t, db.rentals[uuid.MustParse(rental.ID)].StockReleased)
}

func TestRentalUpdateStatus_Rejections(t *testing.T) {
	_, svc, equipmentID := newRentalFixture(t, 4, 100000)
	ctx := context.Background()

	rental, err := svc.CreateRental(ctx, rentalRequest(equipmentID, 1))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, rental.ID, "lost")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, uuid.NewString(), string(entity.RentalStatusActive))
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusActive))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusPending))
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRentalUpdateStatus_ConcurrentReturnsCreditOnce(t *testing.T) {
	db, svc, equipmentID := newRentalFixture(t, 3, 100000)
	ctx := context.Background()

	rental, err := svc.CreateRental(ctx, rentalRequest(equipmentID, 3))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.UpdateStatus(ctx, rental.ID, string(entity.RentalStatusReturned))
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, db.equipment[equipmentID].Available)
}

// Random interleavings of rentals and status changes keep 0 <= available <= stock
// and available == stock - units held by unreleased rentals.
func TestRentalStockInvariant_RandomOperations(t *testing.T) {
	const stock = 6
	db, svc, equipmentID := newRentalFixture(t, stock, 25000)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	statuses := []entity.RentalStatus{
		entity.RentalStatusPending,
		entity.RentalStatusActive,
		entity.RentalStatusReturned,
		entity.RentalStatusCancelled,
	}
	var rentalIDs []string

	for step := range 300 {
		if len(rentalIDs) == 0 || rng.Intn(2) == 0 {
			resp, err := svc.CreateRental(ctx, rentalRequest(equipmentID, 1+rng.Intn(3)))
			if err == nil {
				rentalIDs = append(rentalIDs, resp.ID)
			} else {
				require.ErrorIs(t, err, ErrInsufficientStock, "step %d", step)
			}
		} else {
			id := rentalIDs[rng.Intn(len(rentalIDs))]
			_, err := svc.UpdateStatus(ctx, id, string(statuses[rng.Intn(len(statuses))]))
			if err != nil {
				require.ErrorIs(t, err, ErrInvalidTransition, "step %d", step)
			}
		}

		equipment := db.equipment[equipmentID]
		require.GreaterOrEqual(t, equipment.Available, 0, "step %d", step)
		require.LessOrEqual(t, equipment.Available, equipment.Stock, "step %d", step)

		held := 0
		for _, r := range db.rentals {
			if !r.StockReleased {
				held += r.Quantity
			}
		}
		require.Equal(t, stock-held, equipment.Available, "step %d", step)
	}
}

func TestDeleteEquipment_ReferencedIsConflict(t *testing.T) {
	_, svc, equipmentID := newRentalFixture(t, 2, 10000)
	ctx := context.Background()

	_, err := svc.CreateRental(ctx, rentalRequest(equipmentID, 1))
	require.NoError(t, err)

	err = svc.DeleteEquipment(ctx, equipmentID.String())
	require.ErrorIs(t, err, ErrConflict)

	err = svc.DeleteEquipment(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListEquipment_AvailableOnly(t *testing.T) {
	_, svc, equipmentID := newRentalFixture(t, 1, 10000)
	ctx := context.Background()

	all, err := svc.ListEquipment(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.CreateRental(ctx, rentalRequest(equipmentID, 1))
	require.NoError(t, err)

	available, err := svc.ListEquipment(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, available)

	all, err = svc.ListEquipment(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
