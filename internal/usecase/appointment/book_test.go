package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/links"
	"github.com/BruksfildServices01/cutcorp-booking/internal/metrics"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
)

var shop = links.Shop{Name: "CUT CORP", Address: "Rua da Engenharia, 404", WhatsApp: "5511999999999"}

func newBook(repo *fakeRepo, m *metrics.Metrics) *BookAppointment {
	uc := NewBookAppointment(repo, newCatalog(), nil, m, shop, "UTC")
	uc.clock = fixedClock("UTC", time.Date(2026, 10, 13, 15, 0, 0, 0, time.UTC))
	return uc
}

func validInput() BookInput {
	return BookInput{
		ClientName: " Ana ",
		Phone:      "(11) 99999-9999",
		ServiceID:  "corte",
		BarberID:   "joao",
		Date:       "2026-10-14",
		Time:       "09:00",
	}
}

func TestBook_CreatesScheduledBooking(t *testing.T) {
	repo := &fakeRepo{}
	uc := newBook(repo, nil)

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	ap := res.Appointment
	assert.Equal(t, "Ana", ap.ClientName)
	assert.Equal(t, "11999999999", ap.Phone)
	assert.Equal(t, "CORTE", ap.ServiceName)
	assert.Equal(t, 50.0, ap.ServicePrice)
	assert.Equal(t, "JOÃO", ap.BarberName)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, string(domain.SourceClientBooking), ap.Source)
	assert.Contains(t, res.Links.Calendar, "dates=20261014T090000/20261014T093000")
	assert.Equal(t, 1, repo.count())
}

func TestBook_RejectsTakenSlot(t *testing.T) {
	repo := &fakeRepo{rows: []models.Appointment{
		{ID: "x", BarberID: "joao", Date: "2026-10-14", Time: "09:00", Status: string(domain.StatusPending)},
	}}
	m := metrics.New()
	uc := newBook(repo, m)

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
	assert.Equal(t, 1, repo.count())
	series, err := testutil.GatherAndCount(m.Registry(), "cutcorp_bookings_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
}

func TestBook_CancelledSlotIsFree(t *testing.T) {
	repo := &fakeRepo{rows: []models.Appointment{
		{ID: "x", BarberID: "joao", Date: "2026-10-14", Time: "09:00", Status: string(domain.StatusCancelled)},
	}}

	_, err := newBook(repo, nil).Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.count())
}

func TestBook_RejectsBadInput(t *testing.T) {
	cases := map[string]func(*BookInput){
		"client_name": func(in *BookInput) { in.ClientName = "  " },
		"phone":       func(in *BookInput) { in.Phone = "9999-999" },
		"service_id":  func(in *BookInput) { in.ServiceID = "" },
		"barber_id":   func(in *BookInput) { in.BarberID = "" },
		"date":        func(in *BookInput) { in.Date = "2026-13-01" },
		"time":        func(in *BookInput) { in.Time = "25:00" },
	}

	for field, mutate := range cases {
		repo := &fakeRepo{}
		in := validInput()
		mutate(&in)

		_, err := newBook(repo, nil).Execute(context.Background(), in)
		be, ok := httperr.AsBusiness(err)
		require.True(t, ok, field)
		assert.Equal(t, httperr.CodeValidation, be.Code, field)
		assert.Equal(t, field, be.Field)
		assert.Zero(t, repo.count(), field)
	}
}

func TestBook_InactiveCatalogEntries(t *testing.T) {
	in := validInput()
	in.ServiceID = "retired"
	_, err := newBook(&fakeRepo{}, nil).Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

	in = validInput()
	in.BarberID = "pedro"
	_, err = newBook(&fakeRepo{}, nil).Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestBook_StorageConflictIsSlotTaken(t *testing.T) {
	repo := &fakeRepo{
		CreateFunc: func(context.Context, *models.Appointment) error {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		},
	}

	_, err := newBook(repo, nil).Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

func TestBook_StorageFailurePropagates(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &fakeRepo{
		CreateFunc: func(context.Context, *models.Appointment) error { return boom },
	}

	_, err := newBook(repo, nil).Execute(context.Background(), validInput())
	assert.ErrorIs(t, err, boom)
}

// Both requests run their slot check before either inserts; with no index
// backing the check, both bookings land.
func TestBook_InterleavedRequestsBothLand(t *testing.T) {
	repo := &fakeRepo{}
	var checked sync.WaitGroup
	checked.Add(2)

	repo.ListAtSlotFunc = func(_ context.Context, barberID, date, hm string) ([]models.Appointment, error) {
		rows := repo.atSlot(barberID, date, hm)
		checked.Done()
		checked.Wait()
		return rows, nil
	}

	uc := newBook(repo, nil)
	errs := make([]error, 2)
	var done sync.WaitGroup
	for i := range errs {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			_, errs[i] = uc.Execute(context.Background(), validInput())
		}(i)
	}
	done.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 2, repo.count())
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, metrics.OutcomeBooked, outcomeOf(nil))
	assert.Equal(t, metrics.OutcomeSlotTaken, outcomeOf(httperr.ErrBusiness(httperr.CodeSlotTaken)))
	assert.Equal(t, metrics.OutcomeRejected, outcomeOf(httperr.ErrValidation("phone")))
	assert.Equal(t, metrics.OutcomeFailed, outcomeOf(errors.New("x")))
}
