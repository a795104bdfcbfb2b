//go:build e2e

package rental_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"gear-rental/internal/domain/user"
	"gear-rental/internal/handler/dto/request"
	resdto "gear-rental/internal/handler/dto/response"
	"gear-rental/internal/usecase/queries"
	"gear-rental/tests/common/authtest"
	"gear-rental/tests/common/dbtest"
	"gear-rental/tests/common/httptest"
	"gear-rental/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const rentalsURL = "/api/rentals"

type rentalSuite struct {
	e2e.SharedSuite
	token string
	day   time.Time
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(rentalSuite))
}

func (s *rentalSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "desk@example.com", string(user.RoleOperator))
	// far enough ahead that every booking stays Reserved for the whole run
	s.day = time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 30)
}

func (s *rentalSuite) at(days int) time.Time {
	return s.day.AddDate(0, 0, days)
}

func (s *rentalSuite) createRental(equipmentID uuid.UUID, start, end time.Time, email string) (int, *resdto.RentalResultResponse, string) {
	req := request.CreateRentalRequest{
		Start:        start,
		End:          end,
		EquipmentIDs: []uuid.UUID{equipmentID},
		Customer: request.CustomerRequest{
			Name:  "Climber " + email,
			Email: email,
		},
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rentalsURL, req, s.token)
	if w.Code != http.StatusCreated {
		return w.Code, nil, w.Body.String()
	}
	var res resdto.RentalResultResponse
	httptest.DecodeJSON(s.T(), w, &res)
	return w.Code, &res, ""
}

func (s *rentalSuite) attachedCount(equipmentID uuid.UUID) int {
	var n int
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT count(*) FROM rental_equipment WHERE equipment_id = $1", equipmentID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *rentalSuite) TestCreate() {
	s.Run("quotes the total from the rate tiers", func() {
		tent := dbtest.CreateTestEquipment(s.T(), s.DB, "Two-person tent", "tent", 2500)

		code, res, body := s.createRental(tent, s.at(0), s.at(3), "quote@example.com")

		require.Equal(s.T(), http.StatusCreated, code, body)
		assert.Equal(s.T(), int64(7500), res.Rental.TotalCents)
		assert.Equal(s.T(), "Reserved", res.Rental.Status)
		require.Len(s.T(), res.Items, 1)
		assert.True(s.T(), res.Items[0].Attached)
		assert.False(s.T(), res.Partial)
	})

	s.Run("back-to-back bookings share the boundary instant", func() {
		kayak := dbtest.CreateTestEquipment(s.T(), s.DB, "Kayak", "boat", 4000)

		code, first, body := s.createRental(kayak, s.at(0), s.at(2), "first@example.com")
		require.Equal(s.T(), http.StatusCreated, code, body)
		code, second, body := s.createRental(kayak, s.at(2), s.at(4), "second@example.com")
		require.Equal(s.T(), http.StatusCreated, code, body)

		assert.True(s.T(), first.Items[0].Attached)
		assert.True(s.T(), second.Items[0].Attached)
		assert.Equal(s.T(), 2, s.attachedCount(kayak))
	})

	s.Run("overlap is rejected with the conflicting rental", func() {
		stove := dbtest.CreateTestEquipment(s.T(), s.DB, "Stove", "cooking", 800)
		code, first, body := s.createRental(stove, s.at(0), s.at(3), "owner@example.com")
		require.Equal(s.T(), http.StatusCreated, code, body)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rentalsURL, request.CreateRentalRequest{
			Start:        s.at(2),
			End:          s.at(5),
			EquipmentIDs: []uuid.UUID{stove},
			Customer:     request.CustomerRequest{Name: "Late", Email: "late@example.com"},
		}, s.token)

		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
		assert.Contains(s.T(), w.Body.String(), first.Rental.ID.String())
		assert.Equal(s.T(), 1, s.attachedCount(stove))
	})

	s.Run("manual repair status blocks booking", func() {
		lamp := dbtest.CreateTestEquipment(s.T(), s.DB, "Lantern", "light", 300)
		dbtest.SetEquipmentStatus(s.T(), s.DB, lamp, "In Repair")

		code, _, body := s.createRental(lamp, s.at(0), s.at(1), "repair@example.com")

		require.Equal(s.T(), http.StatusConflict, code, body)
		assert.Contains(s.T(), body, "manual status")
	})

	s.Run("viewer cannot book", func() {
		viewer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com", string(user.RoleViewer))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rentalsURL, request.CreateRentalRequest{}, viewer)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}

func (s *rentalSuite) TestConcurrentDoubleBooking() {
	s.Run("one booking wins the row lock", func() {
		bike := dbtest.CreateTestEquipment(s.T(), s.DB, "Mountain bike", "bike", 3500)

		const attempts = 8
		type outcome struct {
			code     int
			attached bool
		}
		outcomes := make([]outcome, attempts)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				code, res, _ := s.createRental(bike, s.at(0), s.at(2), fmt.Sprintf("racer%d@example.com", i))
				outcomes[i] = outcome{code: code, attached: res != nil && len(res.Items) == 1 && res.Items[0].Attached}
			}()
		}
		close(start)
		wg.Wait()

		winners := 0
		for _, o := range outcomes {
			// losers either fail the pre-check or lose the locked re-check
			assert.Contains(s.T(), []int{http.StatusCreated, http.StatusConflict}, o.code)
			if o.attached {
				winners++
			}
		}
		assert.Equal(s.T(), 1, winners)
		assert.Equal(s.T(), 1, s.attachedCount(bike))
	})
}

func (s *rentalSuite) TestCancel() {
	s.Run("frees the equipment and records the audit row", func() {
		rope := dbtest.CreateTestEquipment(s.T(), s.DB, "Rope 60m", "climbing", 1200)
		code, res, body := s.createRental(rope, s.at(0), s.at(2), "cancel@example.com")
		require.Equal(s.T(), http.StatusCreated, code, body)
		rentalID := res.Rental.ID

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rentalsURL+"/"+rentalID.String()+"/cancel",
			request.CancelRentalRequest{VoidAmountCents: 1000, Reason: "weather"}, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var cancelled resdto.CancelRentalResponse
		httptest.DecodeJSON(s.T(), w, &cancelled)
		assert.Equal(s.T(), "Cancelled", cancelled.Rental.Status)
		assert.Equal(s.T(), int64(1000), cancelled.Cancellation.VoidCents)

		var audits int
		require.NoError(s.T(), s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM rental_cancellations WHERE rental_id = $1", rentalID).Scan(&audits))
		assert.Equal(s.T(), 1, audits)

		url := fmt.Sprintf("/api/equipment/%s/availability?start=%s&end=%s", rope,
			s.at(0).Format(time.RFC3339), s.at(2).Format(time.RFC3339))
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var avail queries.AvailabilityView
		httptest.DecodeJSON(s.T(), w, &avail)
		assert.True(s.T(), avail.Available)
	})

	s.Run("second cancel is rejected", func() {
		harness := dbtest.CreateTestEquipment(s.T(), s.DB, "Harness", "climbing", 600)
		code, res, body := s.createRental(harness, s.at(0), s.at(1), "twice@example.com")
		require.Equal(s.T(), http.StatusCreated, code, body)
		url := rentalsURL + "/" + res.Rental.ID.String() + "/cancel"

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, request.CancelRentalRequest{Reason: "changed plans"}, s.token)
		require.Equal(s.T(), http.StatusOK, first.Code, first.Body.String())
		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, request.CancelRentalRequest{Reason: "again"}, s.token)

		require.Equal(s.T(), http.StatusConflict, second.Code, second.Body.String())
	})

	s.Run("void above the total is rejected", func() {
		axe := dbtest.CreateTestEquipment(s.T(), s.DB, "Ice axe", "climbing", 500)
		code, res, body := s.createRental(axe, s.at(0), s.at(1), "void@example.com")
		require.Equal(s.T(), http.StatusCreated, code, body)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rentalsURL+"/"+res.Rental.ID.String()+"/cancel",
			request.CancelRentalRequest{VoidAmountCents: 99999, Reason: "refund"}, s.token)

		require.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *rentalSuite) TestCalendar() {
	s.Run("lists bookings intersecting the range", func() {
		tent := dbtest.CreateTestEquipment(s.T(), s.DB, "Tent", "tent", 2000)
		code, _, body := s.createRental(tent, s.at(0), s.at(2), "cal@example.com")
		require.Equal(s.T(), http.StatusCreated, code, body)

		url := fmt.Sprintf("/api/calendar?from=%s&to=%s", s.at(1).Format(time.RFC3339), s.at(5).Format(time.RFC3339))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.token)

		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var cal resdto.CalendarResponse
		httptest.DecodeJSON(s.T(), w, &cal)
		require.Len(s.T(), cal.Entries, 1)
		assert.Contains(s.T(), cal.Entries[0].EquipmentNames, "Tent")
	})
}
