//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/handler/api"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"
	"barbershop-booking/tests/common/builder"
	"barbershop-booking/tests/common/httptest"
	"barbershop-booking/tests/common/testutil"
	commandsmock "barbershop-booking/tests/mock/commands"
	queriesmock "barbershop-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	tenantID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.tenantID = uuid.New()
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.reset()
}

func (s *BookingHandlerTestSuite) SetupSubTest() {
	s.reset()
}

func (s *BookingHandlerTestSuite) reset() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/tenants/:tenantId/bookings", s.handler.Create)
	s.router.GET("/tenants/:tenantId/bookings", s.handler.List)
	s.router.GET("/tenants/:tenantId/bookings/:id", s.handler.Get)
	s.router.POST("/tenants/:tenantId/bookings/:id/cancel", s.handler.Cancel)
	s.router.POST("/tenants/:tenantId/bookings/:id/complete", s.handler.Complete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingsURL() string {
	return "/tenants/" + s.tenantID.String() + "/bookings"
}

func (s *BookingHandlerTestSuite) fixture() *builder.BookingBuilder {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.TenantID = s.tenantID })
}

type testCaseBooking struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	b := s.fixture()
	reqBody := b.BuildCreateRequestDTO()
	result := b.BuildResult()
	view := b.BuildView()

	s.Run("success: returns 201 with the booking view", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.ReserveInput) (*commands.BookingResult, error) {
				s.Equal(s.tenantID, in.TenantID)
				s.Equal(b.StaffID, in.StaffID)
				s.Equal("João Silva", in.Customer.Name)
				s.True(in.StartsAt.Equal(b.StartsAt))
				return result, nil
			})
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.tenantID, b.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.bookingsURL(), reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID.String(), body.ID)
		s.Equal("AG000042", body.Code)
		s.Equal("35.00", body.Price)
		s.Equal(booking.StatusConfirmed.String(), body.Status)
	})

	s.Run("error: 400 on request validation", func() {
		testCases := []testCaseBooking{
			{name: "missing staff_id", mutate: testutil.Field("staff_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing service_id", mutate: testutil.Field("service_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing customer", mutate: testutil.Field("customer", nil), expectCode: http.StatusBadRequest},
			{name: "malformed starts_at", mutate: testutil.Field("starts_at", "amanhã às 14h"), expectCode: http.StatusBadRequest},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
			{name: "invalid customer email", mutate: testutil.Nested("customer", "email", "joao-at-example"), expectCode: http.StatusBadRequest},
			{name: "missing customer phone", mutate: testutil.Nested("customer", "phone", nil), expectCode: http.StatusBadRequest},
			{name: "customer name too long", mutate: testutil.Nested("customer", "name", strings.Repeat("a", 51)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.bookingsURL(), requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 400 on malformed tenant id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tenants/not-a-uuid/bookings", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid tenantId")
	})

	s.Run("error: usecase errors map to statuses", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"slot taken", errs.Wrap(commands.ErrSlotConflict, "staff busy"), http.StatusConflict, "Slot already booked"},
			{"inactive tenant", commands.ErrTenantInactive, http.StatusForbidden, "Tenant does not accept bookings"},
			{"missing tenant reserves as inactive", errs.Mark(shared.MarkNotFound(infra.NewRepoErr(infra.KindNotFound, "tenant"), shared.ErrTenantNotFound), commands.ErrTenantInactive), http.StatusForbidden, "Tenant does not accept bookings"},
			{"quota", commands.ErrQuotaExceeded, http.StatusTooManyRequests, "Plan quota exceeded"},
			{"past instant", errs.Validation("booking must start in the future"), http.StatusBadRequest, "Invalid request"},
			{"store failure", errs.Mark(errs.New("pool closed"), commands.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.bookingsURL(), reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	b := s.fixture()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.tenantID, b.ID).Return(b.BuildView(), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.bookingsURL()+"/"+b.ID.String(), nil, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("João Silva", body.CustomerName)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.tenantID, b.ID).
			Return(nil, shared.MarkNotFound(errs.New("no rows"), shared.ErrBookingNotFound))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.bookingsURL()+"/"+b.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: passes filters and returns next cursor", func() {
		items := []queries.BookingView{*s.fixture().BuildView()}
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.tenantID, gomock.Any(), gomock.Any(), 5).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, filter queries.BookingFilter, cursor *queries.Cursor, _ int) ([]queries.BookingView, *queries.Cursor, error) {
				s.Equal("2026-03-11", filter.Day.Format("2006-01-02"))
				s.Equal("confirmed", filter.Status)
				s.Require().NotNil(cursor)
				s.Equal("abc", cursor.After)
				return items, next, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			s.bookingsURL()+"?date=2026-03-11&status=confirmed&limit=5&after=abc", nil, "")

		var body struct {
			Bookings   []resdto.BookingResponse `json:"bookings"`
			NextCursor string                   `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
		s.Equal("next-page", body.NextCursor)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.bookingsURL()+"?date=11/03/2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	b := s.fixture()
	url := s.bookingsURL() + "/" + b.ID.String()

	s.Run("cancel: success", func() {
		cancelled := s.fixture().With(func(x *builder.BookingBuilder) {
			x.ID = b.ID
			x.Status = booking.StatusCancelled
		})
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.tenantID, b.ID).Return(cancelled.BuildResult(), nil)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.tenantID, b.ID).Return(cancelled.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/cancel", nil, "")
		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("cancel: already cancelled is 409", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.tenantID, b.ID).Return(nil, commands.ErrAlreadyCancelled)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking already cancelled")
	})

	s.Run("complete: cancelled booking is 400", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.tenantID, b.ID).Return(nil, commands.ErrInvalidTransition)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/complete", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("complete: unknown booking is 404", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.tenantID, b.ID).
			Return(nil, shared.MarkNotFound(errs.New("no rows"), shared.ErrBookingNotFound))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/complete", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.bookingsURL()+"/42/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
