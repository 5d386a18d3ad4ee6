//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/handler/api"
	resdto "library-clean-service/internal/handler/dto/response"
	"library-clean-service/internal/usecase/commands"
	"library-clean-service/tests/common/httptest"
	commandsmock "library-clean-service/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BorrowingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBorrowingCommands
	handler      *api.BorrowingHandler
}

func (s *BorrowingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBorrowingCommands(s.mockCtrl)
	s.handler = api.NewBorrowingHandler(s.mockCommands)

	s.router.POST("/borrowings", s.handler.BorrowBook)
	s.router.POST("/returns", s.handler.ReturnBook)
}

func (s *BorrowingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBorrowingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BorrowingHandlerTestSuite))
}

func (s *BorrowingHandlerTestSuite) TestBorrowBook() {
	url := "/borrowings"
	reqBody := map[string]any{"patron_id": "123456", "book_id": 42}

	s.Run("success: returns 201 with due date", func() {
		dueAt := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().BorrowBook(gomock.Any(), "123456", int64(42)).
			Return(&commands.BorrowConfirmation{
				RecordID:  7,
				BookTitle: "1984",
				DueAt:     dueAt,
				Message:   `Successfully borrowed "1984". Due date: 2025-03-15.`,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.BorrowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(7), resp.RecordID)
		s.Equal("1984", resp.BookTitle)
		s.Contains(resp.Message, "2025-03-15")
	})

	s.Run("invalid patron id: returns 400", func() {
		body := map[string]any{"patron_id": "12ab56", "book_id": 42}
		s.mockCommands.EXPECT().BorrowBook(gomock.Any(), "12ab56", int64(42)).
			Return(nil, borrowing.ErrInvalidPatronID).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "patron id")
	})

	s.Run("book not found: returns 404", func() {
		s.mockCommands.EXPECT().BorrowBook(gomock.Any(), "123456", int64(42)).
			Return(nil, commands.ErrBookNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})

	s.Run("book unavailable: returns 409", func() {
		s.mockCommands.EXPECT().BorrowBook(gomock.Any(), "123456", int64(42)).
			Return(nil, commands.ErrBookUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("borrow limit reached: returns 409", func() {
		s.mockCommands.EXPECT().BorrowBook(gomock.Any(), "123456", int64(42)).
			Return(nil, commands.ErrBorrowLimitReached).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Maximum borrowing limit of 5 books")
	})

	s.Run("store failure: returns 500", func() {
		s.mockCommands.EXPECT().BorrowBook(gomock.Any(), "123456", int64(42)).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BorrowingHandlerTestSuite) TestReturnBook() {
	url := "/returns"
	reqBody := map[string]any{"patron_id": "123456", "book_id": 42}

	s.Run("success: returns 200 with fee details", func() {
		s.mockCommands.EXPECT().ReturnBook(gomock.Any(), "123456", int64(42)).
			Return(&commands.ReturnConfirmation{
				Message: "Book returned with late fee $6.50 (10 days overdue).",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.ReturnResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Contains(resp.Message, "late fee $6.50")
	})

	s.Run("no active borrow: returns 404", func() {
		s.mockCommands.EXPECT().ReturnBook(gomock.Any(), "123456", int64(42)).
			Return(nil, commands.ErrNoActiveBorrow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active borrow record")
	})
}
