package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dkruglov/lending-service/internal/errs"
	"github.com/dkruglov/lending-service/internal/handler"
	"github.com/dkruglov/lending-service/internal/model"
	"github.com/dkruglov/lending-service/pkg/kafka"
	"github.com/dkruglov/lending-service/pkg/validate"

	service_mocks "github.com/dkruglov/lending-service/internal/handler/mocks"
)

type fakeEnqueuer struct {
	topics []string
	events []model.LendingEvent
}

func (f *fakeEnqueuer) Enqueue(topic string, v any) error {
	f.topics = append(f.topics, topic)
	f.events = append(f.events, v.(model.LendingEvent))
	return nil
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	borrowDate := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	record := model.LendingRecord{
		RecordUid:          "6d6f522f-34a0-4b70-9b9c-c4c0a534c2f8",
		ItemID:             1,
		BorrowerID:         7,
		BorrowDate:         borrowDate,
		ExpectedReturnDate: borrowDate.AddDate(0, 0, 2),
	}
	event := model.LendingEvent{
		EventType:  model.EventItemBorrowed,
		RecordUid:  record.RecordUid,
		ItemID:     1,
		BorrowerID: 7,
		Days:       2,
		OccurredAt: borrowDate,
	}

	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
		wantEvents   int
	}{
		{
			name: "ok",
			body: `{"borrowerId":7,"duration":"2d"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Borrow(context.Background(), 1, 7, "2d").
					Return(record, event, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"recordUid":"6d6f522f-34a0-4b70-9b9c-c4c0a534c2f8","itemId":1,"borrowerId":7,"borrowDate":"2024-03-01T10:00:00Z","expectedReturnDate":"2024-03-03T10:00:00Z"}`,
			wantEvents:   1,
		},
		{
			name: "err. not found",
			body: `{"borrowerId":7,"duration":"2d"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Borrow(context.Background(), 1, 7, "2d").
					Return(model.LendingRecord{}, model.LendingEvent{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"item not found"}`,
		},
		{
			name: "err. already borrowed",
			body: `{"borrowerId":7,"duration":"2d"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Borrow(context.Background(), 1, 7, "2d").
					Return(model.LendingRecord{}, model.LendingEvent{}, errs.ErrAlreadyBorrowed)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"item already borrowed"}`,
		},
		{
			name: "err. invalid duration",
			body: `{"borrowerId":7,"duration":"5 fortnights"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Borrow(context.Background(), 1, 7, "5 fortnights").
					Return(model.LendingRecord{}, model.LendingEvent{}, errs.ErrInvalidDuration)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid duration format"}`,
		},
		{
			name:         "err. missing duration",
			body:         `{"borrowerId":7}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			tt.mockBehavior(svc)
			enq := &fakeEnqueuer{}
			h := handler.New(svc, enq, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/items/:id/borrow", h.Borrow)

			r := httptest.NewRequest(http.MethodPost, "/items/1/borrow", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
			}
			require.Len(t, enq.events, tt.wantEvents)
			if tt.wantEvents > 0 {
				require.Equal(t, []string{kafka.LendingTopic}, enq.topics)
				require.Equal(t, event, enq.events[0])
			}
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	borrowDate := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	returnDate := borrowDate.AddDate(0, 0, 3)
	receipt := model.ReturnReceipt{
		Record: model.LendingRecord{
			RecordUid:          "6d6f522f-34a0-4b70-9b9c-c4c0a534c2f8",
			ItemID:             1,
			BorrowerID:         9,
			BorrowDate:         borrowDate,
			ExpectedReturnDate: borrowDate.AddDate(0, 0, 1),
			ActualReturnDate:   &returnDate,
		},
		OverdueDays: 2,
		Fine:        20.0,
	}
	event := model.LendingEvent{
		EventType:   model.EventItemReturned,
		RecordUid:   receipt.Record.RecordUid,
		ItemID:      1,
		BorrowerID:  9,
		OverdueDays: 2,
		Fine:        20.0,
		OccurredAt:  returnDate,
	}

	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
		wantEvents   int
	}{
		{
			name:   "ok. late",
			target: "/items/1/return",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Return(context.Background(), 1).
					Return(receipt, event, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"record":{"recordUid":"6d6f522f-34a0-4b70-9b9c-c4c0a534c2f8","itemId":1,"borrowerId":9,"borrowDate":"2024-03-01T10:00:00Z","expectedReturnDate":"2024-03-02T10:00:00Z","actualReturnDate":"2024-03-04T10:00:00Z"},"overdueDays":2,"fine":20}`,
			wantEvents:   1,
		},
		{
			name:   "err. not borrowed",
			target: "/items/1/return",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Return(context.Background(), 1).
					Return(model.ReturnReceipt{}, model.LendingEvent{}, errs.ErrNotReturnable)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"item was not borrowed"}`,
		},
		{
			name:         "err. bad id",
			target:       "/items/abc/return",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"id is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			tt.mockBehavior(svc)
			enq := &fakeEnqueuer{}
			h := handler.New(svc, enq, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/items/:id/return", h.Return)

			r := httptest.NewRequest(http.MethodPost, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
			require.Len(t, enq.events, tt.wantEvents)
		})
	}
}

func TestHandler_AddItem(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok. book",
			body: `{"id":1,"kind":"book","title":"Dune","author":"Frank Herbert","pageCount":412}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					AddItem(context.Background(), model.Item{
						ID: 1, Kind: model.KindBook, Title: "Dune", Author: "Frank Herbert", PageCount: 412,
					}).
					Return(model.Item{
						ID: 1, Kind: model.KindBook, Title: "Dune", Author: "Frank Herbert", PageCount: 412, Available: true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"kind":"BOOK","title":"Dune","author":"Frank Herbert","available":true,"pageCount":412}`,
		},
		{
			name: "err. duplicate id",
			body: `{"id":1,"kind":"AUDIO","title":"Dune","playbackMinutes":1266}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					AddItem(context.Background(), model.Item{
						ID: 1, Kind: model.KindAudio, Title: "Dune", PlaybackMinutes: 1266,
					}).
					Return(model.Item{}, errs.ErrDuplicateID)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"item with this id already exists"}`,
		},
		{
			name:         "err. unknown kind",
			body:         `{"id":2,"kind":"vinyl","title":"Dune"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"unknown kind \"vinyl\""}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			tt.mockBehavior(svc)
			h := handler.New(svc, nil, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/items", h.AddItem)

			r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestHandler_ListItems(t *testing.T) {
	t.Parallel()
	items := []model.Item{
		{ID: 1, Kind: model.KindBook, Title: "Dune", Author: "Frank Herbert", Available: true, PageCount: 412},
	}

	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "all",
			target: "/items",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().Items(context.Background()).Return(items, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"kind":"BOOK","title":"Dune","author":"Frank Herbert","available":true,"pageCount":412}]`,
		},
		{
			name:   "by kind",
			target: "/items?kind=book",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().SearchByKind(context.Background(), "book").Return(items, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"kind":"BOOK","title":"Dune","author":"Frank Herbert","available":true,"pageCount":412}]`,
		},
		{
			name:   "by title. no match",
			target: "/items?title=solaris",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().SearchByTitle(context.Background(), "solaris").Return([]model.Item{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			tt.mockBehavior(svc)
			h := handler.New(svc, nil, zap.NewExample().Named("test"))

			e := echo.New()
			e.GET("/items", h.ListItems)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestHandler_Fines(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	svc.EXPECT().Fines(context.Background()).Return(map[int]float64{9: 20}, nil)
	h := handler.New(svc, nil, zap.NewExample().Named("test"))

	e := echo.New()
	e.GET("/fines", h.Fines)

	r := httptest.NewRequest(http.MethodGet, "/fines", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"9":20}`, strings.TrimSpace(w.Body.String()))
}

func TestHandler_EnqueueFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	svc.EXPECT().
		Return(context.Background(), 1).
		Return(model.ReturnReceipt{}, model.LendingEvent{EventType: model.EventItemReturned}, nil)
	h := handler.New(svc, failingEnqueuer{}, zap.NewExample().Named("test"))

	e := echo.New()
	e.POST("/items/:id/return", h.Return)

	r := httptest.NewRequest(http.MethodPost, "/items/1/return", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

type failingEnqueuer struct{}

func (failingEnqueuer) Enqueue(string, any) error { return errors.New("broker down") }
