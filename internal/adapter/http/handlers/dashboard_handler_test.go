package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcamento_api/internal/adapter/http/handlers/mocks"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(uc usecase.IBudgetRequestUseCase) *gin.Engine {
	h := NewDashboardHandler(uc)
	r := gin.New()
	r.GET("/dashboard/requests", h.ListRequests)
	r.GET("/dashboard/requests/status/:status", h.ListRequestsByStatus)
	r.GET("/dashboard/requests/:id", h.GetRequestByID)
	r.PUT("/dashboard/requests/:id/status", h.UpdateRequestStatus)
	r.GET("/dashboard/stats", h.GetStats)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_ListRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.BudgetRequest{{ID: 2}, {ID: 1}}, nil)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 2 || got[0]["id"] != float64(2) {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("query filter is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().ListByStatus(gomock.Any(), entities.BudgetRequestStatusApproved).Return([]entities.BudgetRequest{{ID: 5, Status: entities.BudgetRequestStatusApproved}}, nil)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests?status=approved", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("path filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().ListByStatus(gomock.Any(), entities.BudgetRequestStatusPending).Return(nil, nil)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests/status/PENDING", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests/status/ARCHIVED", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_GetRequestByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.BudgetRequest{ID: 9, TotalBudget: 1500}, nil)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests/9", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.BudgetRequest{}, usecase.ErrBudgetRequestNotFound)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)

		w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/requests/-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_UpdateRequestStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), int64(4), entities.BudgetRequestStatusApproved, "ok").
			Return(entities.BudgetRequest{ID: 4, Status: entities.BudgetRequestStatusApproved, Notes: "ok"}, nil)

		w := serve(newDashboardRouter(uc), http.MethodPut, "/dashboard/requests/4/status", `{"status":"approved","notes":"ok"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got["status"] != "APPROVED" || got["notes"] != "ok" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)

		w := serve(newDashboardRouter(uc), http.MethodPut, "/dashboard/requests/4/status", `{"notes":"ok"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)

		w := serve(newDashboardRouter(uc), http.MethodPut, "/dashboard/requests/4/status", `{"status":"DONE"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("INVALID_STATUS")) {
			t.Fatalf("expected INVALID_STATUS, got %s", w.Body.String())
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), int64(4), entities.BudgetRequestStatusRejected, "").
			Return(entities.BudgetRequest{}, usecase.ErrBudgetRequestNotFound)

		w := serve(newDashboardRouter(uc), http.MethodPut, "/dashboard/requests/4/status", `{"status":"REJECTED"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBudgetRequestUseCase(ctrl)
	uc.EXPECT().Stats(gomock.Any()).Return(entities.DashboardStats{PendingCount: 2, ApprovedCount: 1, TotalApprovedBudget: 1500.5}, nil)

	w := serve(newDashboardRouter(uc), http.MethodGet, "/dashboard/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["pendingCount"] != float64(2) || got["rejectedCount"] != float64(0) || got["totalApprovedBudget"] != 1500.5 {
		t.Fatalf("unexpected body: %v", got)
	}
}
