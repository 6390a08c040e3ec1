package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
	"time"

	"estimate_engine/internal/adapter/http/handlers/mocks"
	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPublicRouter(uc usecase.IPublicApprovalUseCase) *gin.Engine {
	h := NewPublicEstimateHandler(uc)
	r := gin.New()
	r.GET("/v1/public/estimates/:token", h.ViewEstimate)
	r.GET("/v1/public/estimates/:token/status", h.EstimateStatus)
	r.POST("/v1/public/estimates/:token/approve", h.ApproveEstimate)
	return r
}

func TestPublicEstimateHandler_ViewEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown token gives a generic 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicApprovalUseCase(ctrl)

		uc.EXPECT().OnView(gomock.Any(), "nope").Return(usecase.PublicEstimateView{}, usecase.ErrEstimateNotFound)

		w := doRequest(newPublicRouter(uc), http.MethodGet, "/v1/public/estimates/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := decode(t, w)
		if body["code"] != "LINK_INVALID" || body["message"] != "This link is invalid or has expired" || body["details"] != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("view omits internal fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicApprovalUseCase(ctrl)

		uc.EXPECT().OnView(gomock.Any(), "tok").Return(usecase.PublicEstimateView{
			ClientName: "Dana", Status: entities.EstimateStatusViewed, TotalAmount: 200,
		}, nil)

		w := doRequest(newPublicRouter(uc), http.MethodGet, "/v1/public/estimates/tok", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		for _, key := range []string{"notes", "organization_id", "version", "public_token", "id"} {
			if _, ok := body[key]; ok {
				t.Fatalf("public view leaked %q: %s", key, w.Body.String())
			}
		}
		if body["status"] != "viewed" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
	})

	t.Run("status read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicApprovalUseCase(ctrl)

		uc.EXPECT().FetchByToken(gomock.Any(), "tok").Return(usecase.PublicEstimateView{Status: entities.EstimateStatusSent}, nil)

		w := doRequest(newPublicRouter(uc), http.MethodGet, "/v1/public/estimates/tok/status", "")
		if w.Code != http.StatusOK || decode(t, w)["status"] != "sent" {
			t.Fatalf("unexpected: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPublicEstimateHandler_ApproveEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicApprovalUseCase(ctrl)

		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().Approve(gomock.Any(), "tok").Return(usecase.ApprovalResult{
			View: usecase.PublicEstimateView{Status: entities.EstimateStatusApproved, ApprovedAt: &at},
		}, nil)

		w := doRequest(newPublicRouter(uc), http.MethodPost, "/v1/public/estimates/tok/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body["already_approved"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("repeat approve succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicApprovalUseCase(ctrl)

		uc.EXPECT().Approve(gomock.Any(), "tok").Return(usecase.ApprovalResult{
			View:            usecase.PublicEstimateView{Status: entities.EstimateStatusApproved},
			AlreadyApproved: true,
		}, nil)

		w := doRequest(newPublicRouter(uc), http.MethodPost, "/v1/public/estimates/tok/approve", "")
		if w.Code != http.StatusOK || decode(t, w)["already_approved"] != true {
			t.Fatalf("unexpected: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejected estimate cannot be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicApprovalUseCase(ctrl)

		uc.EXPECT().Approve(gomock.Any(), "tok").Return(usecase.ApprovalResult{}, entities.ErrInvalidTransition)

		w := doRequest(newPublicRouter(uc), http.MethodPost, "/v1/public/estimates/tok/approve", "")
		if w.Code != http.StatusConflict || decode(t, w)["code"] != "NOT_APPROVABLE" {
			t.Fatalf("unexpected: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("storage failure does not leak", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicApprovalUseCase(ctrl)

		uc.EXPECT().Approve(gomock.Any(), "tok").Return(usecase.ApprovalResult{}, errors.New("dynamodb: request timed out"))

		w := doRequest(newPublicRouter(uc), http.MethodPost, "/v1/public/estimates/tok/approve", "")
		if w.Code != http.StatusInternalServerError || bytes.Contains(w.Body.Bytes(), []byte("dynamodb")) {
			t.Fatalf("unexpected: %d %s", w.Code, w.Body.String())
		}
	})
}
