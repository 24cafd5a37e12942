package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/dto/response"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Stubs embed the interface so unused methods panic if reached.

type stubTicketService struct {
	usecase.TicketService
	issueFn    func(ctx context.Context, req *request.IssueTicketRequest) (*response.TicketResponse, error)
	checkInFn  func(ctx context.Context, req *request.CheckInRequest) (*response.CheckInResponse, error)
	validateFn func(ctx context.Context, qrCode string) *response.ValidateTicketResponse
	qrImageFn  func(ctx context.Context, qrCode string) ([]byte, error)
}

func (s *stubTicketService) Issue(ctx context.Context, req *request.IssueTicketRequest) (*response.TicketResponse, error) {
	return s.issueFn(ctx, req)
}

func (s *stubTicketService) CheckIn(ctx context.Context, req *request.CheckInRequest) (*response.CheckInResponse, error) {
	return s.checkInFn(ctx, req)
}

func (s *stubTicketService) Validate(ctx context.Context, qrCode string) *response.ValidateTicketResponse {
	return s.validateFn(ctx, qrCode)
}

func (s *stubTicketService) QRImage(ctx context.Context, qrCode string) ([]byte, error) {
	return s.qrImageFn(ctx, qrCode)
}

type stubRentalService struct {
	usecase.RentalService
	quoteFn        func(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)
	createRentalFn func(ctx context.Context, req *request.CreateRentalRequest) (*response.RentalResponse, error)
	updateStatusFn func(ctx context.Context, rentalID, status string) (*response.RentalResponse, error)
}

func (s *stubRentalService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	return s.quoteFn(ctx, req)
}

func (s *stubRentalService) CreateRental(ctx context.Context, req *request.CreateRentalRequest) (*response.RentalResponse, error) {
	return s.createRentalFn(ctx, req)
}

func (s *stubRentalService) UpdateStatus(ctx context.Context, rentalID, status string) (*response.RentalResponse, error) {
	return s.updateStatusFn(ctx, rentalID, status)
}

type stubUserService struct {
	usecase.UserService
	getUserFn func(ctx context.Context, userID string) (*response.UserResponse, error)
}

func (s *stubUserService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	return s.getUserFn(ctx, userID)
}

type stubAuthService struct {
	usecase.AuthService
	loginFn func(ctx context.Context, req *request.LoginRequest, meta usecase.SessionMeta) (*response.AuthResponse, error)
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest, meta usecase.SessionMeta) (*response.AuthResponse, error) {
	return s.loginFn(ctx, req, meta)
}

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func serve(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func ticketRouter(svc usecase.TicketService) http.Handler {
	h := NewTicketHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/tickets", h.Issue)
	r.Post("/tickets/check-in", h.CheckIn)
	r.Get("/tickets/validate/{code}", h.Validate)
	r.Get("/tickets/qr/{code}.png", h.QRImage)
	return r
}

func TestTicketHandler_CheckInErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown code", fmt.Errorf("%w: ticket not found", usecase.ErrNotFound), http.StatusNotFound},
		{"already used", usecase.ErrTicketAlreadyUsed, http.StatusBadRequest},
		{"expired", usecase.ErrTicketExpired, http.StatusBadRequest},
		{"database down", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTicketService{
				checkInFn: func(context.Context, *request.CheckInRequest) (*response.CheckInResponse, error) {
					return nil, tt.err
				},
			}

			rec, env := serve(t, ticketRouter(svc), http.MethodPost, "/tickets/check-in", `{"qr_code":"PH-x"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Status)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestTicketHandler_CheckInSuccess(t *testing.T) {
	at := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	svc := &stubTicketService{
		checkInFn: func(_ context.Context, req *request.CheckInRequest) (*response.CheckInResponse, error) {
			assert.Equal(t, "PH-abc", req.QRCode)
			return &response.CheckInResponse{Success: true, Message: "Check-in successful", TicketID: "t1", CheckInTime: at}, nil
		},
	}

	rec, env := serve(t, ticketRouter(svc), http.MethodPost, "/tickets/check-in", `{"qr_code":"PH-abc"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)

	var data response.CheckInResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Success)
	assert.Equal(t, at, data.CheckInTime)
}

func TestTicketHandler_IssueValidation(t *testing.T) {
	svc := &stubTicketService{
		issueFn: func(context.Context, *request.IssueTicketRequest) (*response.TicketResponse, error) {
			t.Fatal("service must not be reached")
			return nil, nil
		},
	}

	rec, env := serve(t, ticketRouter(svc), http.MethodPost, "/tickets", `{"booking_id":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.NotEmpty(t, env.Errors)

	rec, _ = serve(t, ticketRouter(svc), http.MethodPost, "/tickets", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTicketHandler_ValidateAlwaysOK(t *testing.T) {
	svc := &stubTicketService{
		validateFn: func(_ context.Context, code string) *response.ValidateTicketResponse {
			assert.Equal(t, "PH-none", code)
			return &response.ValidateTicketResponse{Valid: false, Message: "Ticket not found"}
		},
	}

	rec, env := serve(t, ticketRouter(svc), http.MethodGet, "/tickets/validate/PH-none", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ticket not found", env.Message)
}

func TestTicketHandler_QRImage(t *testing.T) {
	svc := &stubTicketService{
		qrImageFn: func(_ context.Context, code string) ([]byte, error) {
			assert.Equal(t, "PH-123-ABCDEF01", code)
			return []byte("\x89PNG-bytes"), nil
		},
	}

	rec, _ := serve(t, ticketRouter(svc), http.MethodGet, "/tickets/qr/PH-123-ABCDEF01.png", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG-bytes", rec.Body.String())
}

func rentalRouter(svc usecase.RentalService) http.Handler {
	h := NewRentalHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/rentals/quote", h.Quote)
	r.Post("/rentals", h.CreateRental)
	r.Put("/rentals/{id}/status", h.UpdateStatus)
	return r
}

func TestRentalHandler_InsufficientStockMessage(t *testing.T) {
	svc := &stubRentalService{
		createRentalFn: func(context.Context, *request.CreateRentalRequest) (*response.RentalResponse, error) {
			return nil, usecase.ErrInsufficientStock
		},
	}

	body := fmt.Sprintf(`{"equipment_id":%q,"customer_name":"Budi","customer_phone":"0812","rental_date":"2026-01-20","return_date":"2026-01-22","quantity":9}`,
		uuid.NewString())
	rec, env := serve(t, rentalRouter(svc), http.MethodPost, "/rentals", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Not enough equipment available", env.Message)
}

func TestRentalHandler_CreateRejectsMalformedDate(t *testing.T) {
	svc := &stubRentalService{}

	body := fmt.Sprintf(`{"equipment_id":%q,"customer_name":"Budi","customer_phone":"0812","rental_date":"20/01/2026","return_date":"2026-01-22","quantity":1}`,
		uuid.NewString())
	rec, env := serve(t, rentalRouter(svc), http.MethodPost, "/rentals", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "rental_date")
}

func TestRentalHandler_QuoteQuery(t *testing.T) {
	equipmentID := uuid.NewString()
	svc := &stubRentalService{
		quoteFn: func(_ context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
			assert.Equal(t, equipmentID, req.EquipmentID)
			assert.Equal(t, 2, req.Quantity)
			return &response.QuoteResponse{EquipmentID: equipmentID, Days: 2, Quantity: 2, TotalPrice: 400000}, nil
		},
	}

	target := fmt.Sprintf("/rentals/quote?equipment_id=%s&rental_date=2026-01-20&return_date=2026-01-22&quantity=2", equipmentID)
	rec, env := serve(t, rentalRouter(svc), http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var quote response.QuoteResponse
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.Equal(t, float64(400000), quote.TotalPrice)
}

func TestRentalHandler_UpdateStatusSources(t *testing.T) {
	var got []string
	svc := &stubRentalService{
		updateStatusFn: func(_ context.Context, id, status string) (*response.RentalResponse, error) {
			got = append(got, status)
			if status == "returned" {
				return nil, usecase.ErrInvalidTransition
			}
			return &response.RentalResponse{ID: id, Status: "active"}, nil
		},
	}
	router := rentalRouter(svc)

	rec, _ := serve(t, router, http.MethodPut, "/rentals/r1/status?status=active", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, router, http.MethodPut, "/rentals/r1/status", `{"status":"returned"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, router, http.MethodPut, "/rentals/r1/status", `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, []string{"active", "returned"}, got)
}

func TestAuthHandler_LoginErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", usecase.ErrInactiveAccount, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{
				loginFn: func(context.Context, *request.LoginRequest, usecase.SessionMeta) (*response.AuthResponse, error) {
					return nil, tt.err
				},
			}, &stubUserService{}, zap.NewNop())

			rec, env := serve(t, http.HandlerFunc(h.Login), http.MethodPost, "/users/login", `{"username":"andi","password":"x"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Status)
		})
	}
}

func TestAuthHandler_MeUsesSessionUser(t *testing.T) {
	userID := uuid.New()
	h := NewAuthHandler(&stubAuthService{}, &stubUserService{
		getUserFn: func(_ context.Context, id string) (*response.UserResponse, error) {
			assert.Equal(t, userID.String(), id)
			return &response.UserResponse{ID: id, Username: "andi"}, nil
		},
	}, zap.NewNop())

	rec, _ := serve(t, http.HandlerFunc(h.Me), http.MethodGet, "/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "visitor"))
	out := httptest.NewRecorder()
	h.Me(out, req)
	assert.Equal(t, http.StatusOK, out.Code)
}
