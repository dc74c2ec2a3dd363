package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	interf "github.com/noorbagus/louva-app-sub000/internal/interfaces"
	model "github.com/noorbagus/louva-app-sub000/internal/models"
	service "github.com/noorbagus/louva-app-sub000/internal/services"
)

type LoyaltyHandler struct {
	router *mux.Router
	serv   *service.LoyaltyService
	db     interf.LoyaltyStorage
	rules  interf.RuleStorage
	logger *zap.Logger
}

func NewHandler(serv *service.LoyaltyService, db interf.LoyaltyStorage, rules interf.RuleStorage, logger *zap.Logger) *LoyaltyHandler {
	router := mux.NewRouter()
	handler := &LoyaltyHandler{router, serv, db, rules, logger}

	router.Use(MiddlewareLog())
	router.Handle("/metrics", promhttp.Handler())

	// клиентский контур, принципал из заголовка
	c := router.PathPrefix("/api").Subrouter()
	c.Use(handler.MiddlewareCustomer)
	c.HandleFunc("/profile", handler.GetProfileHandler).Methods(http.MethodGet)
	c.HandleFunc("/profile", handler.UpdateProfileHandler).Methods(http.MethodPut)
	c.HandleFunc("/points", handler.GetPointsHandler).Methods(http.MethodGet)
	c.HandleFunc("/points/history", handler.GetHistoryHandler).Methods(http.MethodGet)
	c.HandleFunc("/services", handler.GetServicesHandler).Methods(http.MethodGet)
	c.HandleFunc("/rewards", handler.GetRewardsHandler).Methods(http.MethodGet)
	c.HandleFunc("/rewards/{id}/redeem", handler.RedeemHandler).Methods(http.MethodPost)
	c.HandleFunc("/redemptions", handler.GetRedemptionsHandler).Methods(http.MethodGet)
	c.HandleFunc("/transactions", handler.GetTransactionsHandler).Methods(http.MethodGet)
	c.HandleFunc("/transactions", handler.SelfCheckoutHandler).Methods(http.MethodPost)
	c.HandleFunc("/qr", handler.GetQRHandler).Methods(http.MethodGet)
	c.HandleFunc("/missions", handler.GetMissionsHandler).Methods(http.MethodGet)
	c.HandleFunc("/missions/{id}/activate", handler.ActivateMissionHandler).Methods(http.MethodPost)

	// контур кассы и админки
	a := router.PathPrefix("/admin").Subrouter()
	a.Use(handler.MiddlewareAdmin)
	a.HandleFunc("/qr/verify", handler.VerifyQRHandler).Methods(http.MethodPost)
	a.HandleFunc("/transactions", handler.CheckoutHandler).Methods(http.MethodPost)
	a.HandleFunc("/vouchers/use", handler.UseVoucherHandler).Methods(http.MethodPost)
	a.HandleFunc("/customers", handler.ListCustomersHandler).Methods(http.MethodGet)
	a.HandleFunc("/customers", handler.CreateCustomerHandler).Methods(http.MethodPost)
	a.HandleFunc("/dashboard", handler.DashboardHandler).Methods(http.MethodGet)
	a.HandleFunc("/reports", handler.ReportHandler).Methods(http.MethodGet)
	a.HandleFunc("/membership-rules", handler.GetMembershipRulesHandler).Methods(http.MethodGet)
	a.HandleFunc("/membership-rules", handler.SaveMembershipRulesHandler).Methods(http.MethodPut)
	a.HandleFunc("/missions", handler.SaveMissionHandler).Methods(http.MethodPost)
	a.HandleFunc("/rewards", handler.SaveRewardHandler).Methods(http.MethodPost)

	return handler
}

func (h *LoyaltyHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *LoyaltyHandler) Log(msg string, handler string, err error) {
	h.logger.Error(msg,
		zap.String("handler", handler),
		zap.Error(err),
	)
}

// Код ответа по таксономии ошибок сервиса
func (h *LoyaltyHandler) Error(w http.ResponseWriter, handler string, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrInsufficientPoints):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrMissionAlreadyActivated):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrQRExpired):
		http.Error(w, err.Error(), http.StatusGone)
	default:
		h.Log("Request failed", handler, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *LoyaltyHandler) JSON(w http.ResponseWriter, handler string, payload any) {
	j, err := json.Marshal(payload)
	if err != nil {
		h.Log("Marshal", handler, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

type CustomerResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Phone       string                `json:"phone"`
	Email       string                `json:"email"`
	TotalPoints int64                 `json:"totalPoints"`
	Level       model.MembershipLevel `json:"level"`
	TotalVisits int                   `json:"totalVisits"`
	TotalSpent  float64               `json:"totalSpent"`
	QRCode      string                `json:"qrCode,omitempty"`
}

func customerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{c.UUID, c.Name, c.Phone, c.Email, c.TotalPoints, c.Level, c.TotalVisits, c.TotalSpent, c.QRCode}
}

// Профиль клиента
func (h *LoyaltyHandler) GetProfileHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	customer, err := h.db.GetCustomer(req.Context(), principal.Customer)
	if err != nil {
		h.Error(w, "GetProfileHandler", err)
		return
	}
	h.JSON(w, "GetProfileHandler", customerResponse(customer))
}

type ProfileUpdate struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *LoyaltyHandler) UpdateProfileHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	upd := ProfileUpdate{}
	err = json.Unmarshal(body, &upd)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	// те же обязательные поля, что при создании клиента
	if upd.Name == "" || upd.Phone == "" {
		h.Error(w, "UpdateProfileHandler", fmt.Errorf("name and phone are required: %w", model.ErrValidation))
		return
	}
	err = h.db.UpdateProfile(req.Context(), principal.Customer, upd.Name, upd.Phone, upd.Email)
	if err != nil {
		h.Error(w, "UpdateProfileHandler", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type PointsResponse struct {
	Points int64                 `json:"points"`
	Level  model.MembershipLevel `json:"level"`
}

// Баланс: баллы из кэша, уровень из профиля
func (h *LoyaltyHandler) GetPointsHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	customer, err := h.db.GetCustomer(req.Context(), principal.Customer)
	if err != nil {
		h.Error(w, "GetPointsHandler", err)
		return
	}
	points, err := h.serv.GetBalance(req.Context(), principal.Customer)
	if err != nil {
		h.Error(w, "GetPointsHandler", err)
		return
	}
	h.JSON(w, "GetPointsHandler", PointsResponse{points, customer.Level})
}

func (h *LoyaltyHandler) GetHistoryHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	history, err := h.db.GetHistory(req.Context(), principal.Customer)
	if err != nil {
		h.Error(w, "GetHistoryHandler", err)
		return
	}
	h.JSON(w, "GetHistoryHandler", history)
}

func (h *LoyaltyHandler) GetServicesHandler(w http.ResponseWriter, req *http.Request) {
	services, err := h.db.ListServices(req.Context())
	if err != nil {
		h.Error(w, "GetServicesHandler", err)
		return
	}
	h.JSON(w, "GetServicesHandler", services)
}

func (h *LoyaltyHandler) GetRewardsHandler(w http.ResponseWriter, req *http.Request) {
	rewards, err := h.db.ListRewards(req.Context())
	if err != nil {
		h.Error(w, "GetRewardsHandler", err)
		return
	}
	h.JSON(w, "GetRewardsHandler", rewards)
}

type RedeemResponse struct {
	VoucherCode string    `json:"voucherCode"`
	ExpiryDate  time.Time `json:"expiryDate"`
}

// Погашение награды
func (h *LoyaltyHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	vars := mux.Vars(req)
	rewardID, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "Reward not found", http.StatusNotFound)
		return
	}
	redemption, err := h.serv.Redeem(req.Context(), principal.Customer, rewardID)
	if err != nil {
		h.Error(w, "RedeemHandler", err)
		return
	}
	h.JSON(w, "RedeemHandler", RedeemResponse{redemption.VoucherCode, redemption.ExpiryDate})
}

func (h *LoyaltyHandler) GetRedemptionsHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	redemptions, err := h.db.GetRedemptions(req.Context(), principal.Customer)
	if err != nil {
		h.Error(w, "GetRedemptionsHandler", err)
		return
	}
	h.JSON(w, "GetRedemptionsHandler", redemptions)
}

// Транзакции клиента за период, по умолчанию последние 30 дней
func (h *LoyaltyHandler) GetTransactionsHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	from, to, err := period(req)
	if err != nil {
		h.Error(w, "GetTransactionsHandler", err)
		return
	}
	transactions, err := h.db.GetTransactions(req.Context(), principal.Customer, from, to)
	if err != nil {
		h.Error(w, "GetTransactionsHandler", err)
		return
	}
	h.JSON(w, "GetTransactionsHandler", transactions)
}

type QRResponse struct {
	Token string `json:"token"`
}

// Свежий QR-токен для показа на кассе
func (h *LoyaltyHandler) GetQRHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	token, err := h.serv.GenerateQR(req.Context(), principal.Customer)
	if err != nil {
		h.Error(w, "GetQRHandler", err)
		return
	}
	h.JSON(w, "GetQRHandler", QRResponse{token})
}

func (h *LoyaltyHandler) GetMissionsHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	missions, err := h.serv.MissionsFor(req.Context(), principal.Customer)
	if err != nil {
		h.Error(w, "GetMissionsHandler", err)
		return
	}
	h.JSON(w, "GetMissionsHandler", missions)
}

func (h *LoyaltyHandler) ActivateMissionHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	vars := mux.Vars(req)
	missionID, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "Mission not found", http.StatusNotFound)
		return
	}
	instance, err := h.serv.ActivateMission(req.Context(), principal.Customer, missionID)
	if err != nil {
		h.Error(w, "ActivateMissionHandler", err)
		return
	}
	h.JSON(w, "ActivateMissionHandler", instance)
}

// Самостоятельный чек клиента: принципал перекрывает customerId из тела
func (h *LoyaltyHandler) SelfCheckoutHandler(w http.ResponseWriter, req *http.Request) {
	principal := Principal(req)
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	checkout := service.CheckoutRequest{}
	err = json.Unmarshal(body, &checkout)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	checkout.CustomerID = principal.Customer.String()
	result, err := h.serv.Checkout(req.Context(), checkout)
	if err != nil {
		h.Error(w, "SelfCheckoutHandler", err)
		return
	}
	h.JSON(w, "SelfCheckoutHandler", result)
}

// Период из query-параметров from/to (RFC3339)
func period(req *http.Request) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.Add(-30 * 24 * time.Hour)
	var err error
	if v := req.URL.Query().Get("from"); v != "" {
		from, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from is malformed: %w", model.ErrValidation)
		}
	}
	if v := req.URL.Query().Get("to"); v != "" {
		to, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to is malformed: %w", model.ErrValidation)
		}
	}
	return from, to, nil
}
