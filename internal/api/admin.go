package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	model "github.com/noorbagus/louva-app-sub000/internal/models"
	service "github.com/noorbagus/louva-app-sub000/internal/services"
)

type VerifyQRRequest struct {
	QRData string `json:"qrData"`
}

type VerifyQRResponse struct {
	Customer       CustomerResponse    `json:"customer"`
	ActiveMissions []model.UserMission `json:"activeMissions"`
}

// Проверка QR на кассе: клиент и его активные миссии
func (h *LoyaltyHandler) VerifyQRHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	verify := VerifyQRRequest{}
	err = json.Unmarshal(body, &verify)
	if err != nil || verify.QRData == "" {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	customer, missions, err := h.serv.VerifyQR(req.Context(), verify.QRData)
	if err != nil {
		h.Error(w, "VerifyQRHandler", err)
		return
	}
	h.JSON(w, "VerifyQRHandler", VerifyQRResponse{customerResponse(customer), missions})
}

// Проведение чека
func (h *LoyaltyHandler) CheckoutHandler(w http.ResponseWriter, req *http.Request) {
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
	result, err := h.serv.Checkout(req.Context(), checkout)
	if err != nil {
		h.Error(w, "CheckoutHandler", err)
		return
	}
	h.JSON(w, "CheckoutHandler", result)
}

type UseVoucherRequest struct {
	VoucherCode string `json:"voucherCode"`
}

// Списание ваучера при выдаче награды
func (h *LoyaltyHandler) UseVoucherHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	use := UseVoucherRequest{}
	err = json.Unmarshal(body, &use)
	if err != nil || use.VoucherCode == "" {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	redemption, err := h.db.UseVoucher(req.Context(), use.VoucherCode, time.Now())
	if err != nil {
		h.Error(w, "UseVoucherHandler", err)
		return
	}
	h.JSON(w, "UseVoucherHandler", redemption)
}

func (h *LoyaltyHandler) ListCustomersHandler(w http.ResponseWriter, req *http.Request) {
	customers, err := h.db.ListCustomers(req.Context())
	if err != nil {
		h.Error(w, "ListCustomersHandler", err)
		return
	}
	response := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		response = append(response, customerResponse(c))
	}
	h.JSON(w, "ListCustomersHandler", response)
}

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *LoyaltyHandler) CreateCustomerHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	create := CreateCustomerRequest{}
	err = json.Unmarshal(body, &create)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	customer, err := h.serv.CreateCustomer(req.Context(), model.Customer{
		Name:  create.Name,
		Phone: create.Phone,
		Email: create.Email,
	})
	if err != nil {
		h.Error(w, "CreateCustomerHandler", err)
		return
	}
	h.JSON(w, "CreateCustomerHandler", customerResponse(customer))
}

// Сводка за период
func (h *LoyaltyHandler) DashboardHandler(w http.ResponseWriter, req *http.Request) {
	from, to, err := period(req)
	if err != nil {
		h.Error(w, "DashboardHandler", err)
		return
	}
	dashboard, err := h.serv.GetDashboard(req.Context(), from, to)
	if err != nil {
		h.Error(w, "DashboardHandler", err)
		return
	}
	h.JSON(w, "DashboardHandler", dashboard)
}

type Report struct {
	From              time.Time         `json:"from"`
	To                time.Time         `json:"to"`
	Summary           service.Dashboard `json:"summary"`
	PointsPerCustomer float64           `json:"pointsPerCustomer"`
}

// Отчет за период: агрегаты и средние баллы на клиента
func (h *LoyaltyHandler) ReportHandler(w http.ResponseWriter, req *http.Request) {
	from, to, err := period(req)
	if err != nil {
		h.Error(w, "ReportHandler", err)
		return
	}
	summary, err := h.serv.GetDashboard(req.Context(), from, to)
	if err != nil {
		h.Error(w, "ReportHandler", err)
		return
	}
	report := Report{From: from, To: to, Summary: summary}
	if summary.Customers > 0 {
		report.PointsPerCustomer = float64(summary.PointsIssued) / float64(summary.Customers)
	}
	h.JSON(w, "ReportHandler", report)
}

func (h *LoyaltyHandler) GetMembershipRulesHandler(w http.ResponseWriter, req *http.Request) {
	rules, err := h.rules.GetRules(req.Context())
	if err != nil {
		h.Error(w, "GetMembershipRulesHandler", err)
		return
	}
	h.JSON(w, "GetMembershipRulesHandler", rules)
}

func (h *LoyaltyHandler) SaveMembershipRulesHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	rules := model.MembershipRules{}
	err = json.Unmarshal(body, &rules)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	err = h.rules.SaveRules(req.Context(), rules)
	if err != nil {
		h.Error(w, "SaveMembershipRulesHandler", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type SavedResponse struct {
	ID string `json:"id"`
}

func (h *LoyaltyHandler) SaveMissionHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	mission := model.Mission{}
	err = json.Unmarshal(body, &mission)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	if mission.Name == "" || mission.BonusPoints <= 0 {
		http.Error(w, "name and bonusPoints are required", http.StatusBadRequest)
		return
	}
	id, err := h.db.SaveMission(req.Context(), mission)
	if err != nil {
		h.Error(w, "SaveMissionHandler", err)
		return
	}
	h.JSON(w, "SaveMissionHandler", SavedResponse{id.String()})
}

func (h *LoyaltyHandler) SaveRewardHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	reward := model.Reward{}
	err = json.Unmarshal(body, &reward)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	if reward.Name == "" || reward.PointsRequired <= 0 {
		http.Error(w, "name and pointsRequired are required", http.StatusBadRequest)
		return
	}
	id, err := h.db.SaveReward(req.Context(), reward)
	if err != nil {
		h.Error(w, "SaveRewardHandler", err)
		return
	}
	h.JSON(w, "SaveRewardHandler", SavedResponse{id.String()})
}
