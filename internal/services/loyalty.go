package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	interf "github.com/noorbagus/louva-app-sub000/internal/interfaces"
	"github.com/noorbagus/louva-app-sub000/internal/ledger"
	model "github.com/noorbagus/louva-app-sub000/internal/models"
)

const voucherAttempts = 10

type LoyaltyService struct {
	logger *zap.Logger
	db     interf.LoyaltyStorage
	cache  interf.CacheStorage
	rules  interf.RuleStorage
}

func NewLoyaltyService(logger *zap.Logger, db interf.LoyaltyStorage, cache interf.CacheStorage, rules interf.RuleStorage) (service *LoyaltyService) {
	return &LoyaltyService{logger, db, cache, rules}
}

func (s *LoyaltyService) Log(err error) {
	s.logger.Error(err.Error())
}

// Чек на кассе
type CheckoutRequest struct {
	CustomerID    string    `json:"customerId"`
	ServiceIDs    []string  `json:"serviceIds"`
	ServicePrices []float64 `json:"servicePrices,omitempty"` // переопределение цен каталога, по позициям
	PaymentMethod string    `json:"paymentMethod"`
	MissionID     string    `json:"missionId,omitempty"`
}

type CheckoutResult struct {
	Transaction  uuid.UUID             `json:"transactionId"`
	Earned       int64                 `json:"earned"`
	MissionBonus int64                 `json:"missionBonus"`
	NewBalance   int64                 `json:"newBalance"`
	NewLevel     model.MembershipLevel `json:"newLevel"`
}

// Проведение транзакции: расчет баллов, бонус миссии, атомарное начисление
func (s *LoyaltyService) Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("customerId is required: %w", model.ErrValidation)
	}
	if len(req.ServiceIDs) == 0 {
		return CheckoutResult{}, fmt.Errorf("serviceIds are required: %w", model.ErrValidation)
	}
	if len(req.ServicePrices) != 0 && len(req.ServicePrices) != len(req.ServiceIDs) {
		return CheckoutResult{}, fmt.Errorf("servicePrices must match serviceIds: %w", model.ErrValidation)
	}
	if req.PaymentMethod == "" {
		return CheckoutResult{}, fmt.Errorf("paymentMethod is required: %w", model.ErrValidation)
	}
	serviceIDs := make([]uuid.UUID, len(req.ServiceIDs))
	for i, id := range req.ServiceIDs {
		serviceIDs[i], err = uuid.Parse(id)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("serviceIds[%d] is malformed: %w", i, model.ErrValidation)
		}
	}

	customer, err := s.db.GetCustomer(ctx, customerID)
	if err != nil {
		return CheckoutResult{}, err
	}
	rules, err := s.rules.GetRules(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	services, err := s.db.GetServices(ctx, serviceIDs)
	if err != nil {
		return CheckoutResult{}, err
	}

	// позиции: цена каталога или переопределенная
	byID := make(map[uuid.UUID]model.Service, len(services))
	for _, sv := range services {
		byID[sv.UUID] = sv
	}
	lines := make([]ledger.Line, len(serviceIDs))
	for i, id := range serviceIDs {
		sv := byID[id]
		price := sv.Price
		if len(req.ServicePrices) != 0 {
			price = req.ServicePrices[i]
		}
		if price < 0 {
			return CheckoutResult{}, fmt.Errorf("servicePrices[%d] is negative: %w", i, model.ErrValidation)
		}
		lines[i] = ledger.Line{Service: id, Price: price, Multiplier: sv.PointMultiplier}
	}

	// бонус миссии
	now := time.Now()
	var bonus int64
	var completed *uuid.UUID
	var missionName string
	if req.MissionID != "" {
		missionID, err := uuid.Parse(req.MissionID)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("missionId is malformed: %w", model.ErrValidation)
		}
		mission, err := s.db.GetMission(ctx, missionID)
		if err != nil {
			return CheckoutResult{}, err
		}
		instance, err := s.db.GetUserMission(ctx, customerID, missionID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return CheckoutResult{}, err
		}
		if err == nil && ledger.MissionQualifies(mission, instance, serviceIDs, now) {
			bonus = mission.BonusPoints
			completed = &instance.UUID
			missionName = mission.Name
		}
	}

	res := ledger.ComputeTransaction(customer, lines, bonus, rules)

	reason := fmt.Sprintf("transaction: %d services", len(lines))
	if bonus > 0 {
		reason = fmt.Sprintf("%s, mission bonus: %s", reason, missionName)
	}
	tnx := model.Transaction{
		Customer:      customerID,
		TotalAmount:   res.TotalAmount,
		PointsEarned:  res.Earned,
		MissionBonus:  res.MissionBonus,
		PaymentMethod: req.PaymentMethod,
		Items:         res.Items,
	}
	updated, err := s.db.ApplyAccrual(ctx, tnx, rules, completed, reason)
	if err != nil {
		return CheckoutResult{}, err
	}

	if s.cache != nil {
		err = s.cache.InvalidateBalance(ctx, customerID.String())
		if err != nil {
			s.logger.Error(err.Error())
		}
	}

	return CheckoutResult{
		Transaction:  tnx.UUID,
		Earned:       res.Earned,
		MissionBonus: res.MissionBonus,
		NewBalance:   updated.TotalPoints,
		NewLevel:     updated.Level,
	}, nil
}

// Чек из Kafka (POS-фид)
func (s *LoyaltyService) CheckoutFromJSON(ctx context.Context, payload string) (CheckoutResult, error) {
	req := CheckoutRequest{}
	err := json.Unmarshal([]byte(payload), &req)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("malformed checkout event: %w", model.ErrValidation)
	}
	return s.Checkout(ctx, req)
}

// Погашение награды: проверка баланса и генерация ваучера
// с ограниченным числом попыток на коллизию кода
func (s *LoyaltyService) Redeem(ctx context.Context, customerID uuid.UUID, rewardID uuid.UUID) (model.RewardRedemption, error) {
	reward, err := s.db.GetReward(ctx, rewardID)
	if err != nil {
		return model.RewardRedemption{}, err
	}
	if !reward.Active {
		return model.RewardRedemption{}, fmt.Errorf("reward %w", model.ErrNotFound)
	}

	now := time.Now()
	for attempt := 0; attempt < voucherAttempts; attempt++ {
		code := ledger.VoucherCode()
		redemption, _, err := s.db.RedeemReward(ctx, customerID, reward, code, now)
		if errors.Is(err, model.ErrVoucherCollision) {
			continue
		}
		if err != nil {
			return model.RewardRedemption{}, err
		}

		if s.cache != nil {
			err = s.cache.InvalidateBalance(ctx, customerID.String())
			if err != nil {
				s.logger.Error(err.Error())
			}
		}
		return redemption, nil
	}
	return model.RewardRedemption{}, fmt.Errorf("%d attempts: %w", voucherAttempts, model.ErrVoucherExhausted)
}

// Запрос на погашение из очереди киоска
type RedeemRequest struct {
	CustomerID string `json:"customerId"`
	RewardID   string `json:"rewardId"`
	RequestID  string `json:"requestId"`
}

func (s *LoyaltyService) RedeemFromJSON(ctx context.Context, payload string) (requestID string, voucher string, err error) {
	req := RedeemRequest{}
	err = json.Unmarshal([]byte(payload), &req)
	if err != nil {
		return "", "", fmt.Errorf("malformed redeem request: %w", model.ErrValidation)
	}
	if req.RequestID == "" {
		return "", "", fmt.Errorf("requestId is required: %w", model.ErrValidation)
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return req.RequestID, "", fmt.Errorf("customerId is malformed: %w", model.ErrValidation)
	}
	rewardID, err := uuid.Parse(req.RewardID)
	if err != nil {
		return req.RequestID, "", fmt.Errorf("rewardId is malformed: %w", model.ErrValidation)
	}
	redemption, err := s.Redeem(ctx, customerID, rewardID)
	if err != nil {
		return req.RequestID, "", err
	}
	return req.RequestID, redemption.VoucherCode, nil
}

// Баланс с кэшем
func (s *LoyaltyService) GetBalance(ctx context.Context, customer uuid.UUID) (points int64, err error) {
	if s.cache != nil {
		points, err = s.cache.GetBalance(ctx, customer.String())
		if err == nil {
			return points, nil
		}
	}
	c, err := s.db.GetCustomer(ctx, customer)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.SetBalance(ctx, customer.String(), c.TotalPoints)
	}
	return c.TotalPoints, nil
}

// Свежий QR-токен клиента
func (s *LoyaltyService) GenerateQR(ctx context.Context, customer uuid.UUID) (string, error) {
	c, err := s.db.GetCustomer(ctx, customer)
	if err != nil {
		return "", err
	}
	return ledger.NewQRPayload(c.UUID, time.Now())
}

// Проверка отсканированного QR
// Форматы по порядку: JSON-токен, постоянный код клиента, legacy LOUVA_<id>_<millis>
// Возвращает клиента и его активные миссии для применения бонуса на кассе
func (s *LoyaltyService) VerifyQR(ctx context.Context, scanned string) (model.Customer, []model.UserMission, error) {
	now := time.Now()

	scan, err := ledger.ParseQR(scanned, now)
	if err == nil {
		customer, err := s.db.GetCustomer(ctx, scan.Customer)
		if err != nil {
			return model.Customer{}, nil, err
		}
		missions, err := s.activeMissions(ctx, customer.UUID, now)
		if err != nil {
			return model.Customer{}, nil, err
		}
		return customer, missions, nil
	}
	if errors.Is(err, model.ErrQRExpired) {
		return model.Customer{}, nil, err
	}

	// постоянный персональный код
	customer, err := s.db.GetCustomerByStaticQR(ctx, scanned)
	if err == nil {
		missions, err := s.activeMissions(ctx, customer.UUID, now)
		if err != nil {
			return model.Customer{}, nil, err
		}
		return customer, missions, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Customer{}, nil, err
	}

	// legacy
	legacy, err := ledger.ParseLegacyQR(scanned, now)
	if err != nil {
		if errors.Is(err, model.ErrQRExpired) {
			return model.Customer{}, nil, err
		}
		return model.Customer{}, nil, fmt.Errorf("customer %w", model.ErrNotFound)
	}
	customer, err = s.db.GetCustomerByLegacyID(ctx, legacy.LegacyID)
	if err != nil {
		return model.Customer{}, nil, err
	}
	missions, err := s.activeMissions(ctx, customer.UUID, now)
	if err != nil {
		return model.Customer{}, nil, err
	}
	return customer, missions, nil
}

// Активные и не истекшие миссии клиента
func (s *LoyaltyService) activeMissions(ctx context.Context, customer uuid.UUID, now time.Time) ([]model.UserMission, error) {
	instances, err := s.db.GetUserMissions(ctx, customer)
	if err != nil {
		return nil, err
	}
	active := make([]model.UserMission, 0, len(instances))
	for _, um := range instances {
		if um.Status == model.MissionActive && !ledger.UserMissionExpired(um, now) {
			active = append(active, um)
		}
	}
	return active, nil
}

// Активация миссии: не более одного инстанса на пару (клиент, миссия)
func (s *LoyaltyService) ActivateMission(ctx context.Context, customerID uuid.UUID, missionID uuid.UUID) (model.UserMission, error) {
	mission, err := s.db.GetMission(ctx, missionID)
	if err != nil {
		return model.UserMission{}, err
	}
	if !mission.Active {
		return model.UserMission{}, fmt.Errorf("mission %w", model.ErrNotFound)
	}
	// инстанс в любом статусе блокирует повторную активацию
	_, err = s.db.GetUserMission(ctx, customerID, missionID)
	if err == nil {
		return model.UserMission{}, fmt.Errorf("mission %s: %w", missionID, model.ErrMissionAlreadyActivated)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.UserMission{}, err
	}

	now := time.Now()
	instance := model.UserMission{
		UUID:        uuid.New(),
		Customer:    customerID,
		Mission:     missionID,
		Status:      model.MissionActive,
		ActivatedAt: now,
	}
	if mission.DurationDays > 0 {
		expires := now.Add(time.Duration(mission.DurationDays) * 24 * time.Hour)
		instance.ExpiresAt = &expires
	}
	// гонку двух активаций закрывает констрейнт БД
	err = s.db.ActivateMission(ctx, instance)
	if err != nil {
		return model.UserMission{}, err
	}
	return instance, nil
}

// Миссия со статусом инстанса клиента
type MissionStatus struct {
	Mission  model.Mission      `json:"mission"`
	Instance *model.UserMission `json:"instance,omitempty"`
}

func (s *LoyaltyService) MissionsFor(ctx context.Context, customer uuid.UUID) ([]MissionStatus, error) {
	missions, err := s.db.ListMissions(ctx)
	if err != nil {
		return nil, err
	}
	instances, err := s.db.GetUserMissions(ctx, customer)
	if err != nil {
		return nil, err
	}
	byMission := make(map[uuid.UUID]model.UserMission, len(instances))
	for _, um := range instances {
		byMission[um.Mission] = um
	}
	result := make([]MissionStatus, 0, len(missions))
	for _, m := range missions {
		ms := MissionStatus{Mission: m}
		if um, ok := byMission[m.UUID]; ok {
			um := um
			ms.Instance = &um
		}
		result = append(result, ms)
	}
	return result, nil
}

// Создание клиента, запись в историю - best effort
func (s *LoyaltyService) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	if customer.Name == "" || customer.Phone == "" {
		return model.Customer{}, fmt.Errorf("name and phone are required: %w", model.ErrValidation)
	}
	created, err := s.db.CreateCustomer(ctx, customer)
	if err != nil {
		return model.Customer{}, err
	}
	err = s.db.AddHistory(ctx, model.PointsHistoryEntry{
		Customer:     created.UUID,
		PointsChange: 0,
		BalanceAfter: 0,
		Reason:       "customer created",
	})
	if err != nil {
		s.logger.Error(err.Error())
	}
	return created, nil
}

// Сводка для админки
type Dashboard struct {
	Customers         int64 `json:"customers"`
	PointsIssued      int64 `json:"pointsIssued"`
	Redemptions       int64 `json:"redemptions"`
	CompletedMissions int64 `json:"completedMissions"`
}

// Агрегаты считаются параллельно
func (s *LoyaltyService) GetDashboard(ctx context.Context, from time.Time, to time.Time) (Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Customers, err = s.db.CountCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.PointsIssued, err = s.db.SumPointsIssued(gctx, from, to)
		return err
	})
	g.Go(func() (err error) {
		d.Redemptions, err = s.db.CountRedemptions(gctx, from, to)
		return err
	})
	g.Go(func() (err error) {
		d.CompletedMissions, err = s.db.CountCompletedMissions(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
