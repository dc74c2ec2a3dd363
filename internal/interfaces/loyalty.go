package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	model "github.com/noorbagus/louva-app-sub000/internal/models"
)

//go:generate mockgen -destination=./../services/mock_storage_test.go -package=services . LoyaltyStorage,CacheStorage,RuleStorage

type LoyaltyStorage interface {
	// клиенты
	GetCustomer(ctx context.Context, id uuid.UUID) (model.Customer, error)
	GetCustomerByStaticQR(ctx context.Context, code string) (model.Customer, error)
	GetCustomerByLegacyID(ctx context.Context, id string) (model.Customer, error)
	CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name string, phone string, email string) error
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CountCustomers(ctx context.Context) (count int64, err error)

	// услуги
	ListServices(ctx context.Context) ([]model.Service, error)
	GetServices(ctx context.Context, ids []uuid.UUID) ([]model.Service, error)

	// транзакции и история баллов
	ApplyAccrual(ctx context.Context, tnx model.Transaction, rules model.MembershipRules, completedMission *uuid.UUID, reason string) (model.Customer, error)
	GetTransactions(ctx context.Context, customer uuid.UUID, from time.Time, to time.Time) ([]model.Transaction, error)
	SumPointsIssued(ctx context.Context, from time.Time, to time.Time) (points int64, err error)
	AddHistory(ctx context.Context, entry model.PointsHistoryEntry) error
	GetHistory(ctx context.Context, customer uuid.UUID) ([]model.PointsHistoryEntry, error)

	// награды и погашения
	ListRewards(ctx context.Context) ([]model.Reward, error)
	GetReward(ctx context.Context, id uuid.UUID) (model.Reward, error)
	SaveReward(ctx context.Context, reward model.Reward) (uuid.UUID, error)
	RedeemReward(ctx context.Context, customer uuid.UUID, reward model.Reward, code string, now time.Time) (model.RewardRedemption, model.Customer, error)
	GetRedemptions(ctx context.Context, customer uuid.UUID) ([]model.RewardRedemption, error)
	UseVoucher(ctx context.Context, code string, now time.Time) (model.RewardRedemption, error)
	CountRedemptions(ctx context.Context, from time.Time, to time.Time) (count int64, err error)
	ExpireRedemptions(ctx context.Context, now time.Time) (count int64, err error)

	// миссии
	ListMissions(ctx context.Context) ([]model.Mission, error)
	GetMission(ctx context.Context, id uuid.UUID) (model.Mission, error)
	SaveMission(ctx context.Context, mission model.Mission) (uuid.UUID, error)
	GetUserMissions(ctx context.Context, customer uuid.UUID) ([]model.UserMission, error)
	GetUserMission(ctx context.Context, customer uuid.UUID, mission uuid.UUID) (model.UserMission, error)
	ActivateMission(ctx context.Context, instance model.UserMission) error
	CountCompletedMissions(ctx context.Context, from time.Time, to time.Time) (count int64, err error)
	ExpireUserMissions(ctx context.Context, now time.Time) (count int64, err error)
}

type CacheStorage interface {
	GetBalance(ctx context.Context, customer string) (points int64, err error)
	SetBalance(ctx context.Context, customer string, points int64) (err error)
	InvalidateBalance(ctx context.Context, customer string) error
}

// Хранилище правил членства (пороги уровней и множители)
type RuleStorage interface {
	GetRules(ctx context.Context) (model.MembershipRules, error)
	SaveRules(ctx context.Context, rules model.MembershipRules) error
}
