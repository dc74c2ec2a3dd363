package models

import (
	"time"

	"github.com/google/uuid"
)

// Уровни членства
type MembershipLevel string

const (
	Bronze MembershipLevel = "bronze"
	Silver MembershipLevel = "silver"
	Gold   MembershipLevel = "gold"
)

// Клиент салона
type Customer struct {
	UUID        uuid.UUID
	Name        string
	Phone       string
	Email       string
	TotalPoints int64           // текущий баланс для списания
	TotalEarned int64           // накопленные баллы за все время, основа для уровня
	Level       MembershipLevel // уровень членства
	TotalVisits int
	TotalSpent  float64
	QRCode      string // постоянный персональный QR
	CreatedAt   time.Time
}

// Услуга салона
type Service struct {
	UUID            uuid.UUID
	Name            string
	Category        string
	Price           float64
	PointMultiplier float64 // >= 1
	Active          bool
}

// Транзакция - неизменяемая запись о покупке
type Transaction struct {
	UUID          uuid.UUID
	Customer      uuid.UUID
	TotalAmount   float64
	PointsEarned  int64
	MissionBonus  int64
	PaymentMethod string
	CreatedAt     time.Time
	Items         []TransactionItem
}

type TransactionItem struct {
	Service uuid.UUID
	Price   float64
	Points  int64
}

// Запись истории баллов - append-only
type PointsHistoryEntry struct {
	UUID         uuid.UUID
	Customer     uuid.UUID
	PointsChange int64 // со знаком
	BalanceAfter int64
	Reason       string
	CreatedAt    time.Time
}

// Награда из каталога
type Reward struct {
	UUID           uuid.UUID
	Name           string
	PointsRequired int64
	Active         bool
}

// Статусы погашения
const (
	RedemptionActive  = "active"
	RedemptionUsed    = "used"
	RedemptionExpired = "expired"
)

// Погашение награды
type RewardRedemption struct {
	UUID        uuid.UUID
	Customer    uuid.UUID
	Reward      uuid.UUID
	PointsUsed  int64
	VoucherCode string // уникальный
	Status      string
	RedeemedAt  time.Time
	ExpiryDate  time.Time // RedeemedAt + 30 дней
}

// Миссия - бонусное задание с окном активации
type Mission struct {
	UUID         uuid.UUID
	Name         string
	Description  string
	BonusPoints  int64
	Service      *uuid.UUID // nil - подходит любая услуга
	DurationDays int        // 0 - без ограничения по сроку
	Active       bool
}

// Статусы миссии клиента
const (
	MissionAvailable = "available"
	MissionActive    = "active"
	MissionCompleted = "completed"
	MissionExpired   = "expired"
)

// Миссия клиента: available -> active -> completed | expired
type UserMission struct {
	UUID        uuid.UUID
	Customer    uuid.UUID
	Mission     uuid.UUID
	Status      string
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil - бессрочная
	CompletedAt *time.Time
}

// Правила членства: пороги уровней и множители начисления
// Редактируются администратором, дефолты задаются при первом чтении
type MembershipRules struct {
	SilverMin        int64   `bson:"silvermin" json:"silverMin"`
	GoldMin          int64   `bson:"goldmin" json:"goldMin"`
	BronzeMultiplier float64 `bson:"bronzemultiplier" json:"bronzeMultiplier"`
	SilverMultiplier float64 `bson:"silvermultiplier" json:"silverMultiplier"`
	GoldMultiplier   float64 `bson:"goldmultiplier" json:"goldMultiplier"`
}

func DefaultMembershipRules() MembershipRules {
	return MembershipRules{
		SilverMin:        500,
		GoldMin:          1000,
		BronzeMultiplier: 1.0,
		SilverMultiplier: 1.2,
		GoldMultiplier:   1.5,
	}
}

// Принципал запроса - заменяет фиксированные демо-идентификаторы источника
type Principal struct {
	Customer uuid.UUID
	Admin    bool
}
