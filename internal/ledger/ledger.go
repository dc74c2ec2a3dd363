package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	model "github.com/noorbagus/louva-app-sub000/internal/models"
)

// Окно действия одноразового QR
const QRValidity = 5 * time.Minute

// Срок действия ваучера после погашения
const VoucherValidity = 30 * 24 * time.Hour

// Баллы за одну услугу: floor(цена/1000 * множитель услуги)
func ServicePoints(price float64, multiplier float64) int64 {
	if price < 0 || multiplier < 1 {
		return 0
	}
	return int64(math.Floor(price / 1000 * multiplier))
}

// Множитель начисления для уровня членства
func Multiplier(level model.MembershipLevel, rules model.MembershipRules) float64 {
	switch level {
	case model.Gold:
		return rules.GoldMultiplier
	case model.Silver:
		return rules.SilverMultiplier
	default:
		return rules.BronzeMultiplier
	}
}

// Уровень членства по накопленным за все время баллам
// Считается только от lifetime-счетчика, поэтому никогда не понижается
func LevelFor(lifetime int64, rules model.MembershipRules) model.MembershipLevel {
	switch {
	case lifetime >= rules.GoldMin:
		return model.Gold
	case lifetime >= rules.SilverMin:
		return model.Silver
	default:
		return model.Bronze
	}
}

// Позиция чека
type Line struct {
	Service    uuid.UUID
	Price      float64
	Multiplier float64
}

// Результат расчета транзакции
type TransactionResult struct {
	TotalAmount  float64
	BasePoints   int64
	Earned       int64 // с учетом множителя уровня, без бонуса миссии
	MissionBonus int64
	NewBalance   int64
	NewLifetime  int64
	NewLevel     model.MembershipLevel
	Items        []model.TransactionItem
}

// Расчет транзакции: баллы по позициям, множитель уровня, бонус миссии, новый уровень
// Бонус миссии - фиксированная прибавка после множителя уровня
// Чистая функция, запись результата - на вызывающем
func ComputeTransaction(customer model.Customer, lines []Line, bonus int64, rules model.MembershipRules) TransactionResult {
	res := TransactionResult{Items: make([]model.TransactionItem, 0, len(lines))}
	for _, l := range lines {
		p := ServicePoints(l.Price, l.Multiplier)
		res.BasePoints += p
		res.TotalAmount += l.Price
		res.Items = append(res.Items, model.TransactionItem{Service: l.Service, Price: l.Price, Points: p})
	}
	res.Earned = int64(math.Floor(float64(res.BasePoints) * Multiplier(customer.Level, rules)))
	res.MissionBonus = bonus
	res.NewBalance = customer.TotalPoints + res.Earned + bonus
	res.NewLifetime = customer.TotalEarned + res.Earned + bonus
	res.NewLevel = LevelFor(res.NewLifetime, rules)
	return res
}

// Проверка списания: баланс не может уйти в минус
func AuthorizeRedemption(balance int64, required int64) error {
	if balance < required {
		return fmt.Errorf("balance %d, required %d: %w", balance, required, model.ErrInsufficientPoints)
	}
	return nil
}

const voucherPrefix = "LOUVA-"
const voucherAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const voucherLength = 6

// Код ваучера: LOUVA- и 6 символов [A-Z0-9]
// Уникальность гарантирует БД, на коллизии вызывающий генерирует заново
func VoucherCode() string {
	b := make([]byte, voucherLength)
	for i := range b {
		b[i] = voucherAlphabet[rand.IntN(len(voucherAlphabet))]
	}
	return voucherPrefix + string(b)
}

// Ваучер считается истекшим по дате независимо от статуса в БД
func RedemptionExpired(r model.RewardRedemption, now time.Time) bool {
	return now.After(r.ExpiryDate)
}

// Активная миссия клиента истекла
func UserMissionExpired(um model.UserMission, now time.Time) bool {
	return um.ExpiresAt != nil && now.After(*um.ExpiresAt)
}

// Миссия засчитывается: инстанс активен, не истек,
// и в чеке есть требуемая услуга (nil - подходит любая)
func MissionQualifies(m model.Mission, um model.UserMission, services []uuid.UUID, now time.Time) bool {
	if um.Status != model.MissionActive || UserMissionExpired(um, now) {
		return false
	}
	if m.Service == nil {
		return len(services) > 0
	}
	for _, s := range services {
		if s == *m.Service {
			return true
		}
	}
	return false
}

// Одноразовый QR-токен
// Формат зафиксирован побайтово: {"type":"loyalty","customerId":"<uuid>","timestamp":"<ISO-8601>"}
type QRPayload struct {
	Type       string `json:"type"`
	CustomerID string `json:"customerId"`
	Timestamp  string `json:"timestamp"`
}

func NewQRPayload(customer uuid.UUID, now time.Time) (string, error) {
	p := QRPayload{
		Type:       "loyalty",
		CustomerID: customer.String(),
		Timestamp:  now.UTC().Format(time.RFC3339),
	}
	j, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(j), nil
}

// Результат разбора отсканированной строки
type QRScan struct {
	Customer uuid.UUID
	LegacyID string // заполнен для legacy-формата LOUVA_<id>_<millis>
}

// Разбор JSON-формата QR с проверкой окна действия
// Токен возрастом ровно QRValidity еще действителен
func ParseQR(scanned string, now time.Time) (QRScan, error) {
	p := QRPayload{}
	err := json.Unmarshal([]byte(scanned), &p)
	if err != nil {
		return QRScan{}, fmt.Errorf("malformed qr payload: %w", model.ErrValidation)
	}
	if p.Type != "loyalty" {
		return QRScan{}, fmt.Errorf("unexpected qr type %q: %w", p.Type, model.ErrValidation)
	}
	ts, err := time.Parse(time.RFC3339, p.Timestamp)
	if err != nil {
		return QRScan{}, fmt.Errorf("malformed qr timestamp: %w", model.ErrValidation)
	}
	// структура проверяется целиком до окна действия:
	// битый payload - это Validation, а не QRExpired
	customer, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return QRScan{}, fmt.Errorf("malformed qr customerId: %w", model.ErrValidation)
	}
	if now.Sub(ts) > QRValidity {
		return QRScan{}, model.ErrQRExpired
	}
	return QRScan{Customer: customer}, nil
}

// Разбор legacy-формата LOUVA_<id>_<epochMillis> с проверкой окна действия
func ParseLegacyQR(scanned string, now time.Time) (QRScan, error) {
	rest, ok := strings.CutPrefix(scanned, "LOUVA_")
	if !ok {
		return QRScan{}, fmt.Errorf("not a legacy qr code: %w", model.ErrValidation)
	}
	sep := strings.LastIndex(rest, "_")
	if sep <= 0 || sep == len(rest)-1 {
		return QRScan{}, fmt.Errorf("malformed legacy qr code: %w", model.ErrValidation)
	}
	id := rest[:sep]
	millis, err := strconv.ParseInt(rest[sep+1:], 10, 64)
	if err != nil {
		return QRScan{}, fmt.Errorf("malformed legacy qr timestamp: %w", model.ErrValidation)
	}
	if now.Sub(time.UnixMilli(millis)) > QRValidity {
		return QRScan{}, model.ErrQRExpired
	}
	return QRScan{LegacyID: id}, nil
}
