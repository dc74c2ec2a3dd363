package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/noorbagus/louva-app-sub000/internal/ledger"
	model "github.com/noorbagus/louva-app-sub000/internal/models"
)

type LoyaltyDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewLoyaltyDB(logger *zap.Logger) (db *LoyaltyDB, err error) {
	// config
	purl := os.Getenv("LOYALTY_DB")
	if purl == "" {
		return nil, fmt.Errorf("env LOYALTY_DB is not set")
	}
	port := os.Getenv("LOYALTY_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PORT is not set")
	}
	user := os.Getenv("LOYALTY_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_USER is not set")
	}
	password := os.Getenv("LOYALTY_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PASSWORD is not set")
	}
	database := os.Getenv("LOYALTY_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &LoyaltyDB{pool, logger}, err
}

func (l *LoyaltyDB) logSQL(err error, sql string, args []any) {
	l.logger.Error("SQL error",
		zap.Error(err),
		zap.String("query", sql),
		zap.Any("args", args),
	)
}

// нарушение уникальности
func isUniqueViolation(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

const customerColumns = "uuid, name, phone, email, totalpoints, totalearned, level, totalvisits, totalspent, qrcode, createdat"

func scanCustomer(row pgx.Row) (c model.Customer, err error) {
	var pguuid pgtype.UUID
	var email pgtype.Text
	var qrcode pgtype.Text
	err = row.Scan(&pguuid, &c.Name, &c.Phone, &email, &c.TotalPoints, &c.TotalEarned, &c.Level, &c.TotalVisits, &c.TotalSpent, &qrcode, &c.CreatedAt)
	if err != nil {
		return c, err
	}
	c.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	c.Email = email.String
	c.QRCode = qrcode.String
	return c, nil
}

// Получить клиента
func (l *LoyaltyDB) GetCustomer(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE uuid = $1", id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, fmt.Errorf("customer %w", model.ErrNotFound)
		}
		return model.Customer{}, err
	}
	return c, nil
}

// Поиск по постоянному персональному QR
func (l *LoyaltyDB) GetCustomerByStaticQR(ctx context.Context, code string) (model.Customer, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE qrcode = $1", code)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, fmt.Errorf("customer %w", model.ErrNotFound)
		}
		return model.Customer{}, err
	}
	return c, nil
}

// Поиск по идентификатору из legacy QR: UUID без дефисов
func (l *LoyaltyDB) GetCustomerByLegacyID(ctx context.Context, id string) (model.Customer, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE replace(uuid::text, '-', '') = lower($1)", id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, fmt.Errorf("customer %w", model.ErrNotFound)
		}
		return model.Customer{}, err
	}
	return c, nil
}

// Создание клиента: Bronze, нулевой баланс
func (l *LoyaltyDB) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	defer conn.Release()

	customer.UUID = uuid.New()
	customer.Level = model.Bronze
	customer.TotalPoints = 0
	customer.TotalEarned = 0
	customer.CreatedAt = time.Now()

	sql, args, err := sq.Insert("customers").
		Columns("uuid", "name", "phone", "email", "totalpoints", "totalearned", "level", "totalvisits", "totalspent", "qrcode", "createdat").
		Values(customer.UUID, customer.Name, customer.Phone, customer.Email, 0, 0, customer.Level, 0, 0, customer.QRCode, customer.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}
	return customer, nil
}

// Обновление профиля
func (l *LoyaltyDB) UpdateProfile(ctx context.Context, id uuid.UUID, name string, phone string, email string) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	sql, args, err := sq.Update("customers").
		Set("name", name).
		Set("phone", phone).
		Set("email", email).
		Where(sq.Eq{"uuid": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return err
	}

	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %w", model.ErrNotFound)
	}
	return nil
}

// Все клиенты
func (l *LoyaltyDB) ListCustomers(ctx context.Context) (customers []model.Customer, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY createdat")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (l *LoyaltyDB) CountCustomers(ctx context.Context) (count int64, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	err = conn.QueryRow(ctx, "SELECT count(*) FROM customers").Scan(&count)
	return count, err
}

// Активные услуги
func (l *LoyaltyDB) ListServices(ctx context.Context) (services []model.Service, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "name", "category", "price", "pointmultiplier", "active").
		From("services").
		Where(sq.Eq{"active": true}).
		OrderBy("category", "name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.Service
		var pguuid pgtype.UUID
		err = rows.Scan(&pguuid, &s.Name, &s.Category, &s.Price, &s.PointMultiplier, &s.Active)
		if err != nil {
			return nil, err
		}
		s.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		services = append(services, s)
	}
	return services, rows.Err()
}

// уникальные идентификаторы с сохранением порядка
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// Услуги по списку идентификаторов
// Повторы допустимы: одна услуга может встречаться в чеке дважды
func (l *LoyaltyDB) GetServices(ctx context.Context, ids []uuid.UUID) (services []model.Service, err error) {
	ids = uniqueIDs(ids)

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "name", "category", "price", "pointmultiplier", "active").
		From("services").
		Where(sq.Eq{"uuid": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.Service
		var pguuid pgtype.UUID
		err = rows.Scan(&pguuid, &s.Name, &s.Category, &s.Price, &s.PointMultiplier, &s.Active)
		if err != nil {
			return nil, err
		}
		s.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		services = append(services, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, fmt.Errorf("service %w", model.ErrNotFound)
	}
	return services, nil
}

// Начисление: одна атомарная операция над балансом
// Блокировка строки клиента, инкременты баланса и lifetime-счетчика,
// пересчет уровня, запись транзакции, позиций и истории, отметка миссии
func (l *LoyaltyDB) ApplyAccrual(ctx context.Context, tnx model.Transaction, rules model.MembershipRules, completedMission *uuid.UUID, reason string) (customer model.Customer, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Customer{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// блокируем строку клиента
	row := tx.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE uuid = $1 FOR UPDATE", tnx.Customer)
	customer, err = scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, fmt.Errorf("customer %w", model.ErrNotFound)
		}
		return model.Customer{}, err
	}

	delta := tnx.PointsEarned + tnx.MissionBonus
	customer.TotalPoints += delta
	customer.TotalEarned += delta
	customer.Level = ledger.LevelFor(customer.TotalEarned, rules)
	customer.TotalVisits++
	customer.TotalSpent += tnx.TotalAmount

	sql, args, err := sq.Update("customers").
		Set("totalpoints", customer.TotalPoints).
		Set("totalearned", customer.TotalEarned).
		Set("level", customer.Level).
		Set("totalvisits", customer.TotalVisits).
		Set("totalspent", customer.TotalSpent).
		Where(sq.Eq{"uuid": customer.UUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}

	// транзакция
	tnx.UUID = uuid.New()
	tnx.CreatedAt = time.Now()
	sql, args, err = sq.Insert("transactions").
		Columns("uuid", "customer", "totalamount", "pointsearned", "missionbonus", "paymentmethod", "createdat").
		Values(tnx.UUID, tnx.Customer, tnx.TotalAmount, tnx.PointsEarned, tnx.MissionBonus, tnx.PaymentMethod, tnx.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}

	// позиции
	for _, item := range tnx.Items {
		sql, args, err = sq.Insert("transaction_items").
			Columns("tnx", "service", "price", "points").
			Values(tnx.UUID, item.Service, item.Price, item.Points).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			l.logSQL(err, sql, args)
			return model.Customer{}, err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			l.logSQL(err, sql, args)
			return model.Customer{}, err
		}
	}

	// история баллов
	sql, args, err = sq.Insert("points_history").
		Columns("uuid", "customer", "pointschange", "balanceafter", "reason", "createdat").
		Values(uuid.New(), customer.UUID, delta, customer.TotalPoints, reason, tnx.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return model.Customer{}, err
	}

	// завершение миссии в той же транзакции
	if completedMission != nil {
		sql, args, err = sq.Update("user_missions").
			Set("status", model.MissionCompleted).
			Set("completedat", tnx.CreatedAt).
			Where(sq.Eq{"uuid": *completedMission}).
			Where(sq.Eq{"status": model.MissionActive}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			l.logSQL(err, sql, args)
			return model.Customer{}, err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			l.logSQL(err, sql, args)
			return model.Customer{}, err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// Транзакции клиента за период
func (l *LoyaltyDB) GetTransactions(ctx context.Context, customer uuid.UUID, from time.Time, to time.Time) (tnxs []model.Transaction, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "customer", "totalamount", "pointsearned", "missionbonus", "paymentmethod", "createdat").
		From("transactions").
		Where(sq.Eq{"customer": customer}).
		Where(sq.GtOrEq{"createdat": from}).
		Where(sq.LtOrEq{"createdat": to}).
		OrderBy("createdat DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tnx model.Transaction
		var pguuid, pgcustomer pgtype.UUID
		err = rows.Scan(&pguuid, &pgcustomer, &tnx.TotalAmount, &tnx.PointsEarned, &tnx.MissionBonus, &tnx.PaymentMethod, &tnx.CreatedAt)
		if err != nil {
			return nil, err
		}
		tnx.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		tnx.Customer, _ = uuid.FromBytes(pgcustomer.Bytes[:])
		tnxs = append(tnxs, tnx)
	}
	return tnxs, rows.Err()
}

// Сумма начисленных баллов за период
func (l *LoyaltyDB) SumPointsIssued(ctx context.Context, from time.Time, to time.Time) (points int64, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT COALESCE(SUM(pointsearned + missionbonus), 0) FROM transactions WHERE createdat >= $1 AND createdat <= $2",
		from, to)
	err = row.Scan(&points)
	return points, err
}

// Запись истории вне начисления/списания - best effort на вызывающем
func (l *LoyaltyDB) AddHistory(ctx context.Context, entry model.PointsHistoryEntry) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	sql, args, err := sq.Insert("points_history").
		Columns("uuid", "customer", "pointschange", "balanceafter", "reason", "createdat").
		Values(uuid.New(), entry.Customer, entry.PointsChange, entry.BalanceAfter, entry.Reason, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return err
	}
	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return err
	}
	return nil
}

// История баллов клиента
func (l *LoyaltyDB) GetHistory(ctx context.Context, customer uuid.UUID) (entries []model.PointsHistoryEntry, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "customer", "pointschange", "balanceafter", "reason", "createdat").
		From("points_history").
		Where(sq.Eq{"customer": customer}).
		OrderBy("createdat DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e model.PointsHistoryEntry
		var pguuid, pgcustomer pgtype.UUID
		err = rows.Scan(&pguuid, &pgcustomer, &e.PointsChange, &e.BalanceAfter, &e.Reason, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		e.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		e.Customer, _ = uuid.FromBytes(pgcustomer.Bytes[:])
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Активный каталог наград
func (l *LoyaltyDB) ListRewards(ctx context.Context) (rewards []model.Reward, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "name", "pointsrequired", "active").
		From("rewards").
		Where(sq.Eq{"active": true}).
		OrderBy("pointsrequired").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Reward
		var pguuid pgtype.UUID
		err = rows.Scan(&pguuid, &r.Name, &r.PointsRequired, &r.Active)
		if err != nil {
			return nil, err
		}
		r.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		rewards = append(rewards, r)
	}
	return rewards, rows.Err()
}

func (l *LoyaltyDB) GetReward(ctx context.Context, id uuid.UUID) (model.Reward, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Reward{}, err
	}
	defer conn.Release()

	var r model.Reward
	var pguuid pgtype.UUID
	row := conn.QueryRow(ctx, "SELECT uuid, name, pointsrequired, active FROM rewards WHERE uuid = $1", id)
	err = row.Scan(&pguuid, &r.Name, &r.PointsRequired, &r.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reward{}, fmt.Errorf("reward %w", model.ErrNotFound)
		}
		return model.Reward{}, err
	}
	r.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	return r, nil
}

// Создать/обновить награду
func (l *LoyaltyDB) SaveReward(ctx context.Context, reward model.Reward) (uuid.UUID, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer conn.Release()

	if reward.UUID == uuid.Nil {
		reward.UUID = uuid.New()
		sql, args, err := sq.Insert("rewards").
			Columns("uuid", "name", "pointsrequired", "active").
			Values(reward.UUID, reward.Name, reward.PointsRequired, reward.Active).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			l.logSQL(err, sql, args)
			return uuid.Nil, err
		}
		_, err = conn.Exec(ctx, sql, args...)
		if err != nil {
			l.logSQL(err, sql, args)
			return uuid.Nil, err
		}
		return reward.UUID, nil
	}

	sql, args, err := sq.Update("rewards").
		Set("name", reward.Name).
		Set("pointsrequired", reward.PointsRequired).
		Set("active", reward.Active).
		Where(sq.Eq{"uuid": reward.UUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return uuid.Nil, err
	}
	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return uuid.Nil, err
	}
	return reward.UUID, nil
}

// Списание: блокировка баланса, проверка достаточности, запись погашения и истории
// Уникальность кода ваучера гарантирует констрейнт, коллизия отдается как ErrVoucherCollision
func (l *LoyaltyDB) RedeemReward(ctx context.Context, customerID uuid.UUID, reward model.Reward, code string, now time.Time) (redemption model.RewardRedemption, customer model.Customer, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.RewardRedemption{}, model.Customer{}, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.RewardRedemption{}, model.Customer{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// проверить и заблокировать баланс
	row := tx.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE uuid = $1 FOR UPDATE", customerID)
	customer, err = scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RewardRedemption{}, model.Customer{}, fmt.Errorf("customer %w", model.ErrNotFound)
		}
		return model.RewardRedemption{}, model.Customer{}, err
	}
	err = ledger.AuthorizeRedemption(customer.TotalPoints, reward.PointsRequired)
	if err != nil {
		return model.RewardRedemption{}, model.Customer{}, err
	}
	customer.TotalPoints -= reward.PointsRequired

	// уровень считается от lifetime-счетчика и при списании не меняется
	sql, args, err := sq.Update("customers").
		Set("totalpoints", customer.TotalPoints).
		Where(sq.Eq{"uuid": customer.UUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return model.RewardRedemption{}, model.Customer{}, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return model.RewardRedemption{}, model.Customer{}, err
	}

	// погашение
	redemption = model.RewardRedemption{
		UUID:        uuid.New(),
		Customer:    customer.UUID,
		Reward:      reward.UUID,
		PointsUsed:  reward.PointsRequired,
		VoucherCode: code,
		Status:      model.RedemptionActive,
		RedeemedAt:  now,
		ExpiryDate:  now.Add(ledger.VoucherValidity),
	}
	sql, args, err = sq.Insert("redemptions").
		Columns("uuid", "customer", "reward", "pointsused", "vouchercode", "status", "redeemedat", "expirydate").
		Values(redemption.UUID, redemption.Customer, redemption.Reward, redemption.PointsUsed, redemption.VoucherCode, redemption.Status, redemption.RedeemedAt, redemption.ExpiryDate).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return model.RewardRedemption{}, model.Customer{}, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			err = fmt.Errorf("voucher %s: %w", code, model.ErrVoucherCollision)
			return model.RewardRedemption{}, model.Customer{}, err
		}
		l.logSQL(err, sql, args)
		return model.RewardRedemption{}, model.Customer{}, err
	}

	// история баллов
	sql, args, err = sq.Insert("points_history").
		Columns("uuid", "customer", "pointschange", "balanceafter", "reason", "createdat").
		Values(uuid.New(), customer.UUID, -reward.PointsRequired, customer.TotalPoints, "reward redemption: "+reward.Name, now).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return model.RewardRedemption{}, model.Customer{}, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return model.RewardRedemption{}, model.Customer{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.RewardRedemption{}, model.Customer{}, err
	}
	return redemption, customer, nil
}

func scanRedemption(row pgx.Row) (r model.RewardRedemption, err error) {
	var pguuid, pgcustomer, pgreward pgtype.UUID
	err = row.Scan(&pguuid, &pgcustomer, &pgreward, &r.PointsUsed, &r.VoucherCode, &r.Status, &r.RedeemedAt, &r.ExpiryDate)
	if err != nil {
		return r, err
	}
	r.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	r.Customer, _ = uuid.FromBytes(pgcustomer.Bytes[:])
	r.Reward, _ = uuid.FromBytes(pgreward.Bytes[:])
	return r, nil
}

// Погашения клиента
func (l *LoyaltyDB) GetRedemptions(ctx context.Context, customer uuid.UUID) (redemptions []model.RewardRedemption, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "customer", "reward", "pointsused", "vouchercode", "status", "redeemedat", "expirydate").
		From("redemptions").
		Where(sq.Eq{"customer": customer}).
		OrderBy("redeemedat DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		r, err := scanRedemption(rows)
		if err != nil {
			return nil, err
		}
		redemptions = append(redemptions, r)
	}
	return redemptions, rows.Err()
}

// Использование ваучера на кассе: active -> used
// Истекший по дате ваучер отклоняется независимо от статуса в БД
func (l *LoyaltyDB) UseVoucher(ctx context.Context, code string, now time.Time) (redemption model.RewardRedemption, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.RewardRedemption{}, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.RewardRedemption{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	row := tx.QueryRow(ctx,
		"SELECT uuid, customer, reward, pointsused, vouchercode, status, redeemedat, expirydate FROM redemptions WHERE vouchercode = $1 FOR UPDATE",
		code)
	redemption, err = scanRedemption(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RewardRedemption{}, fmt.Errorf("voucher %w", model.ErrNotFound)
		}
		return model.RewardRedemption{}, err
	}

	if redemption.Status != model.RedemptionActive {
		err = fmt.Errorf("voucher status %s: %w", redemption.Status, model.ErrValidation)
		return model.RewardRedemption{}, err
	}
	if now.After(redemption.ExpiryDate) {
		// лениво размечаем истекший
		_, err = tx.Exec(ctx, "UPDATE redemptions SET status = $1 WHERE uuid = $2", model.RedemptionExpired, redemption.UUID)
		if err != nil {
			return model.RewardRedemption{}, err
		}
		err = tx.Commit(ctx)
		if err != nil {
			return model.RewardRedemption{}, err
		}
		return model.RewardRedemption{}, fmt.Errorf("voucher expired: %w", model.ErrValidation)
	}

	_, err = tx.Exec(ctx, "UPDATE redemptions SET status = $1 WHERE uuid = $2", model.RedemptionUsed, redemption.UUID)
	if err != nil {
		return model.RewardRedemption{}, err
	}
	err = tx.Commit(ctx)
	if err != nil {
		return model.RewardRedemption{}, err
	}
	redemption.Status = model.RedemptionUsed
	return redemption, nil
}

func (l *LoyaltyDB) CountRedemptions(ctx context.Context, from time.Time, to time.Time) (count int64, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT count(*) FROM redemptions WHERE redeemedat >= $1 AND redeemedat <= $2",
		from, to)
	err = row.Scan(&count)
	return count, err
}

// Разметка истекших ваучеров
func (l *LoyaltyDB) ExpireRedemptions(ctx context.Context, now time.Time) (count int64, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE redemptions SET status = $1 WHERE status = $2 AND expirydate < $3",
		model.RedemptionExpired, model.RedemptionActive, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanMission(row pgx.Row) (m model.Mission, err error) {
	var pguuid, pgservice pgtype.UUID
	var description pgtype.Text
	err = row.Scan(&pguuid, &m.Name, &description, &m.BonusPoints, &pgservice, &m.DurationDays, &m.Active)
	if err != nil {
		return m, err
	}
	m.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	m.Description = description.String
	if pgservice.Status == pgtype.Present {
		service, _ := uuid.FromBytes(pgservice.Bytes[:])
		m.Service = &service
	}
	return m, nil
}

// Активные миссии
func (l *LoyaltyDB) ListMissions(ctx context.Context) (missions []model.Mission, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "name", "description", "bonuspoints", "service", "durationdays", "active").
		From("missions").
		Where(sq.Eq{"active": true}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, rows.Err()
}

func (l *LoyaltyDB) GetMission(ctx context.Context, id uuid.UUID) (model.Mission, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Mission{}, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT uuid, name, description, bonuspoints, service, durationdays, active FROM missions WHERE uuid = $1", id)
	m, err := scanMission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Mission{}, fmt.Errorf("mission %w", model.ErrNotFound)
		}
		return model.Mission{}, err
	}
	return m, nil
}

// Создать/обновить миссию
func (l *LoyaltyDB) SaveMission(ctx context.Context, mission model.Mission) (uuid.UUID, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer conn.Release()

	var service any
	if mission.Service != nil {
		service = *mission.Service
	}

	if mission.UUID == uuid.Nil {
		mission.UUID = uuid.New()
		sql, args, err := sq.Insert("missions").
			Columns("uuid", "name", "description", "bonuspoints", "service", "durationdays", "active").
			Values(mission.UUID, mission.Name, mission.Description, mission.BonusPoints, service, mission.DurationDays, mission.Active).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			l.logSQL(err, sql, args)
			return uuid.Nil, err
		}
		_, err = conn.Exec(ctx, sql, args...)
		if err != nil {
			l.logSQL(err, sql, args)
			return uuid.Nil, err
		}
		return mission.UUID, nil
	}

	sql, args, err := sq.Update("missions").
		Set("name", mission.Name).
		Set("description", mission.Description).
		Set("bonuspoints", mission.BonusPoints).
		Set("service", service).
		Set("durationdays", mission.DurationDays).
		Set("active", mission.Active).
		Where(sq.Eq{"uuid": mission.UUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return uuid.Nil, err
	}
	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		l.logSQL(err, sql, args)
		return uuid.Nil, err
	}
	return mission.UUID, nil
}

func scanUserMission(row pgx.Row) (um model.UserMission, err error) {
	var pguuid, pgcustomer, pgmission pgtype.UUID
	var expires, completed pgtype.Timestamptz
	err = row.Scan(&pguuid, &pgcustomer, &pgmission, &um.Status, &um.ActivatedAt, &expires, &completed)
	if err != nil {
		return um, err
	}
	um.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	um.Customer, _ = uuid.FromBytes(pgcustomer.Bytes[:])
	um.Mission, _ = uuid.FromBytes(pgmission.Bytes[:])
	if expires.Status == pgtype.Present {
		t := expires.Time
		um.ExpiresAt = &t
	}
	if completed.Status == pgtype.Present {
		t := completed.Time
		um.CompletedAt = &t
	}
	return um, nil
}

// Миссии клиента
func (l *LoyaltyDB) GetUserMissions(ctx context.Context, customer uuid.UUID) (instances []model.UserMission, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "customer", "mission", "status", "activatedat", "expiresat", "completedat").
		From("user_missions").
		Where(sq.Eq{"customer": customer}).
		OrderBy("activatedat DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		um, err := scanUserMission(rows)
		if err != nil {
			return nil, err
		}
		instances = append(instances, um)
	}
	return instances, rows.Err()
}

func (l *LoyaltyDB) GetUserMission(ctx context.Context, customer uuid.UUID, mission uuid.UUID) (model.UserMission, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.UserMission{}, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT uuid, customer, mission, status, activatedat, expiresat, completedat FROM user_missions WHERE customer = $1 AND mission = $2",
		customer, mission)
	um, err := scanUserMission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserMission{}, fmt.Errorf("user mission %w", model.ErrNotFound)
		}
		return model.UserMission{}, err
	}
	return um, nil
}

// Активация миссии
// Повторная активация отклоняется констрейнтом на (customer, mission)
func (l *LoyaltyDB) ActivateMission(ctx context.Context, instance model.UserMission) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	var expires any
	if instance.ExpiresAt != nil {
		expires = *instance.ExpiresAt
	}

	sql, args, err := sq.Insert("user_missions").
		Columns("uuid", "customer", "mission", "status", "activatedat", "expiresat").
		Values(instance.UUID, instance.Customer, instance.Mission, instance.Status, instance.ActivatedAt, expires).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logSQL(err, sql, args)
		return err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("mission %s: %w", instance.Mission, model.ErrMissionAlreadyActivated)
		}
		l.logSQL(err, sql, args)
		return err
	}
	return nil
}

func (l *LoyaltyDB) CountCompletedMissions(ctx context.Context, from time.Time, to time.Time) (count int64, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT count(*) FROM user_missions WHERE status = $1 AND completedat >= $2 AND completedat <= $3",
		model.MissionCompleted, from, to)
	err = row.Scan(&count)
	return count, err
}

// Разметка истекших миссий: active -> expired
func (l *LoyaltyDB) ExpireUserMissions(ctx context.Context, now time.Time) (count int64, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE user_missions SET status = $1 WHERE status = $2 AND expiresat IS NOT NULL AND expiresat < $3",
		model.MissionExpired, model.MissionActive, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
