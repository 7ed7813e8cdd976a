package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/pkg/entity"
)

const selectUsage = `SELECT u.id, u.user_id, us.name, u.usage_date, u.electricity_units, u.water_liters, u.household_size, u.created_at
		FROM usage_records u JOIN users us ON us.id = u.user_id`

type UsageRepository struct {
	conn PgConnection
}

func NewUsageRepo(cfg DBConfig) *UsageRepository {
	return &UsageRepository{
		conn: MustConnect(cfg),
	}
}

func NewUsageRepoWithConn(conn PgConnection) *UsageRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usageRepo: " + err.Error())
	}
	return &UsageRepository{
		conn: conn,
	}
}

func (ur *UsageRepository) Append(ctx context.Context, record *entity.UsageRecord) error {
	if record == nil {
		return errors.New("usage record is nil")
	}
	row := ur.conn.QueryRow(
		ctx,
		`INSERT INTO usage_records (user_id, usage_date, electricity_units, water_liters, household_size) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		record.UserID,
		entity.Day(record.Date),
		record.ElectricityUnits,
		record.WaterLiters,
		record.HouseholdSize,
	)
	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			// Check violation
			case "23514":
				return errorvalues.ErrInvalidUsage
			}
		}
		return errors.New("appending usage record error: " + err.Error())
	}
	record.Date = entity.Day(record.Date)
	return nil
}

func (ur *UsageRepository) Fetch(ctx context.Context, filter entity.UsageFilter) ([]entity.UsageRecord, error) {
	query, args := buildFetchQuery(filter)
	rows, err := ur.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("fetching usage records error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.UsageRecord, 0)
	for rows.Next() {
		r := entity.UsageRecord{}
		err = rows.Scan(&r.ID, &r.UserID, &r.Username, &r.Date, &r.ElectricityUnits, &r.WaterLiters, &r.HouseholdSize, &r.CreatedAt)
		if err != nil {
			return nil, errors.New("usage row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected usage rows error: " + err.Error())
	}
	return result, nil
}

func buildFetchQuery(filter entity.UsageFilter) (string, []any) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, cond+" $"+strconv.Itoa(len(args)))
	}
	if filter.UserID != nil {
		add("u.user_id =", *filter.UserID)
	}
	if filter.From != nil {
		add("u.usage_date >=", entity.Day(*filter.From))
	}
	if filter.To != nil {
		add("u.usage_date <=", entity.Day(*filter.To))
	}
	var b strings.Builder
	b.WriteString(selectUsage)
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY u.usage_date ASC, u.id ASC;")
	return b.String(), args
}
