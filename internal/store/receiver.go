package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
)

type receiverStore struct {
	*MYSQLStore
}

// ReportReceivers returns an object implementing the report receivers interface
func (ms *MYSQLStore) ReportReceivers() dependency.ReportReceivers {
	return &receiverStore{MYSQLStore: ms}
}

const receiverSelect = `
	SELECT rr.id, rr.admin_id, rr.email, rr.daily, rr.monthly, rr.yearly, rr.created_at,
		a.username AS admin_username
	FROM report_receivers rr
	JOIN admins a ON a.id = rr.admin_id`

func (ms *MYSQLStore) ListReceivers(ctx context.Context) ([]entity.ReportReceiver, error) {
	rs, err := QueryListNamed[entity.ReportReceiver](ctx, ms.db, receiverSelect+` ORDER BY rr.id ASC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list report receivers: %w", err)
	}
	return rs, nil
}

// ListOptedIn returns receivers with the g flag set and a non-empty email.
func (ms *MYSQLStore) ListOptedIn(ctx context.Context, g period.Granularity) ([]entity.ReportReceiver, error) {
	var flag string
	switch g {
	case period.Daily:
		flag = "rr.daily"
	case period.Monthly:
		flag = "rr.monthly"
	case period.Yearly:
		flag = "rr.yearly"
	default:
		return nil, gerr.InvalidRequest("no scheduled report for %s period", g)
	}
	query := receiverSelect + ` WHERE ` + flag + ` = TRUE AND rr.email <> '' ORDER BY rr.id ASC`
	rs, err := QueryListNamed[entity.ReportReceiver](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list opted in receivers: %w", err)
	}
	return rs, nil
}

func receiverParams(r *entity.ReportReceiverInsert) map[string]any {
	return map[string]any{
		"adminId": r.AdminId,
		"email":   r.Email,
		"daily":   r.Daily,
		"monthly": r.Monthly,
		"yearly":  r.Yearly,
	}
}

func (ms *MYSQLStore) AddReceiver(ctx context.Context, r *entity.ReportReceiverInsert) (int, error) {
	query := `
		INSERT INTO report_receivers (admin_id, email, daily, monthly, yearly)
		VALUES (:adminId, :email, :daily, :monthly, :yearly)`
	id, err := ExecNamedLastId(ctx, ms.db, query, receiverParams(r))
	switch {
	case isErrNoReferencedRow(err):
		return 0, gerr.NotFound("admin %d not found", r.AdminId)
	case ms.IsErrUniqueViolation(err):
		return 0, gerr.InvalidRequest("admin %d already has report preferences", r.AdminId)
	case err != nil:
		return 0, fmt.Errorf("failed to add report receiver: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) UpdateReceiver(ctx context.Context, id int, r *entity.ReportReceiverInsert) error {
	query := `
		UPDATE report_receivers SET
			admin_id = :adminId,
			email = :email,
			daily = :daily,
			monthly = :monthly,
			yearly = :yearly
		WHERE id = :id`
	params := receiverParams(r)
	params["id"] = id
	err := ExecNamedAffected(ctx, ms.db, query, params)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return gerr.NotFound("report receiver %d not found", id)
	case isErrNoReferencedRow(err):
		return gerr.NotFound("admin %d not found", r.AdminId)
	case ms.IsErrUniqueViolation(err):
		return gerr.InvalidRequest("admin %d already has report preferences", r.AdminId)
	case err != nil:
		return fmt.Errorf("failed to update report receiver: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) DeleteReceiverById(ctx context.Context, id int) error {
	err := ExecNamedAffected(ctx, ms.db, `DELETE FROM report_receivers WHERE id = :id`, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return gerr.NotFound("report receiver %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete report receiver: %w", err)
	}
	return nil
}
