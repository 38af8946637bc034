package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirge-io/performance-api/infrastructure/database/postgres"
	"github.com/sirge-io/performance-api/internal/domain"
)

const (
	reportSnapshotsTable = "report_snapshots rs"
)

type ReportSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.ReportSnapshot) error
	GetByBusinessAndDate(businessID string, platform domain.Platform, level domain.ReportLevel, date time.Time) (*domain.ReportSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) SaveOrUpdate(snapshot *domain.ReportSnapshot) error {
	var reportJSON []byte
	var err error

	if snapshot.Report != nil {
		reportJSON, err = json.Marshal(snapshot.Report)
		if err != nil {
			return fmt.Errorf("erro ao serializar relatório para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("report_snapshots").
		Columns("business_id", "platform", "level", "date", "report").
		Values(
			snapshot.BusinessID,
			string(snapshot.Platform),
			string(snapshot.Level),
			snapshot.Date.Format("2006-01-02"),
			reportJSON,
		).
		Suffix(`
			ON CONFLICT (business_id, platform, level, date) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar snapshot de relatório: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) GetByBusinessAndDate(
	businessID string,
	platform domain.Platform,
	level domain.ReportLevel,
	date time.Time,
) (*domain.ReportSnapshot, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.business_id, rs.platform, rs.level, rs.date, rs.report, rs.created_at, rs.updated_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{
			"rs.business_id": businessID,
			"rs.platform":    string(platform),
			"rs.level":       string(level),
			"rs.date":        date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.ReportSnapshot{}
	var reportJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&snapshot.ID,
		&snapshot.BusinessID,
		&snapshot.Platform,
		&snapshot.Level,
		&snapshot.Date,
		&reportJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if len(reportJSON) > 0 {
		report := &domain.PerformanceReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("erro ao desserializar relatório do snapshot: %w", err)
		}
		snapshot.Report = report
	}

	return snapshot, nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("report_snapshots").
		Where(squirrel.Lt{"date": cutoff.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar snapshots removidos: %w", err)
	}

	return deleted, nil
}
