package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirge-io/performance-api/infrastructure/database/postgres"
	"github.com/sirge-io/performance-api/internal/domain"
)

const (
	trackedEventsTable = "tracked_events te"
)

// Colunas de ID e nome do objeto por nível de agrupamento
var levelColumns = map[domain.ReportLevel]struct {
	id   string
	name string
}{
	domain.LevelCampaign: {id: "te.campaign_id", name: "te.campaign_name"},
	domain.LevelAdSet:    {id: "te.ad_set_id", name: "te.ad_set_name"},
	domain.LevelAd:       {id: "te.ad_id", name: "te.ad_name"},
}

type AttributionRepository interface {
	// GetGroupedByObject agrupa os eventos rastreados do negócio por ID do
	// objeto na plataforma, somando cliques, compras e valor de conversão
	GetGroupedByObject(
		businessID string,
		platform domain.Platform,
		level domain.ReportLevel,
		filters *domain.ReportFilters,
	) ([]*domain.AttributionGroup, error)
}

type attributionRepository struct {
	conn *postgres.Connection
}

func NewAttributionRepository(conn *postgres.Connection) AttributionRepository {
	return &attributionRepository{
		conn: conn,
	}
}

func (r *attributionRepository) GetGroupedByObject(
	businessID string,
	platform domain.Platform,
	level domain.ReportLevel,
	filters *domain.ReportFilters,
) ([]*domain.AttributionGroup, error) {
	cols, ok := levelColumns[level]
	if !ok {
		return nil, fmt.Errorf("nível de agrupamento inválido: %s", level)
	}

	builder := squirrel.
		Select(
			cols.id,
			fmt.Sprintf("COALESCE(MAX(%s), '')", cols.name),
			"COUNT(*) FILTER (WHERE te.event_type = 'click')",
			"COUNT(*) FILTER (WHERE te.event_type = 'purchase')",
			"COALESCE(SUM(te.purchase_value) FILTER (WHERE te.event_type = 'purchase'), 0)",
		).
		From(trackedEventsTable).
		Where(squirrel.Eq{"te.business_id": businessID, "te.platform": string(platform)}).
		Where(squirrel.NotEq{cols.id: ""})

	if filters != nil && filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"te.occurred_at": filters.StartDate.Format("2006-01-02")})
	}

	if filters != nil && filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"te.occurred_at": filters.EndDate.Format("2006-01-02")})
	}

	query, args, err := builder.
		GroupBy(cols.id).
		OrderBy("MIN(te.occurred_at) ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	groups := make([]*domain.AttributionGroup, 0)
	for rows.Next() {
		group := &domain.AttributionGroup{}
		err := rows.Scan(
			&group.PlatformObjectID,
			&group.DisplayName,
			&group.Clicks,
			&group.Purchases,
			&group.ConversionValue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de atribuição: %w", err)
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}
