package service_models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joy095/cardoctor/logger"
)

// Service records are jsonb documents loaded out-of-band; this package only
// reads them. Documents are returned as maps with the row id merged in under
// "_id" so the wire shape stays document-store flavored.

// GetAllServices returns every catalog entry in full, in the store's natural
// order.
func GetAllServices(ctx context.Context, db *pgxpool.Pool) ([]map[string]any, error) {
	logger.InfoLogger.Info("Fetching all service records")

	rows, err := db.Query(ctx, `SELECT id, doc FROM services`)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to query services: %v", err)
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := make([]map[string]any, 0)
	for rows.Next() {
		var id uuid.UUID
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}

		doc := map[string]any{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode service document: %w", err)
		}
		doc["_id"] = id.String()
		services = append(services, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}

	return services, nil
}

// GetServiceByID returns a projection of a single catalog entry: title,
// price, service_id and img only. A malformed id cannot match any record and
// reports pgx.ErrNoRows like an unknown one.
func GetServiceByID(ctx context.Context, db *pgxpool.Pool, id string) (map[string]any, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		logger.WarnLogger.Warnf("Malformed service id %q: %v", id, err)
		return nil, pgx.ErrNoRows
	}

	query := `
		SELECT id, jsonb_build_object(
			'title', doc->'title',
			'price', doc->'price',
			'service_id', doc->'service_id',
			'img', doc->'img'
		)
		FROM services
		WHERE id = $1`

	var rowID uuid.UUID
	var raw []byte
	if err := db.QueryRow(ctx, query, serviceID).Scan(&rowID, &raw); err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		logger.ErrorLogger.Errorf("Failed to fetch service %s: %v", serviceID, err)
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode service document: %w", err)
	}
	doc["_id"] = rowID.String()

	return doc, nil
}
