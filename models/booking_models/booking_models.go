package booking_models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joy095/cardoctor/logger"
)

// Booking payloads are stored verbatim as jsonb documents; this system does
// not validate their fields. doc->>'email' is the owner partition key and
// doc->>'status' the caller-defined status string.

// InsertResult is the acknowledgment returned for a booking insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult is the acknowledgment returned for a status update. Matched
// and modified counts come from the same rows-affected figure; a miss is
// reported as 0/0, never as an error.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult is the acknowledgment returned for a booking delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CreateBooking inserts the caller's payload as-is under a fresh id.
func CreateBooking(ctx context.Context, db *pgxpool.Pool, payload map[string]any) (*InsertResult, error) {
	logger.InfoLogger.Info("Attempting to create booking record")

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking payload: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for booking: %w", err)
	}

	var insertedID uuid.UUID
	query := `INSERT INTO bookings (id, doc) VALUES ($1, $2) RETURNING id`
	if err := db.QueryRow(ctx, query, id, raw).Scan(&insertedID); err != nil {
		logger.ErrorLogger.Errorf("Failed to insert booking: %v", err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.InfoLogger.Infof("Booking %s created successfully", insertedID)
	return &InsertResult{Acknowledged: true, InsertedID: insertedID.String()}, nil
}

// GetBookings returns bookings owned by ownerEmail, or every booking when the
// filter is empty.
func GetBookings(ctx context.Context, db *pgxpool.Pool, ownerEmail string) ([]map[string]any, error) {
	query := `SELECT id, doc FROM bookings`
	args := []any{}
	if ownerEmail != "" {
		query += ` WHERE doc->>'email' = $1`
		args = append(args, ownerEmail)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to query bookings: %v", err)
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]map[string]any, 0)
	for rows.Next() {
		var id uuid.UUID
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}

		doc := map[string]any{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode booking document: %w", err)
		}
		doc["_id"] = id.String()
		bookings = append(bookings, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

// UpdateBookingStatus sets only the status field of the addressed document.
func UpdateBookingStatus(ctx context.Context, db *pgxpool.Pool, id, status string) (*UpdateResult, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		// A malformed id cannot address any record.
		logger.WarnLogger.Warnf("Malformed booking id %q: %v", id, err)
		return &UpdateResult{Acknowledged: true}, nil
	}

	query := `UPDATE bookings SET doc = jsonb_set(doc, '{status}', to_jsonb($2::text)) WHERE id = $1`
	tag, err := db.Exec(ctx, query, bookingID, status)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	affected := tag.RowsAffected()
	logger.InfoLogger.Infof("Booking %s status update matched %d record(s)", bookingID, affected)
	return &UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

// DeleteBooking removes the addressed document.
func DeleteBooking(ctx context.Context, db *pgxpool.Pool, id string) (*DeleteResult, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		logger.WarnLogger.Warnf("Malformed booking id %q: %v", id, err)
		return &DeleteResult{Acknowledged: true}, nil
	}

	tag, err := db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to delete booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}
