package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"growe/internal/common"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Collection names
const (
	UsersCollection        = "users"
	ThreePLsCollection     = "three_pls"
	WarehousesCollection   = "warehouses"
	LeasesCollection       = "leases"
	DealsCollection        = "deals"
	ShipperLeadsCollection = "shipper_leads"
)

// Collections lists every collection the API persists to
var Collections = []string{
	UsersCollection,
	ThreePLsCollection,
	WarehousesCollection,
	LeasesCollection,
	DealsCollection,
	ShipperLeadsCollection,
}

// Database is the subset of pgxpool.Pool the repositories use. pgxmock pools satisfy it too.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Document is implemented by every persisted entity (through models.Base)
type Document interface {
	GetID() string
	SetID(id string)
}

// DocumentRepository stores documents of one type as JSONB rows in a single collection table.
// T is a pointer type such as *models.Deal.
type DocumentRepository[T Document] interface {
	Insert(ctx context.Context, doc T) error
	List(ctx context.Context) ([]T, error)
	FindBy(ctx context.Context, field, value string) (T, error)
	Replace(ctx context.Context, id string, doc T) error
	Count(ctx context.Context) (int, error)
}

type documentRepo[T Document] struct {
	db    Database
	table string
}

// NewDocumentRepository creates a repository over the named collection
func NewDocumentRepository[T Document](db Database, collection string) DocumentRepository[T] {
	return &documentRepo[T]{
		db:    db,
		table: pgx.Identifier{collection}.Sanitize(),
	}
}

func (r *documentRepo[T]) Insert(ctx context.Context, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := `INSERT INTO ` + r.table + ` (doc, created_at) VALUES ($1::jsonb, NOW())`
	if _, err := r.db.Exec(ctx, query, string(data)); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return nil
}

func (r *documentRepo[T]) List(ctx context.Context) ([]T, error) {
	query := `SELECT storage_key, doc FROM ` + r.table + ` ORDER BY storage_key`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	docs := make([]T, 0)
	for rows.Next() {
		var storageKey int64
		var data []byte
		if err := rows.Scan(&storageKey, &data); err != nil {
			return nil, err
		}

		doc, err := decode[T](storageKey, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindBy returns the first document whose top-level field equals value.
// Returns common.ErrNotFound when nothing matches.
func (r *documentRepo[T]) FindBy(ctx context.Context, field, value string) (T, error) {
	var zero T
	query := `SELECT storage_key, doc FROM ` + r.table + ` WHERE doc->>$1 = $2 ORDER BY storage_key LIMIT 1`

	var storageKey int64
	var data []byte
	err := r.db.QueryRow(ctx, query, field, value).Scan(&storageKey, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, common.ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	return decode[T](storageKey, data)
}

// Replace overwrites every field of the document with the given id. The stored
// id and created_at are kept. Returns common.ErrNotFound if no document has that id.
func (r *documentRepo[T]) Replace(ctx context.Context, id string, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		UPDATE ` + r.table + `
		SET doc = $2::jsonb || jsonb_build_object('id', doc->'id', 'created_at', doc->'created_at')
		WHERE doc->>'id' = $1
	`
	tag, err := r.db.Exec(ctx, query, id, string(data))
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *documentRepo[T]) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM ` + r.table
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.table, err)
	}
	return count, nil
}

// decode unmarshals a stored document. The storage key is dropped; it only
// stands in as the id for documents written without one.
func decode[T Document](storageKey int64, data []byte) (T, error) {
	var doc T
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return doc, fmt.Errorf("failed to decode document %d: empty document", storageKey)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to decode document %d: %w", storageKey, err)
	}
	if doc.GetID() == "" {
		doc.SetID(strconv.FormatInt(storageKey, 10))
	}
	return doc, nil
}
