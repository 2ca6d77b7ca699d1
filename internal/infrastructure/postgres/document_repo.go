package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/port"
	"github.com/academix/ledger-service/internal/domain/valueobject"
	"github.com/academix/ledger-service/pkg/events"
	pgpkg "github.com/academix/ledger-service/pkg/postgres"
)

// Compile-time interface check
var _ port.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implements DocumentRepository using PostgreSQL. Document and
// line writes happen in one transaction together with the outbox inserts, so
// a posting either lands completely or not at all.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

const documentColumns = `
	id, tenant_id, kind, reference, doc_date, description, status, branch_id,
	created_by, posted_by, posted_at, voided_by, voided_at, void_reason,
	version, created_at, updated_at`

func (r *DocumentRepo) Create(ctx context.Context, doc model.LedgerDocument) error {
	return pgpkg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO ledger_documents (`+documentColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`, doc.ID(), doc.TenantID(), string(doc.Kind()), doc.Reference(), doc.DocDate(),
			doc.Description(), string(doc.Status()), nullUUID(doc.BranchID()),
			doc.CreatedBy(), nullUUID(doc.PostedBy()), nullTime(doc.PostedAt()),
			nullUUID(doc.VoidedBy()), nullTime(doc.VoidedAt()), doc.VoidReason(),
			doc.Version(), doc.CreatedAt(), doc.UpdatedAt())
		if err != nil {
			return fmt.Errorf("insert document: %w", err)
		}

		if err := insertLines(ctx, tx, doc); err != nil {
			return err
		}
		return insertOutbox(ctx, tx, doc)
	})
}

// Update persists a transitioned or edited document. The WHERE clause pins
// the stored row to the document's predecessor version; a concurrent
// transition makes the update match zero rows and the whole transaction
// rolls back with ErrVersionConflict.
func (r *DocumentRepo) Update(ctx context.Context, doc model.LedgerDocument) error {
	return pgpkg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// A posting must not land in a period that closes concurrently. The
		// advisory lock serializes this transaction against ClosePeriod,
		// which takes the same lock before writing the CLOSED row.
		if doc.Status() == model.StatusPosted {
			period := valueobject.FiscalPeriodFromTime(doc.DocDate())
			if err := lockFiscalPeriod(ctx, tx, doc.TenantID(), period); err != nil {
				return err
			}
			var closed bool
			err := tx.QueryRow(ctx, `
				SELECT EXISTS (
					SELECT 1 FROM fiscal_periods
					WHERE tenant_id = $1 AND year = $2 AND month = $3 AND status = $4
				)
			`, doc.TenantID(), period.Year(), int(period.Month()),
				string(valueobject.PeriodStatusClosed)).Scan(&closed)
			if err != nil {
				return fmt.Errorf("check fiscal period: %w", err)
			}
			if closed {
				return model.PeriodClosedError{Period: period.String()}
			}
		}

		tag, err := tx.Exec(ctx, `
			UPDATE ledger_documents SET
				doc_date = $3, description = $4, status = $5,
				posted_by = $6, posted_at = $7, voided_by = $8, voided_at = $9,
				void_reason = $10, version = $11, updated_at = $12
			WHERE tenant_id = $1 AND id = $2 AND version = $13
		`, doc.TenantID(), doc.ID(), doc.DocDate(), doc.Description(), string(doc.Status()),
			nullUUID(doc.PostedBy()), nullTime(doc.PostedAt()),
			nullUUID(doc.VoidedBy()), nullTime(doc.VoidedAt()), doc.VoidReason(),
			doc.Version(), doc.UpdatedAt(), doc.Version()-1)
		if err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return port.ErrVersionConflict
		}

		// Lines change only while the document is a draft; posted and voided
		// documents keep the lines they were posted with.
		if doc.Status() == model.StatusDraft {
			if _, err := tx.Exec(ctx, `DELETE FROM ledger_lines WHERE document_id = $1`, doc.ID()); err != nil {
				return fmt.Errorf("delete existing lines: %w", err)
			}
			if err := insertLines(ctx, tx, doc); err != nil {
				return err
			}
		}

		return insertOutbox(ctx, tx, doc)
	})
}

func insertLines(ctx context.Context, tx pgx.Tx, doc model.LedgerDocument) error {
	for i, line := range doc.Lines() {
		_, err := tx.Exec(ctx, `
			INSERT INTO ledger_lines (document_id, line_no, account_id, debit, credit, cost_center_id, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, doc.ID(), i+1, line.AccountID(), line.Debit(), line.Credit(),
			nullUUID(line.CostCenterID()), line.Description())
		if err != nil {
			return fmt.Errorf("insert line %d: %w", i, err)
		}
	}
	return nil
}

func insertOutbox(ctx context.Context, tx pgx.Tx, doc model.LedgerDocument) error {
	for _, evt := range doc.DomainEvents() {
		e := events.NewOutboxEntry(evt)
		_, err := tx.Exec(ctx, `
			INSERT INTO outbox (id, aggregate_id, aggregate_type, event_type, payload, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, e.ID, e.AggregateID, e.AggregateType, e.EventType, e.Payload, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert outbox event: %w", err)
		}
	}
	return nil
}

func (r *DocumentRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (model.LedgerDocument, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+documentColumns+`
		FROM ledger_documents WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LedgerDocument{}, model.NotFoundError{Entity: "ledger document", ID: id.String()}
		}
		return model.LedgerDocument{}, fmt.Errorf("query document: %w", err)
	}

	lines, err := r.loadLines(ctx, id)
	if err != nil {
		return model.LedgerDocument{}, err
	}

	return reconstructWithLines(doc, lines), nil
}

func (r *DocumentRepo) DeleteDraft(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM ledger_documents
		WHERE tenant_id = $1 AND id = $2 AND status = $3
	`, tenantID, id, string(model.StatusDraft))
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.NotFoundError{Entity: "draft document", ID: id.String()}
	}
	return nil
}

func (r *DocumentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit, offset int) ([]model.LedgerDocument, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM ledger_documents
		WHERE tenant_id = $1 AND doc_date >= $2 AND doc_date <= $3
	`, tenantID, from, to).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+documentColumns+`
		FROM ledger_documents
		WHERE tenant_id = $1 AND doc_date >= $2 AND doc_date <= $3
		ORDER BY doc_date DESC, id
		LIMIT $4 OFFSET $5
	`, tenantID, from, to, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []model.LedgerDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate documents: %w", err)
	}

	for i, doc := range docs {
		lines, err := r.loadLines(ctx, doc.ID())
		if err != nil {
			return nil, 0, err
		}
		docs[i] = reconstructWithLines(doc, lines)
	}

	return docs, total, nil
}

func (r *DocumentRepo) loadLines(ctx context.Context, documentID uuid.UUID) ([]valueobject.LedgerLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT account_id, debit, credit, cost_center_id, description
		FROM ledger_lines WHERE document_id = $1 ORDER BY line_no
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close()

	var lines []valueobject.LedgerLine
	for rows.Next() {
		var (
			accountID     uuid.UUID
			debit, credit decimal.Decimal
			costCenterID  *uuid.UUID
			desc          string
		)
		if err := rows.Scan(&accountID, &debit, &credit, &costCenterID, &desc); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		ccID := uuid.Nil
		if costCenterID != nil {
			ccID = *costCenterID
		}
		line, err := valueobject.NewLedgerLine(accountID, debit, credit, ccID, desc)
		if err != nil {
			return nil, fmt.Errorf("invalid stored line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func scanDocument(row pgx.Row) (model.LedgerDocument, error) {
	var (
		id, tenantID              uuid.UUID
		kind, reference, desc     string
		docDate                   time.Time
		status                    string
		branchID                  *uuid.UUID
		createdBy                 uuid.UUID
		postedBy, voidedBy        *uuid.UUID
		postedAt, voidedAt        *time.Time
		voidReason                string
		version                   int
		createdAt, updatedAt      time.Time
	)
	err := row.Scan(&id, &tenantID, &kind, &reference, &docDate, &desc, &status,
		&branchID, &createdBy, &postedBy, &postedAt, &voidedBy, &voidedAt,
		&voidReason, &version, &createdAt, &updatedAt)
	if err != nil {
		return model.LedgerDocument{}, err
	}

	return model.ReconstructLedgerDocument(
		id, tenantID, model.DocumentKind(kind), reference, docDate, desc,
		model.DocumentStatus(status), derefUUID(branchID), nil,
		createdBy, derefUUID(postedBy), derefTime(postedAt),
		derefUUID(voidedBy), derefTime(voidedAt), voidReason,
		version, createdAt, updatedAt,
	), nil
}

func reconstructWithLines(doc model.LedgerDocument, lines []valueobject.LedgerLine) model.LedgerDocument {
	return model.ReconstructLedgerDocument(
		doc.ID(), doc.TenantID(), doc.Kind(), doc.Reference(), doc.DocDate(),
		doc.Description(), doc.Status(), doc.BranchID(), lines,
		doc.CreatedBy(), doc.PostedBy(), doc.PostedAt(),
		doc.VoidedBy(), doc.VoidedAt(), doc.VoidReason(),
		doc.Version(), doc.CreatedAt(), doc.UpdatedAt(),
	)
}

func nullUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func derefUUID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
