package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"bankledger/internal/core"
)

// JournalStore is the sqlite backed core.Journal. It is an audit trail only;
// the ledger never reads its state back from it.
type JournalStore struct {
	db *sql.DB
}

func NewJournalStore(db *sql.DB) JournalStore {
	return JournalStore{
		db: db,
	}
}

func (s JournalStore) Record(ctx context.Context, entry core.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (
			id,
			holder_name,
			account_number,
			kind,
			amount,
			fee,
			balance,
			description,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID.String(),
		entry.Holder,
		entry.AccountNumber,
		string(entry.Kind),
		entry.Amount.String(),
		entry.Fee.String(),
		entry.Balance.String(),
		entry.Description,
		entry.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

// ListByHolder returns every entry of holder in recording order.
func (s JournalStore) ListByHolder(ctx context.Context, holder string) ([]core.JournalEntry, error) {
	query := `
		SELECT id, holder_name, account_number, kind, amount, fee, balance, description, created_at
		FROM journal_entries
		WHERE holder_name = ?
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query, core.NormalizeName(holder))
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []core.JournalEntry
	for rows.Next() {
		var (
			entry core.JournalEntry
			kind  string
		)

		err = rows.Scan(
			&entry.ID,
			&entry.Holder,
			&entry.AccountNumber,
			&kind,
			&entry.Amount,
			&entry.Fee,
			&entry.Balance,
			&entry.Description,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		entry.Kind = core.OperationKind(kind)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}

	return entries, nil
}
