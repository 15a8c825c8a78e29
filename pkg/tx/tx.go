package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html serialization_failure
const pgErrSerializationFailure = "40001"

// ErrSerialization возвращается, когда Postgres откатил транзакцию из-за конкурентной записи.
var ErrSerialization = errors.New("transaction serialization failure")

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal    *manager.Manager
	conflictErr error
}

type Option func(*Manager)

// WithConflictError задаёт доменную ошибку, которой дополнительно оборачивается ErrSerialization.
func WithConflictError(err error) Option {
	return func(m *Manager) {
		m.conflictErr = err
	}
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в Serializable транзакции. Ретраев нет: конфликт отдаётся вызывающему.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.Serializable}),
	)

	err := m.internal.DoWithSettings(ctx, txSettings, fn)
	if isSerializationFailure(err) {
		if m.conflictErr != nil {
			return fmt.Errorf("%w: %w: %w", m.conflictErr, ErrSerialization, err)
		}
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure
	}
	return false
}
