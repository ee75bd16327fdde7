package repository

import (
	"context"
	"errors"
	"fmt"

	"raffler/application"
	"raffler/database"
	"raffler/domain/interfaces"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db                     *database.DB
	tx                     pgx.Tx
	ctx                    context.Context
	transactionalPublisher interfaces.TransactionalEventPublisher
	sellerRepo             interfaces.SellerRepository
	raffleRepo             interfaces.RaffleRepository
	membershipRepo         interfaces.MembershipRepository
	numberRepo             interfaces.NumberRepository
	chatMessageRepo        interfaces.ChatMessageRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		db: db,
	}
}

// UnitOfWorkFactory creates database-backed units of work
type UnitOfWorkFactory struct {
	db *database.DB
}

// CreateWithPublisher creates a new UnitOfWork whose events go through the given transactional publisher
func (f *UnitOfWorkFactory) CreateWithPublisher(transactionalPublisher interfaces.TransactionalEventPublisher) application.UnitOfWork {
	return &unitOfWork{
		db:                     f.db,
		transactionalPublisher: transactionalPublisher,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.sellerRepo = newSellerRepositoryWithTx(tx)
	u.raffleRepo = newRaffleRepositoryWithTx(tx)
	u.membershipRepo = newMembershipRepositoryWithTx(tx)
	u.numberRepo = newNumberRepositoryWithTx(tx)
	u.chatMessageRepo = newChatMessageRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction, then flushes pending events
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Events are best-effort once the data is committed
	if u.transactionalPublisher != nil {
		if err := u.transactionalPublisher.Flush(u.ctx); err != nil {
			log.WithError(err).Warn("Failed to flush events after commit")
		}
	}

	return nil
}

// Rollback rolls back the transaction. Safe to call after Commit.
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Discard()
	}

	return nil
}

// SellerRepository returns the seller repository for this unit of work
func (u *unitOfWork) SellerRepository() interfaces.SellerRepository {
	if u.sellerRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.sellerRepo
}

// RaffleRepository returns the raffle repository for this unit of work
func (u *unitOfWork) RaffleRepository() interfaces.RaffleRepository {
	if u.raffleRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.raffleRepo
}

// MembershipRepository returns the membership repository for this unit of work
func (u *unitOfWork) MembershipRepository() interfaces.MembershipRepository {
	if u.membershipRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.membershipRepo
}

// NumberRepository returns the number repository for this unit of work
func (u *unitOfWork) NumberRepository() interfaces.NumberRepository {
	if u.numberRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.numberRepo
}

// ChatMessageRepository returns the chat message repository for this unit of work
func (u *unitOfWork) ChatMessageRepository() interfaces.ChatMessageRepository {
	if u.chatMessageRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.chatMessageRepo
}

// EventBus returns the transactional event publisher for this unit of work
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	if u.transactionalPublisher == nil {
		panic("unit of work has no event publisher")
	}
	return u.transactionalPublisher
}
