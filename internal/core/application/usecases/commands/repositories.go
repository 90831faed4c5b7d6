// Package commands contains the write operations of the parcel lifecycle:
// each state transition is a command with a handler that loads the affected
// aggregates, runs the domain transition, and persists the resulting write
// set inside one unit of work.
package commands

import (
	"context"

	"parcelpilot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the narrowest combination of
// repositories its transition touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// TrackingUoW manages transactions for tracking-trail appends.
	TrackingUoW interface {
		TxManager
		TrackingRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// DeliveryUoW manages the compound parcel+rider transitions
	// (rider assignment and delivery completion). Both writes commit or
	// roll back as one.
	DeliveryUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PaymentUoW manages the payment confirmation transition
	// (payment insert + parcel update) as one transaction.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		ParcelRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// RiderAccountUoW is used by the rider status review: the rider write and
	// the user-role sync are two separate writes sharing one factory; the
	// sync point is documented on the handler.
	RiderAccountUoW interface {
		TxManager
		RiderRepoFactory
		AccountRepoFactory
	}

	// RiderAccountUoWFactory creates new rider+account unit of work instances.
	RiderAccountUoWFactory interface {
		Create() RiderAccountUoW
	}
)
