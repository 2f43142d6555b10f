package store

import (
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
)

// Cart lifecycle actions.
type (
	LoadCart struct {
		UserID string
		CartID string
	}
	LoadCartSuccess struct {
		Cart   domain.Cart
		Flight uint64
	}
	LoadCartFail struct {
		Error  *domain.ErrorPayload
		Flight uint64
	}

	// CreateCart creates a cart for UserID. OldCartID, when set, is the
	// anonymous cart the backend merges into the new one.
	CreateCart struct {
		UserID          string
		OldCartID       string
		ToMergeCartGUID string
	}
	CreateCartSuccess struct {
		Cart      domain.Cart
		OldCartID string
		Flight    uint64
	}
	CreateCartFail struct {
		Error  *domain.ErrorPayload
		Flight uint64
	}

	MergeCart struct {
		UserID string
		CartID string
	}
	MergeCartSuccess struct {
		UserID string
		CartID string
	}

	DeleteCart struct {
		UserID string
		CartID string
	}
	DeleteCartSuccess struct{ Flight uint64 }
	DeleteCartFail    struct {
		Error  *domain.ErrorPayload
		Flight uint64
	}

	// ClearCart drops the active cart without a backend call.
	ClearCart struct{}
)

func (LoadCart) Kind() Kind          { return "[Cart] Load Cart" }
func (LoadCartSuccess) Kind() Kind   { return "[Cart] Load Cart Success" }
func (LoadCartFail) Kind() Kind      { return "[Cart] Load Cart Fail" }
func (CreateCart) Kind() Kind        { return "[Cart] Create Cart" }
func (CreateCartSuccess) Kind() Kind { return "[Cart] Create Cart Success" }
func (CreateCartFail) Kind() Kind    { return "[Cart] Create Cart Fail" }
func (MergeCart) Kind() Kind         { return "[Cart] Merge Cart" }
func (MergeCartSuccess) Kind() Kind  { return "[Cart] Merge Cart Success" }
func (DeleteCart) Kind() Kind        { return "[Cart] Delete Cart" }
func (DeleteCartSuccess) Kind() Kind { return "[Cart] Delete Cart Success" }
func (DeleteCartFail) Kind() Kind    { return "[Cart] Delete Cart Fail" }
func (ClearCart) Kind() Kind         { return "[Cart] Clear Cart" }

func (LoadCart) Target() loader.Meta { return slot(EntityCart, loader.PhaseLoad) }

func (a LoadCartSuccess) Target() loader.Meta {
	m := slot(EntityCart, loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a LoadCartFail) Target() loader.Meta {
	m := slot(EntityCart, loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (CreateCart) Target() loader.Meta { return slot(EntityCart, loader.PhaseLoad) }

func (a CreateCartSuccess) Target() loader.Meta {
	m := slot(EntityCart, loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a CreateCartFail) Target() loader.Meta {
	m := slot(EntityCart, loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (DeleteCart) Target() loader.Meta { return process(ProcessDeleteCart, loader.PhaseLoad) }

func (a DeleteCartSuccess) Target() loader.Meta {
	m := process(ProcessDeleteCart, loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a DeleteCartFail) Target() loader.Meta {
	m := process(ProcessDeleteCart, loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

// Cart entry actions. They are not single-flight: every add must reach the
// backend so per-entry rules (stock, max quantity) apply.
type (
	AddEntry struct {
		UserID      string
		CartID      string
		ProductCode string
		Quantity    int
	}
	AddEntrySuccess struct {
		UserID      string
		CartID      string
		ProductCode string
		Quantity    int
	}
	AddEntryFail struct {
		UserID string
		CartID string
		Error  *domain.ErrorPayload
	}

	UpdateEntry struct {
		UserID      string
		CartID      string
		EntryNumber int
		Quantity    int
	}
	UpdateEntrySuccess struct {
		UserID string
		CartID string
	}
	UpdateEntryFail struct {
		UserID string
		CartID string
		Error  *domain.ErrorPayload
	}

	RemoveEntry struct {
		UserID      string
		CartID      string
		EntryNumber int
	}
	RemoveEntrySuccess struct {
		UserID string
		CartID string
	}
	RemoveEntryFail struct {
		UserID string
		CartID string
		Error  *domain.ErrorPayload
	}
)

func (AddEntry) Kind() Kind           { return "[Cart-entry] Add Entry" }
func (AddEntrySuccess) Kind() Kind    { return "[Cart-entry] Add Entry Success" }
func (AddEntryFail) Kind() Kind       { return "[Cart-entry] Add Entry Fail" }
func (UpdateEntry) Kind() Kind        { return "[Cart-entry] Update Entry" }
func (UpdateEntrySuccess) Kind() Kind { return "[Cart-entry] Update Entry Success" }
func (UpdateEntryFail) Kind() Kind    { return "[Cart-entry] Update Entry Fail" }
func (RemoveEntry) Kind() Kind        { return "[Cart-entry] Remove Entry" }
func (RemoveEntrySuccess) Kind() Kind { return "[Cart-entry] Remove Entry Success" }
func (RemoveEntryFail) Kind() Kind    { return "[Cart-entry] Remove Entry Fail" }

// Voucher and guest e-mail actions, tracked as processes.
type (
	AddVoucher struct {
		UserID    string
		CartID    string
		VoucherID string
	}
	AddVoucherSuccess struct {
		UserID    string
		CartID    string
		VoucherID string
		Flight    uint64
	}
	AddVoucherFail struct {
		UserID    string
		CartID    string
		VoucherID string
		Error     *domain.ErrorPayload
		Flight    uint64
	}
	// ResetAddVoucher clears the add process of VoucherID, or of every
	// voucher when VoucherID is empty.
	ResetAddVoucher struct{ VoucherID string }

	RemoveVoucher struct {
		UserID    string
		CartID    string
		VoucherID string
	}
	RemoveVoucherSuccess struct {
		UserID    string
		CartID    string
		VoucherID string
		Flight    uint64
	}
	RemoveVoucherFail struct {
		UserID    string
		CartID    string
		VoucherID string
		Error     *domain.ErrorPayload
		Flight    uint64
	}
	// ResetRemoveVoucher clears the remove process of VoucherID, or of
	// every voucher when VoucherID is empty.
	ResetRemoveVoucher struct{ VoucherID string }

	AddEmail struct {
		UserID string
		CartID string
		Email  string
	}
	AddEmailSuccess struct {
		UserID string
		CartID string
		Flight uint64
	}
	AddEmailFail struct {
		Error  *domain.ErrorPayload
		Flight uint64
	}
)

func (AddVoucher) Kind() Kind           { return "[Cart-voucher] Add Cart Vouchers" }
func (AddVoucherSuccess) Kind() Kind    { return "[Cart-voucher] Add Cart Vouchers Success" }
func (AddVoucherFail) Kind() Kind       { return "[Cart-voucher] Add Cart Vouchers Fail" }
func (ResetAddVoucher) Kind() Kind      { return "[Cart-voucher] Reset Add Cart Vouchers Process" }
func (RemoveVoucher) Kind() Kind        { return "[Cart-voucher] Remove Cart Voucher" }
func (ResetRemoveVoucher) Kind() Kind   { return "[Cart-voucher] Reset Remove Cart Voucher Process" }
func (RemoveVoucherSuccess) Kind() Kind { return "[Cart-voucher] Remove Cart Voucher Success" }
func (RemoveVoucherFail) Kind() Kind    { return "[Cart-voucher] Remove Cart Voucher Fail" }
func (AddEmail) Kind() Kind             { return "[Cart] Add Email to Cart" }
func (AddEmailSuccess) Kind() Kind      { return "[Cart] Add Email to Cart Success" }
func (AddEmailFail) Kind() Kind         { return "[Cart] Add Email to Cart Fail" }

func (a AddVoucher) Target() loader.Meta {
	return process(ProcessKey(ProcessAddVoucher, a.VoucherID), loader.PhaseLoad)
}

func (a AddVoucherSuccess) Target() loader.Meta {
	m := process(ProcessKey(ProcessAddVoucher, a.VoucherID), loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a AddVoucherFail) Target() loader.Meta {
	m := process(ProcessKey(ProcessAddVoucher, a.VoucherID), loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (a ResetAddVoucher) Target() loader.Meta {
	return process(ProcessKey(ProcessAddVoucher, a.VoucherID), loader.PhaseReset)
}

func (a RemoveVoucher) Target() loader.Meta {
	return process(ProcessKey(ProcessRemoveVoucher, a.VoucherID), loader.PhaseLoad)
}

func (a RemoveVoucherSuccess) Target() loader.Meta {
	m := process(ProcessKey(ProcessRemoveVoucher, a.VoucherID), loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a RemoveVoucherFail) Target() loader.Meta {
	m := process(ProcessKey(ProcessRemoveVoucher, a.VoucherID), loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (a ResetRemoveVoucher) Target() loader.Meta {
	return process(ProcessKey(ProcessRemoveVoucher, a.VoucherID), loader.PhaseReset)
}

func (AddEmail) Target() loader.Meta { return process(ProcessAddEmail, loader.PhaseLoad) }

func (a AddEmailSuccess) Target() loader.Meta {
	m := process(ProcessAddEmail, loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a AddEmailFail) Target() loader.Meta {
	m := process(ProcessAddEmail, loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}
