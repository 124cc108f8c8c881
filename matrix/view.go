// SPDX-License-Identifier: MIT

// Package matrix - storage kinds & borrow ledger.
//
// Purpose:
//   - Model the three storage kinds of a handle (owned buffer, immutable view,
//     mutable view) as a closed set behind one unexported interface.
//   - Enforce the aliasing discipline at runtime: any number of immutable
//     borrows XOR exactly one mutable borrow per lending handle.
//
// Ledger rules:
//   - Every handle owns a ledger of the borrows it has lent out.
//   - A view additionally links to the ledger of the handle it borrowed from.
//   - Lending immutably requires no outstanding mutable borrow.
//   - Lending mutably requires a writable handle with no outstanding borrows.
//   - A handle that lent mutably is frozen (no reads, no writes) until the
//     borrow is released; a handle that lent immutably is read-only.

package matrix

// Kind identifies the storage kind of a handle.
type Kind int

const (
	// Owned handles own their buffer exclusively.
	Owned Kind = iota
	// Borrowed handles are immutable views into another handle's buffer.
	Borrowed
	// BorrowedMut handles are mutable views into another handle's buffer.
	BorrowedMut
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Owned:
		return "Owned"
	case Borrowed:
		return "Borrowed"
	case BorrowedMut:
		return "BorrowedMut"
	default:
		return "Kind(?)"
	}
}

// storage is the single access interface over the three storage kinds.
// The buffer slice is always the full underlying buffer; the handle's offset
// and stride locate its window inside it.
type storage interface {
	kind() Kind
	ref() []float64
	mut() ([]float64, error)
	take() ([]float64, error)
	owning() bool
}

type (
	ownedBuf  struct{ data []float64 }
	sharedBuf struct{ data []float64 }
	mutBuf    struct{ data []float64 }
)

var (
	_ storage = ownedBuf{}
	_ storage = sharedBuf{}
	_ storage = mutBuf{}
)

func (b ownedBuf) kind() Kind               { return Owned }
func (b ownedBuf) ref() []float64           { return b.data }
func (b ownedBuf) mut() ([]float64, error)  { return b.data, nil }
func (b ownedBuf) take() ([]float64, error) { return b.data, nil }
func (b ownedBuf) owning() bool             { return true }

func (b sharedBuf) kind() Kind               { return Borrowed }
func (b sharedBuf) ref() []float64           { return b.data }
func (b sharedBuf) mut() ([]float64, error)  { return nil, ErrReadOnly }
func (b sharedBuf) take() ([]float64, error) { return nil, ErrNotOwner }
func (b sharedBuf) owning() bool             { return false }

func (b mutBuf) kind() Kind               { return BorrowedMut }
func (b mutBuf) ref() []float64           { return b.data }
func (b mutBuf) mut() ([]float64, error)  { return b.data, nil }
func (b mutBuf) take() ([]float64, error) { return nil, ErrNotOwner }
func (b mutBuf) owning() bool             { return false }

// ledger records the borrows a handle has lent out, and whether the handle
// itself is still usable.
type ledger struct {
	shared    int  // outstanding immutable borrows
	exclusive bool // outstanding mutable borrow
	released  bool // handle released (view) or moved out (owner)
}

// checkRead reports whether m may be read.
func (m *Mat) checkRead() error {
	if m == nil || m.ledger == nil || m.buf == nil {
		return ErrNilMatrix
	}
	if m.ledger.released {
		return ErrReleased
	}
	if m.ledger.exclusive {
		return ErrBorrowConflict
	}

	return nil
}

// checkUnshared reports whether m may be read and has no outstanding borrows.
// It guards operations that change the handle itself (move, flag flips).
func (m *Mat) checkUnshared() error {
	if err := m.checkRead(); err != nil {
		return err
	}
	if m.ledger.shared > 0 {
		return ErrBorrowConflict
	}

	return nil
}

// checkWrite reports whether m's cells may be written.
func (m *Mat) checkWrite() error {
	if err := m.checkUnshared(); err != nil {
		return err
	}
	if m.buf.kind() == Borrowed {
		return ErrReadOnly
	}

	return nil
}

// lend records a new borrow of m and returns the storage for the borrower.
func (m *Mat) lend(mutable bool) (storage, error) {
	if mutable {
		if err := m.checkWrite(); err != nil {
			return nil, err
		}
		data, err := m.buf.mut()
		if err != nil {
			return nil, err
		}
		m.ledger.exclusive = true

		return mutBuf{data: data}, nil
	}
	if err := m.checkRead(); err != nil {
		return nil, err
	}
	m.ledger.shared++

	return sharedBuf{data: m.buf.ref()}, nil
}

// Release ends the borrow held by a view and makes the view unusable.
// Releasing an owner is a no-op; releasing twice is a no-op.
// A view that still has outstanding borrows of its own cannot be released.
func (m *Mat) Release() error {
	if m == nil || m.ledger == nil || m.buf == nil {
		return matErrorf("Release", ErrNilMatrix)
	}
	if m.lender == nil || m.ledger.released {
		return nil
	}
	if m.ledger.shared > 0 || m.ledger.exclusive {
		return matErrorf("Release", ErrBorrowConflict)
	}
	if m.buf.kind() == BorrowedMut {
		m.lender.exclusive = false
	} else {
		m.lender.shared--
	}
	m.ledger.released = true

	return nil
}
