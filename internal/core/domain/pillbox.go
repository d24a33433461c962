package domain

// Unowned is the owner reference of a pillbox not assigned to any patient.
const Unowned int64 = 0

// Pillbox is a tracked device, optionally assigned to a patient.
type Pillbox struct {
	ID      int64
	OwnerID int64
}

// Owned reports whether the pillbox is assigned to a patient.
func (p Pillbox) Owned() bool {
	return p.OwnerID != Unowned
}
