package domain

// Patient is always attached to exactly one Doctor. The Pillbox link is owned
// by the pillbox side and is nil when the patient has none.
type Patient struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	PasswordHash string
	DoctorID     int64
	Pillbox      *Pillbox
}
