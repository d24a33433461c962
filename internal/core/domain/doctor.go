package domain

// Doctor is a practitioner record. Patients is populated on reads only.
type Doctor struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	PasswordHash string
	Patients     []Patient
}
