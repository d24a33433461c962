package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type doctorRequest struct {
	FirstName   string `json:"first_name"   validate:"required"`
	LastName    string `json:"last_name"    validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type patientRequest struct {
	FirstName   string `json:"first_name"   validate:"required"`
	LastName    string `json:"last_name"    validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	DoctorID    int64  `json:"doctor_id"    validate:"required,gt=0"`
}

type pillboxUpdateRequest struct {
	OwnerID *int64 `json:"owner_id" validate:"required,gte=0"`
}

// --- Response types ---

type pillboxResponse struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"owner_id"`
}

type pillboxDetailResponse struct {
	OwnerID int64 `json:"owner_id"`
}

type patientResponse struct {
	ID          int64            `json:"id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phone_number"`
	DoctorID    int64            `json:"doctor_id"`
	Pillbox     *pillboxResponse `json:"pillbox"`
}

type patientDetailResponse struct {
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phone_number"`
	DoctorID    int64            `json:"doctor_id"`
	Pillbox     *pillboxResponse `json:"pillbox"`
}

type patientCreatedResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	DoctorID    int64  `json:"doctor_id"`
	Password    string `json:"password"`
}

type doctorResponse struct {
	ID          int64             `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phone_number"`
	Patients    []patientResponse `json:"patients"`
}

type doctorDetailResponse struct {
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phone_number"`
	Patients    []patientResponse `json:"patients"`
}

type doctorCreatedResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}
