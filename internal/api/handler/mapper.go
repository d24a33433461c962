package handler

import (
	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

func (r doctorRequest) toInput() ports.ContactInput {
	return ports.ContactInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

func (r patientRequest) toInput() ports.PatientInput {
	return ports.PatientInput{
		ContactInput: ports.ContactInput{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Email:       r.Email,
			PhoneNumber: r.PhoneNumber,
		},
		DoctorID: r.DoctorID,
	}
}

func toPillboxResponse(p *domain.Pillbox) *pillboxResponse {
	if p == nil {
		return nil
	}
	return &pillboxResponse{ID: p.ID, OwnerID: p.OwnerID}
}

func toPatientResponse(p *domain.Patient) patientResponse {
	return patientResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		DoctorID:    p.DoctorID,
		Pillbox:     toPillboxResponse(p.Pillbox),
	}
}

func toPatientDetailResponse(p *domain.Patient) patientDetailResponse {
	return patientDetailResponse{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		DoctorID:    p.DoctorID,
		Pillbox:     toPillboxResponse(p.Pillbox),
	}
}

func toPatientResponses(patients []domain.Patient) []patientResponse {
	out := make([]patientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, toPatientResponse(&patients[i]))
	}
	return out
}

func toDoctorResponse(d *domain.Doctor) doctorResponse {
	return doctorResponse{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Patients:    toPatientResponses(d.Patients),
	}
}

func toDoctorDetailResponse(d *domain.Doctor) doctorDetailResponse {
	return doctorDetailResponse{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Patients:    toPatientResponses(d.Patients),
	}
}
