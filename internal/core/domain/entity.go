package domain

// Entity names one of the three record kinds managed by the service.
type Entity string

const (
	EntityDoctor  Entity = "doctor"
	EntityPatient Entity = "patient"
	EntityPillbox Entity = "pillbox"
)

func (e Entity) String() string { return string(e) }
