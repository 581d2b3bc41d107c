package domain

// Doctor is a bookable professional from the static directory.
type Doctor struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// Directory returns the fixed list of available doctors.
func Directory() []Doctor {
	return []Doctor{
		{Name: "Dr. Ananya Sharma", Specialization: "Psychiatrist"},
		{Name: "Dr. Rahul Mehta", Specialization: "Clinical Psychologist"},
		{Name: "Dr. Neha Verma", Specialization: "Counselor"},
	}
}
