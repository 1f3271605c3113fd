package technician

// TechnicianCreateRequest registers a new technician. Skills is a comma
// separated list as typed by the admin.
type TechnicianCreateRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Skills string `json:"skills"`
}
