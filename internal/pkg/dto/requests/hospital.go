package requests

type HospitalService struct {
	Code    string `json:"code"`
	Display string `json:"display"`
}

// HospitalDocument references an uploaded prescription or registration file
// by its stored object key; the retrieval URL is minted at encode time.
type HospitalDocument struct {
	FileKey     string `json:"fileKey"`
	ContentType string `json:"contentType"`
	Title       string `json:"title"`
}

type HospitalProfileRequest struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name" validate:"required"`
	Phone              string             `json:"phone"`
	Email              string             `json:"email"`
	AddressLine        string             `json:"addressLine"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	PostalCode         string             `json:"postalCode"`
	Country            string             `json:"country"`
	Latitude           *float64           `json:"latitude,omitempty"`
	Longitude          *float64           `json:"longitude,omitempty"`
	Active             bool               `json:"active"`
	RegistrationNumber string             `json:"registrationNumber,omitempty"`
	EstablishmentYear  *int               `json:"establishmentYear,omitempty"`
	Website            string             `json:"website,omitempty"`
	LogoKey            string             `json:"logoKey,omitempty"`
	SelectedServices   []HospitalService  `json:"selectedServices,omitempty"`
	Documents          []HospitalDocument `json:"documents,omitempty"`
}
