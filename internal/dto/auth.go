package dto

type RegisterRequestDTO struct {
	Login     string `json:"login" example:"s.kumar"`
	Password  string `json:"password" example:"secret"`
	FirstName string `json:"first_name" example:"Sanjay"`
	LastName  string `json:"last_name" example:"Kumar"`
	Role      string `json:"role,omitempty" example:"STUDENT"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"s.kumar"`
	Password string `json:"password" example:"secret"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}
