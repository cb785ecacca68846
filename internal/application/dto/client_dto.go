package dto

// CreateClientRequest new client of the press.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	PANNo   string `json:"pan_no"`
}

// UpdateClientRequest partial update; nil fields are left unchanged.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	PANNo   *string `json:"pan_no"`
}

// ClientResponse public view of a client.
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	PANNo   string `json:"pan_no"`
}
