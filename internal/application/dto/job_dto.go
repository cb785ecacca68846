package dto

// CreateJobRequest new print job. JobNo is assigned from the per-tenant
// counter, not taken from the request.
type CreateJobRequest struct {
	Name         string `json:"name"`
	ClientID     string `json:"client_id"`
	Quantity     int64  `json:"quantity"`
	Description  string `json:"description"`
	DeliveryDate string `json:"delivery_date"`
}

// UpdateJobRequest partial update; nil fields are left unchanged.
type UpdateJobRequest struct {
	Name         *string `json:"name"`
	Quantity     *int64  `json:"quantity"`
	Description  *string `json:"description"`
	DeliveryDate *string `json:"delivery_date"`
	Status       *string `json:"status"`
}

// JobResponse public view of a job.
type JobResponse struct {
	ID           string `json:"id"`
	JobNo        string `json:"job_no"`
	Name         string `json:"name"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	Quantity     int64  `json:"quantity"`
	Description  string `json:"description"`
	DeliveryDate string `json:"delivery_date"`
	Status       string `json:"status"`
}
