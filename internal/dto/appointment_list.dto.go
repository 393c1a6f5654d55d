package dto

type AppointmentListDTO struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	StatusID        string  `json:"status_id"`
	Status          string  `json:"status"`
	StatusColor     string  `json:"status_color"`
	ClientID        string  `json:"client_id"`
	ClientName      string  `json:"client_name"`
	ServiceID       string  `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ServiceColor    string  `json:"service_color"`
	StaffID         string  `json:"staff_id"`
	StaffName       string  `json:"staff_name"`
}
