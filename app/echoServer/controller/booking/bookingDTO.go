package booking

type CreateBookingReq struct {
	PropertyID string  `json:"property_id" validate:"required"`
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    *string `json:"end_date"`
}

type SetStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed rejected completed"`
}

type SetPaymentStatusReq struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid refunded"`
}
