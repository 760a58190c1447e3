package dto

type RequestMagicLinkDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type RequestOtpDTO struct {
	Phone string `json:"phone" validate:"required,us_phone"`
}

type ConsumeOtpDTO struct {
	Code string `json:"code" validate:"required,numeric"`
}
