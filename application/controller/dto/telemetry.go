package dto

// LogAccessDTO records a lead requesting access. Location hints are
// client-consented approximations, never derived server-side.
type LogAccessDTO struct {
	Email         string   `json:"email" validate:"required,email"`
	Phone         *string  `json:"phone"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
	ApproxCity    *string  `json:"approxCity"`
	ApproxRegion  *string  `json:"approxRegion"`
	ApproxCountry *string  `json:"approxCountry"`
	Referrer      *string  `json:"referrer"`
}

// LogValuationDTO records a valuation run: the inputs plus whatever outputs
// the client received and passes back.
type LogValuationDTO struct {
	Email             *string  `json:"email" validate:"omitempty,email"`
	Ebitda            float64  `json:"ebitda" validate:"required"`
	DebtPct           *float64 `json:"debtPct"`
	Industry          *string  `json:"industry"`
	EnterpriseValue   *float64 `json:"enterpriseValue"`
	ExpectedValuation *float64 `json:"expectedValuation"`
	ExpectedLow       *float64 `json:"expectedLow"`
	ExpectedHigh      *float64 `json:"expectedHigh"`
	BandLabel         *string  `json:"bandLabel"`
	Notes             *string  `json:"notes"`
}
