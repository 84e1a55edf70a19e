package debt

import "time"

type CreateListingInput struct {
	SellerUserID   string
	Title          string
	PrincipalCents int64
	InitialRate    float64
	// Zero means "default to the principal".
	TargetCents int64
}

type ListingDTO struct {
	ListingID          string    `json:"listing_id"`
	Title              string    `json:"title"`
	Principal          string    `json:"principal"`
	PrincipalCents     int64     `json:"principal_cents"`
	OriginationRate    float64   `json:"origination_rate"`
	CurrentRate        float64   `json:"current_rate"`
	TargetCents        int64     `json:"target_cents"`
	TotalInvestedCents int64     `json:"total_invested_cents"`
	CreatedAt          time.Time `json:"created_at"`
}

type PositionDTO struct {
	PositionID     string    `json:"position_id"`
	ListingID      string    `json:"listing_id"`
	OwnerUserID    string    `json:"owner_user_id"`
	PrincipalCents int64     `json:"principal_cents"`
	Active         bool      `json:"active"`
	// Listing state right after this settlement.
	ListingRate        float64   `json:"listing_rate"`
	TotalInvestedCents int64     `json:"total_invested_cents"`
	CreatedAt          time.Time `json:"created_at"`
}
