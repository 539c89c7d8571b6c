package dto

import "github.com/shopspring/decimal"

type AddCartItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

type CheckoutResponse struct {
	Message      string          `json:"message"`
	OrderID      uint            `json:"orderId"`
	PointsEarned int             `json:"pointsEarned"`
	Co2Saved     decimal.Decimal `json:"co2Saved"`
}

type RegisterSellerRequest struct {
	BusinessName      string `json:"businessName"`
	CertificationType string `json:"certificationType"`
	CertificateURL    string `json:"certificateUrl"`
}

type CreateProductRequest struct {
	CategoryID      uint            `json:"categoryId"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"imageUrl"`
	Co2SavedPerUnit decimal.Decimal `json:"co2SavedPerUnit"`
	EcoRating       string          `json:"ecoRating"`
	Stock           int             `json:"stock"`
}

// Pointer fields so absent keys leave the column untouched.
type UpdateProductRequest struct {
	CategoryID      *uint            `json:"categoryId"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	ImageURL        *string          `json:"imageUrl"`
	Co2SavedPerUnit *decimal.Decimal `json:"co2SavedPerUnit"`
	EcoRating       *string          `json:"ecoRating"`
	Stock           *int             `json:"stock"`
}

type VerifySellerRequest struct {
	Approved bool `json:"approved"`
}

type VerifyProductRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type DonatePointsRequest struct {
	Points int `json:"points"`
}

type DonatePointsResponse struct {
	Message      string `json:"message"`
	TreesPlanted int    `json:"treesPlanted"`
}

type AddEmployeeRequest struct {
	Email string `json:"email"`
}

type RedeemPointsRequest struct {
	Points int    `json:"points"`
	Action string `json:"action"`
}

type RedeemPointsResponse struct {
	Message      string `json:"message"`
	TreesPlanted int    `json:"treesPlanted"`
}

type UserStatsResponse struct {
	TotalCo2Saved decimal.Decimal `json:"totalCo2Saved"`
	TotalPoints   int             `json:"totalPoints"`
}

type GlobalStatsResponse struct {
	TotalCo2Saved decimal.Decimal `json:"totalCo2Saved"`
	TreesPlanted  int             `json:"treesPlanted"`
	ActiveUsers   int64           `json:"activeUsers"`
}

type CompanyCo2StatsResponse struct {
	TotalCo2Saved decimal.Decimal `json:"totalCo2Saved"`
}

type CompanyDashboardStats struct {
	TotalEmployees int64           `json:"totalEmployees"`
	TotalOrders    int64           `json:"totalOrders"`
	TotalCo2Saved  decimal.Decimal `json:"totalCo2Saved"`
	TotalPoints    int64           `json:"totalPoints"`
	PointsRedeemed int64           `json:"pointsRedeemed"`
}
