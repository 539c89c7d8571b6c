package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PointsActionEarned   = "earned"
	PointsActionRedeemed = "redeemed"
)

// User ids come from the identity provider's subject claim; locally
// created users (seed data) get uuids.
type User struct {
	ID              string          `gorm:"primaryKey;size:64" json:"id"`
	Email           string          `gorm:"size:255;uniqueIndex" json:"email"`
	FirstName       string          `gorm:"size:128" json:"firstName"`
	LastName        string          `gorm:"size:128" json:"lastName"`
	ProfileImageURL string          `json:"profileImageUrl"`
	TotalPoints     int             `gorm:"not null;default:0" json:"totalPoints"`
	TotalCo2Saved   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"totalCo2Saved"`
	CompanyID       *uint           `gorm:"index" json:"companyId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type Company struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Domain        string          `gorm:"size:255;uniqueIndex;not null" json:"domain"`
	Industry      string          `gorm:"size:128" json:"industry"`
	LogoURL       string          `json:"logoUrl"`
	TotalPoints   int             `gorm:"not null;default:0" json:"totalPoints"`
	TotalCo2Saved decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"totalCo2Saved"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Append-only; rows are never updated or deleted.
type CompanyPointsHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   uint      `gorm:"index;not null" json:"companyId"`
	Action      string    `gorm:"size:32;not null" json:"action"` // earned, redeemed
	Points      int       `gorm:"not null" json:"points"`
	Description string    `gorm:"size:255;not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Seller struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"size:64;uniqueIndex;not null" json:"userId"`
	BusinessName      string    `gorm:"size:255;not null" json:"businessName"`
	CertificationType string    `gorm:"size:128;not null" json:"certificationType"`
	CertificateURL    string    `json:"certificateUrl"`
	IsVerified        bool      `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:128;not null" json:"name"`
	Icon string `gorm:"size:32" json:"icon"`
}

// Buyer-visible iff IsActive AND IsVerified. Soft-deleted via IsActive.
type Product struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	SellerID          uint            `gorm:"index;not null" json:"sellerId"`
	CategoryID        uint            `gorm:"index;not null" json:"categoryId"`
	Name              string          `gorm:"size:255;not null" json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL          string          `json:"imageUrl"`
	Co2SavedPerUnit   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"co2SavedPerUnit"`
	EcoRating         string          `gorm:"size:16;default:0" json:"ecoRating"`
	Stock             int             `gorm:"not null;default:0" json:"stock"`
	IsActive          bool            `gorm:"not null" json:"isActive"`
	IsVerified        bool            `gorm:"not null;default:false" json:"isVerified"`
	VerificationNotes string          `json:"verificationNotes"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// One row per (user, product); repeated adds merge into Quantity.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`

	Product Product `json:"product"`
}

// Totals are snapshots computed at checkout and never recomputed.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"size:64;index;not null" json:"userId"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	TotalCo2Saved   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalCo2Saved"`
	Status          string          `gorm:"size:32;not null;default:pending" json:"status"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `gorm:"size:64" json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`

	Items []OrderItem `json:"items,omitempty"`
}

// Price and Co2Saved are copied from the product at checkout time,
// decoupled from later product edits.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"orderId"`
	ProductID uint            `gorm:"index;not null" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Co2Saved  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"co2Saved"`

	Product Product `json:"product"`
}

// One per order.
type Co2Contribution struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       string          `gorm:"size:64;index;not null" json:"userId"`
	OrderID      uint            `gorm:"index" json:"orderId"`
	Co2Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"co2Amount"`
	PointsEarned int             `gorm:"not null" json:"pointsEarned"`
	CreatedAt    time.Time       `json:"createdAt"`
}
