package seed

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecokart/internal/model"
)

// Apply inserts starter categories and a verified demo seller with a
// small verified catalog. Fixed primary keys plus OnConflict DoNothing
// keep it idempotent across restarts.
func Apply(db *gorm.DB) error {
	categories := []model.Category{
		{ID: 1, Name: "Eco-Friendly Home", Icon: "home"},
		{ID: 2, Name: "Sustainable Fashion", Icon: "shirt"},
		{ID: 3, Name: "Natural Beauty", Icon: "sparkles"},
		{ID: 4, Name: "Organic Food", Icon: "salad"},
		{ID: 5, Name: "Green Electronics", Icon: "device"},
		{ID: 6, Name: "Zero Waste", Icon: "recycle"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return err
	}

	var sellerUser model.User
	err := db.Where("email = ?", "seller@ecofarm.com").First(&sellerUser).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sellerUser = model.User{
			ID:        uuid.NewString(),
			Email:     "seller@ecofarm.com",
			FirstName: "John",
			LastName:  "Green",
		}
		if err := db.Create(&sellerUser).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	seller := model.Seller{
		ID:                1,
		UserID:            sellerUser.ID,
		BusinessName:      "EcoFarm Co.",
		CertificationType: "organic",
		IsVerified:        true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seller).Error; err != nil {
		return err
	}

	products := []model.Product{
		{
			ID: 1, SellerID: 1, CategoryID: 1,
			Name:            "Bamboo Toothbrush Set",
			Description:     "Biodegradable bamboo toothbrushes with soft bristles. Plastic-free packaging.",
			Price:           decimal.RequireFromString("12.99"),
			Co2SavedPerUnit: decimal.RequireFromString("2.5"),
			Stock:           50, IsActive: true, IsVerified: true,
		},
		{
			ID: 2, SellerID: 1, CategoryID: 1,
			Name:            "Reusable Glass Straws",
			Description:     "Set of 4 borosilicate glass straws with cleaning brush. Dishwasher safe.",
			Price:           decimal.RequireFromString("15.99"),
			Co2SavedPerUnit: decimal.RequireFromString("3.2"),
			Stock:           35, IsActive: true, IsVerified: true,
		},
		{
			ID: 3, SellerID: 1, CategoryID: 2,
			Name:            "Organic Cotton T-Shirt",
			Description:     "100% organic cotton t-shirt, fair trade certified.",
			Price:           decimal.RequireFromString("24.99"),
			Co2SavedPerUnit: decimal.RequireFromString("4.8"),
			Stock:           25, IsActive: true, IsVerified: true,
		},
		{
			ID: 4, SellerID: 1, CategoryID: 4,
			Name:            "Organic Quinoa (2lb)",
			Description:     "Certified organic quinoa from sustainable farms.",
			Price:           decimal.RequireFromString("16.99"),
			Co2SavedPerUnit: decimal.RequireFromString("6.2"),
			Stock:           30, IsActive: true, IsVerified: true,
		},
		{
			ID: 5, SellerID: 1, CategoryID: 5,
			Name:            "Solar Power Bank",
			Description:     "10,000mAh solar-powered portable charger.",
			Price:           decimal.RequireFromString("45.99"),
			Co2SavedPerUnit: decimal.RequireFromString("8.7"),
			Stock:           15, IsActive: true, IsVerified: true,
		},
		{
			ID: 6, SellerID: 1, CategoryID: 6,
			Name:            "Beeswax Food Wraps",
			Description:     "Set of 3 reusable beeswax wraps, a natural alternative to plastic wrap.",
			Price:           decimal.RequireFromString("22.99"),
			Co2SavedPerUnit: decimal.RequireFromString("5.4"),
			Stock:           45, IsActive: true, IsVerified: true,
		},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}
