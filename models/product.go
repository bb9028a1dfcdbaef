package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the fixed set of product categories the store sells.
var Categories = []string{"Blender", "Toaster", "Coffee Maker", "Food Processor", "Juicer", "Mixer"}

// IsValidCategory reports whether c is one of the allowed categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Rating struct {
	UserID primitive.ObjectID `bson:"user" json:"user"`
	Rating int                `bson:"rating" json:"rating"`
	Review string             `bson:"review" json:"review"`
}

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	Price        float64            `bson:"price" json:"price"`
	Image        string             `bson:"image" json:"image"`
	Brand        string             `bson:"brand" json:"brand"`
	CountInStock int                `bson:"countInStock" json:"countInStock"`
	Ratings      []Rating           `bson:"ratings,omitempty" json:"ratings,omitempty"`
	NumReviews   int                `bson:"numReviews" json:"numReviews"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
