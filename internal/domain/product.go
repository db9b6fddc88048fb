package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryMedicinal Category = "medicinal"
	CategoryHerbal    Category = "herbal"
	CategoryAyurvedic Category = "ayurvedic"
	CategorySpice     Category = "spice"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMedicinal, CategoryHerbal, CategoryAyurvedic, CategorySpice:
		return true
	}
	return false
}

type Rating struct {
	Stars       float64 `bson:"stars" json:"stars"`
	ReviewCount int     `bson:"reviewCount" json:"reviewCount"`
}

// Product is catalog reference data. CatalogID is the human-assigned numeric
// identifier carried over from the seed data; ID is assigned by the store.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CatalogID      int64              `bson:"id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	ScientificName string             `bson:"scientificName,omitempty" json:"scientificName,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	MedicinalUses  string             `bson:"medicinalUses,omitempty" json:"medicinalUses,omitempty"`
	Habitat        string             `bson:"habitat,omitempty" json:"habitat,omitempty"`
	Cultivation    string             `bson:"cultivation,omitempty" json:"cultivation,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	PreviousPrice  float64            `bson:"previousPrice,omitempty" json:"previousPrice,omitempty"`
	Image          string             `bson:"image" json:"image"`
	Images         []string           `bson:"images,omitempty" json:"images,omitempty"`
	Properties     []string           `bson:"properties,omitempty" json:"properties,omitempty"`
	Category       Category           `bson:"category" json:"category"`
	Rating         Rating             `bson:"rating" json:"rating"`
	InStock        bool               `bson:"inStock" json:"inStock"`
	Featured       bool               `bson:"featured" json:"featured"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProductFilter narrows the catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Search   string
	Category Category
	MinPrice *float64
	MaxPrice *float64
	Featured bool
}
