package store

import (
	"github.com/google/uuid"

	"github.com/shashiranjanraj/chronoluxe/app/models"
)

// SeedCatalog inserts the sample watch catalogue into an empty store.
// It is a no-op when any products already exist. Returns the number of
// products inserted.
func SeedCatalog(s *Store) int {
	if _, products, _ := s.Counts(); products > 0 {
		return 0
	}

	for _, p := range sampleCatalog() {
		p.ID = uuid.NewString()
		s.InsertProduct(p)
	}
	return len(sampleCatalog())
}

func sampleCatalog() []models.Product {
	return []models.Product{
		{
			Name:        "Patek Philippe Calatrava",
			Brand:       "Patek Philippe",
			Description: "The epitome of dress watches, featuring a timeless design with exceptional craftsmanship.",
			Price:       24500,
			Currency:    "USD",
			Image:       "watch1.jpg",
			Category:    "watches",
			Stock:       3,
			Featured:    true,
			Specifications: map[string]string{
				"movement":        "Automatic",
				"case":            "39mm White Gold",
				"waterResistance": "30m",
				"crystal":         "Sapphire",
			},
		},
		{
			Name:        "Rolex Submariner",
			Brand:       "Rolex",
			Description: "The iconic diving watch that defined the genre, built for performance and style.",
			Price:       12800,
			Currency:    "USD",
			Image:       "watch2.jpg",
			Category:    "watches",
			Stock:       5,
			Featured:    true,
			Specifications: map[string]string{
				"movement":        "Automatic",
				"case":            "41mm Stainless Steel",
				"waterResistance": "300m",
				"crystal":         "Sapphire",
			},
		},
		{
			Name:        "Omega Seamaster",
			Brand:       "Omega",
			Description: "Professional diving watch with legendary heritage and cutting-edge technology.",
			Price:       6200,
			Currency:    "USD",
			Image:       "watch3.jpg",
			Category:    "watches",
			Stock:       8,
			Featured:    true,
			Specifications: map[string]string{
				"movement":        "Co-Axial Automatic",
				"case":            "42mm Stainless Steel",
				"waterResistance": "300m",
				"crystal":         "Sapphire",
			},
		},
		{
			Name:        "Audemars Piguet Royal Oak",
			Brand:       "Audemars Piguet",
			Description: "Revolutionary luxury sports watch with iconic octagonal bezel design.",
			Price:       32000,
			Currency:    "USD",
			Image:       "watch4.jpg",
			Category:    "watches",
			Stock:       2,
			Featured:    true,
			Specifications: map[string]string{
				"movement":        "Automatic",
				"case":            "41mm Stainless Steel",
				"waterResistance": "50m",
				"crystal":         "Sapphire",
			},
		},
		{
			Name:        "Cartier Tank Française",
			Brand:       "Cartier",
			Description: "Elegant rectangular timepiece with Art Deco-inspired design.",
			Price:       8900,
			Currency:    "USD",
			Image:       "watch5.jpg",
			Category:    "watches",
			Stock:       4,
			Featured:    false,
			Specifications: map[string]string{
				"movement":        "Quartz",
				"case":            "32mm Stainless Steel",
				"waterResistance": "30m",
				"crystal":         "Sapphire",
			},
		},
		{
			Name:        "IWC Portugieser",
			Brand:       "IWC",
			Description: "Classic dress watch known for its clean dial and precision movement.",
			Price:       9400,
			Currency:    "USD",
			Image:       "watch6.jpg",
			Category:    "watches",
			Stock:       6,
			Featured:    false,
			Specifications: map[string]string{
				"movement":        "Automatic",
				"case":            "41mm Stainless Steel",
				"waterResistance": "30m",
				"crystal":         "Sapphire",
			},
		},
		{
			Name:        "Jaeger-LeCoultre Reverso",
			Brand:       "Jaeger-LeCoultre",
			Description: "Iconic reversible case watch with Art Deco elegance.",
			Price:       11200,
			Currency:    "USD",
			Image:       "watch7.jpg",
			Category:    "watches",
			Stock:       3,
			Featured:    false,
			Specifications: map[string]string{
				"movement":        "Manual",
				"case":            "42mm Stainless Steel",
				"waterResistance": "30m",
				"crystal":         "Sapphire",
			},
		},
		{
			Name:        "Vacheron Constantin Patrimony",
			Brand:       "Vacheron Constantin",
			Description: "Ultra-thin dress watch representing the pinnacle of haute horlogerie.",
			Price:       28500,
			Currency:    "USD",
			Image:       "watch8.jpg",
			Category:    "watches",
			Stock:       2,
			Featured:    true,
			Specifications: map[string]string{
				"movement":        "Manual",
				"case":            "40mm White Gold",
				"waterResistance": "30m",
				"crystal":         "Sapphire",
			},
		},
	}
}
