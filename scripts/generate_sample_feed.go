//go:build ignore

// Writes a small gzipped catalogue feed for local development:
//
//	go run scripts/generate_sample_feed.go
//	go run ./cmd/seed
package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"alsayed-store/internal/model"

	"github.com/shopspring/decimal"
)

func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	now := time.Now().UTC()
	products := []model.Product{
		{
			ID: "oud-royal", Slug: "oud-royal", NameEn: "Oud Royal", NameAr: "عود ملكي",
			Category:      model.CategoryMen,
			DescriptionEn: "Smoky agarwood over a warm amber base.",
			DescriptionAr: "خشب العود المدخن على قاعدة عنبر دافئة.",
			TopNotes:      []string{"Saffron", "Cardamom"},
			HeartNotes:    []string{"Oud", "Rose"},
			BaseNotes:     []string{"Amber", "Musk"},
			Sizes:         sizes("50ml", "180", "100ml", "290"),
			Images:        []string{"/images/oud-royal.jpg"},
			Featured:      true,
			CreatedAt:     now.Add(-72 * time.Hour),
		},
		{
			ID: "rose-musk", Slug: "rose-musk", NameEn: "Rose Musk", NameAr: "مسك الورد",
			Category:      model.CategoryWomen,
			DescriptionEn: "Damask rose softened with white musk.",
			DescriptionAr: "الورد الدمشقي مع المسك الأبيض.",
			TopNotes:      []string{"Bergamot"},
			HeartNotes:    []string{"Damask Rose"},
			BaseNotes:     []string{"White Musk"},
			Sizes:         sizes("50ml", "99", "100ml", "160"),
			Images:        []string{"/images/rose-musk.jpg"},
			CreatedAt:     now.Add(-48 * time.Hour),
		},
		{
			ID: "amber-night", Slug: "amber-night", NameEn: "Amber Night", NameAr: "ليلة العنبر",
			Category:      model.CategoryUnisex,
			DescriptionEn: "Resinous amber with vanilla and tonka.",
			DescriptionAr: "عنبر راتنجي مع الفانيليا والتونكا.",
			TopNotes:      []string{"Pink Pepper"},
			HeartNotes:    []string{"Labdanum"},
			BaseNotes:     []string{"Vanilla", "Tonka"},
			Sizes:         sizes("30ml", "75", "50ml", "120", "100ml", "210"),
			Images:        []string{"/images/amber-night.jpg"},
			Featured:      true,
			CreatedAt:     now.Add(-24 * time.Hour),
		},
	}

	filePath := filepath.Join(dataDir, "products.json.gz")
	if err := createFeedFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func sizes(pairs ...string) []model.Size {
	out := make([]model.Size, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.Size{Label: pairs[i], Price: decimal.RequireFromString(pairs[i+1]), Stock: 25})
	}
	return out
}

func createFeedFile(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	if err := json.NewEncoder(gzipWriter).Encode(products); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}

	return nil
}
