package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lingerie-shop/models"
)

func TestFromDocumentEmptyDocument(t *testing.T) {
	p := models.FromDocument(bson.M{})

	assert.Equal(t, "", p.ID)
	assert.Equal(t, "", p.Title)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, "", p.Category)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, []string{}, p.Colors)
	assert.Equal(t, []string{}, p.Sizes)
	assert.Equal(t, []string{}, p.Tags)
	assert.True(t, p.InStock)
	assert.False(t, p.IsFeatured)
	assert.Nil(t, p.Rating)
}

func TestFromDocumentFullDocument(t *testing.T) {
	id := primitive.NewObjectID()
	p := models.FromDocument(bson.M{
		"_id":         id,
		"title":       "Silk Embrace Bra",
		"description": "Luxurious silk with delicate lace trim.",
		"price":       69.0,
		"category":    "bras",
		"images":      bson.A{"https://example.com/a.jpg"},
		"colors":      bson.A{"black", "blush"},
		"sizes":       bson.A{"32B"},
		"tags":        bson.A{"silk"},
		"in_stock":    false,
		"is_featured": true,
		"rating":      4.7,
	})

	assert.Equal(t, id.Hex(), p.ID)
	assert.Equal(t, "Silk Embrace Bra", p.Title)
	assert.Equal(t, 69.0, p.Price)
	assert.Equal(t, "bras", p.Category)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, p.Images)
	assert.Equal(t, []string{"black", "blush"}, p.Colors)
	assert.False(t, p.InStock)
	assert.True(t, p.IsFeatured)
	require.NotNil(t, p.Rating)
	assert.Equal(t, 4.7, *p.Rating)
}

func TestFromDocumentCoercions(t *testing.T) {
	p := models.FromDocument(bson.M{
		"_id":         "plain-string-id",
		"price":       int32(42),
		"images":      bson.A{"https://example.com/a.jpg", 7},
		"colors":      []string{"red"},
		"in_stock":    "yes",
		"is_featured": 1,
		"rating":      int64(4),
	})

	assert.Equal(t, "plain-string-id", p.ID)
	assert.Equal(t, 42.0, p.Price)
	assert.Equal(t, []string{"https://example.com/a.jpg", "7"}, p.Images)
	assert.Equal(t, []string{"red"}, p.Colors)
	// Wrong types fall back to the documented defaults.
	assert.True(t, p.InStock)
	assert.False(t, p.IsFeatured)
	require.NotNil(t, p.Rating)
	assert.Equal(t, 4.0, *p.Rating)
}

func TestFromDocumentNullRatingIsAbsent(t *testing.T) {
	p := models.FromDocument(bson.M{"rating": nil})
	assert.Nil(t, p.Rating)
}

func TestDemoProducts(t *testing.T) {
	demo := models.DemoProducts()
	require.Len(t, demo, 3)

	assert.Equal(t, "Silk Embrace Bra", demo[0]["title"])
	assert.Equal(t, 69.0, demo[0]["price"])
	assert.Equal(t, "bras", demo[0]["category"])
	assert.Equal(t, true, demo[0]["is_featured"])
	assert.Equal(t, 4.7, demo[0]["rating"])

	assert.Equal(t, "Velvet Night Set", demo[1]["title"])
	assert.Equal(t, 89.0, demo[1]["price"])
	assert.Equal(t, "sets", demo[1]["category"])
	assert.Equal(t, 4.5, demo[1]["rating"])

	assert.Equal(t, "Everyday Comfort Brief", demo[2]["title"])
	assert.Equal(t, 18.0, demo[2]["price"])
	assert.Equal(t, "panties", demo[2]["category"])
	assert.Equal(t, 4.2, demo[2]["rating"])

	// The brief carries no featured or stock keys; defaults apply on read.
	_, hasFeatured := demo[2]["is_featured"]
	assert.False(t, hasFeatured)
	_, hasStock := demo[2]["in_stock"]
	assert.False(t, hasStock)
}

func TestCreateProductRequestDocumentDefaults(t *testing.T) {
	price := 18.0
	req := models.CreateProductRequest{
		Title:    "Everyday Comfort Brief",
		Price:    &price,
		Category: "panties",
	}

	doc := req.Document()

	assert.Equal(t, true, doc["in_stock"])
	assert.Equal(t, false, doc["is_featured"])
	assert.Equal(t, []string{}, doc["images"])
	assert.Equal(t, []string{}, doc["tags"])
	_, hasRating := doc["rating"]
	assert.False(t, hasRating)
}

func TestCreateProductRequestDocumentExplicitValues(t *testing.T) {
	price := 69.0
	rating := 4.7
	inStock := false
	req := models.CreateProductRequest{
		Title:      "Silk Embrace Bra",
		Price:      &price,
		Category:   "bras",
		Images:     []string{"https://example.com/a.jpg"},
		InStock:    &inStock,
		IsFeatured: true,
		Rating:     &rating,
	}

	doc := req.Document()

	assert.Equal(t, false, doc["in_stock"])
	assert.Equal(t, true, doc["is_featured"])
	assert.Equal(t, 4.7, doc["rating"])
	assert.Equal(t, []string{"https://example.com/a.jpg"}, doc["images"])
}
