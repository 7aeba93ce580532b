package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCollection is the collection products are stored in.
const ProductCollection = "lingerieproduct"

// Product is the fully-typed output shape of one catalog record. Every field
// except ID, Description and Rating has a default, so any stored record maps
// onto it.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Tags        []string `json:"tags"`
	InStock     bool     `json:"in_stock"`
	IsFeatured  bool     `json:"is_featured"`
	Rating      *float64 `json:"rating"`
}

// CreateProductRequest is used for product creation requests
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images" validate:"dive,url"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Tags        []string `json:"tags"`
	InStock     *bool    `json:"in_stock"`
	IsFeatured  bool     `json:"is_featured"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// Document builds the record to insert, with defaults applied. Rating is
// omitted entirely when absent so it stays distinguishable from zero.
func (r CreateProductRequest) Document() bson.M {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}

	doc := bson.M{
		"title":       r.Title,
		"description": r.Description,
		"price":       *r.Price,
		"category":    r.Category,
		"images":      orEmpty(r.Images),
		"colors":      orEmpty(r.Colors),
		"sizes":       orEmpty(r.Sizes),
		"tags":        orEmpty(r.Tags),
		"in_stock":    inStock,
		"is_featured": r.IsFeatured,
	}
	if r.Rating != nil {
		doc["rating"] = *r.Rating
	}
	return doc
}

// FromDocument converts one raw stored record into a Product. It is total:
// missing or oddly-typed fields are filled with defaults, never rejected.
func FromDocument(doc bson.M) Product {
	return Product{
		ID:          idString(doc["_id"]),
		Title:       stringOr(doc["title"], ""),
		Description: stringOr(doc["description"], ""),
		Price:       floatOr(doc["price"], 0),
		Category:    stringOr(doc["category"], ""),
		Images:      stringSlice(doc["images"]),
		Colors:      stringSlice(doc["colors"]),
		Sizes:       stringSlice(doc["sizes"]),
		Tags:        stringSlice(doc["tags"]),
		InStock:     boolOr(doc["in_stock"], true),
		IsFeatured:  boolOr(doc["is_featured"], false),
		Rating:      ratingOf(doc["rating"]),
	}
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func stringOr(v interface{}, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func floatOr(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

func boolOr(v interface{}, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

func stringSlice(v interface{}) []string {
	var elems []interface{}
	switch arr := v.(type) {
	case bson.A:
		elems = arr
	case []interface{}:
		elems = arr
	case []string:
		return arr
	default:
		return []string{}
	}

	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if s, ok := e.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(e))
		}
	}
	return out
}

func ratingOf(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
