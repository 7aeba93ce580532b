package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"lingerie-shop/config"
	"lingerie-shop/database"
	"lingerie-shop/models"
	"lingerie-shop/utils"
)

// Handler carries the store handle and response helpers shared by all routes.
// Store may be nil when the database was unreachable at startup; product
// routes then fail per request while the diagnostic routes keep working.
type Handler struct {
	Store        database.Store
	Cfg          *config.Config
	ResponseHdlr *ResponseHandler
	ErrorHdlr    *utils.ErrorHandler
}

func NewHandler(store database.Store, cfg *config.Config) *Handler {
	return &Handler{
		Store:        store,
		Cfg:          cfg,
		ResponseHdlr: NewResponseHandler(),
		ErrorHdlr:    utils.NewErrorHandler(),
	}
}

// seedLimit caps how many records the sample endpoint returns.
const seedLimit = 12

// buildProductFilter translates the optional query parameters into the
// equality filter passed to the store. An explicit featured=false still
// constrains the query; only an omitted parameter leaves it unconstrained.
func buildProductFilter(category string, featured *bool) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if featured != nil {
		filter["is_featured"] = *featured
	}
	return filter
}

// ListProducts handles retrieving products filtered by category and featured flag
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		h.ErrorHdlr.HandleInternalError(w, "database not available")
		return
	}

	query := r.URL.Query()
	category := query.Get("category")

	var featured *bool
	if query.Has("featured") {
		v, err := strconv.ParseBool(query.Get("featured"))
		if err != nil {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid featured parameter")
			return
		}
		featured = &v
	}

	docs, err := h.Store.Find(r.Context(), models.ProductCollection, buildProductFilter(category, featured), 0)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching products: "+utils.Truncate(err.Error(), 100))
		return
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, models.FromDocument(d))
	}

	h.ResponseHdlr.Success(w, "Products fetched successfully", products)
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	// Validate request before anything reaches the store
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		var validationErrors []utils.ErrorDetail
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, utils.ErrorDetail{
				Field:   err.Field(),
				Message: utils.FormatValidationError(err),
			})
		}
		h.ErrorHdlr.HandleValidationError(w, validationErrors)
		return
	}

	if h.Store == nil {
		h.ErrorHdlr.HandleInternalError(w, "database not available")
		return
	}

	id, err := h.Store.Insert(r.Context(), models.ProductCollection, req.Document())
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error creating product: "+utils.Truncate(err.Error(), 100))
		return
	}

	h.ResponseHdlr.Created(w, "Product created successfully", map[string]string{"id": id})
}

// SeedSampleProducts inserts the demo set when the collection is empty, then
// returns up to 12 records. Two concurrent calls on an empty collection can
// both observe "empty" and both seed; callers needing exactly-once seeding
// must coordinate themselves.
func (h *Handler) SeedSampleProducts(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		h.ErrorHdlr.HandleInternalError(w, "database not available")
		return
	}
	ctx := r.Context()

	existing, err := h.Store.Find(ctx, models.ProductCollection, bson.M{}, 1)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error checking products: "+utils.Truncate(err.Error(), 100))
		return
	}

	if len(existing) == 0 {
		for _, doc := range models.DemoProducts() {
			if _, err := h.Store.Insert(ctx, models.ProductCollection, doc); err != nil {
				h.ErrorHdlr.HandleInternalError(w, "Error seeding products: "+utils.Truncate(err.Error(), 100))
				return
			}
		}
	}

	docs, err := h.Store.Find(ctx, models.ProductCollection, bson.M{}, seedLimit)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching products: "+utils.Truncate(err.Error(), 100))
		return
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, models.FromDocument(d))
	}

	h.ResponseHdlr.Success(w, "Products fetched successfully", products)
}
