package handlers

import (
	"net/http"

	"lingerie-shop/utils"
)

// Diagnostics reports store reachability and configuration state. Every field
// degrades to a descriptive string; the endpoint itself never fails.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root responds with a liveness message
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.ResponseHdlr.JSON(w, http.StatusOK, map[string]string{
		"message": "Lingerie Shop API running",
	})
}

// TestDatabase checks whether the database is available and accessible
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	diag := Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.Store != nil {
		diag.Database = "✅ Available"
		diag.ConnectionStatus = "Connected"

		names, err := h.Store.CollectionNames(r.Context())
		if err != nil {
			diag.Database = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			if names != nil {
				diag.Collections = names
			}
			diag.Database = "✅ Connected & Working"
		}
	} else {
		diag.Database = "⚠️  Available but not initialized"
	}

	diag.DatabaseURL = setIndicator(h.Cfg.URISet)
	diag.DatabaseName = setIndicator(h.Cfg.NameSet)

	h.ResponseHdlr.JSON(w, http.StatusOK, diag)
}

func setIndicator(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
