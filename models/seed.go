package models

import "go.mongodb.org/mongo-driver/bson"

// DemoProducts returns the fixed demo set inserted when the collection is
// observed empty. The third record deliberately omits in_stock and
// is_featured; normalization fills those defaults on the way back out.
func DemoProducts() []bson.M {
	return []bson.M{
		{
			"title":       "Silk Embrace Bra",
			"description": "Luxurious silk with delicate lace trim.",
			"price":       69.0,
			"category":    "bras",
			"images": []string{
				"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?q=80&w=1200&auto=format&fit=crop",
			},
			"colors":      []string{"black", "blush", "ivory"},
			"sizes":       []string{"32B", "34C", "36D"},
			"tags":        []string{"silk", "lace", "underwire"},
			"is_featured": true,
			"rating":      4.7,
		},
		{
			"title":       "Velvet Night Set",
			"description": "Two-piece velvet lounge set.",
			"price":       89.0,
			"category":    "sets",
			"images": []string{
				"https://images.unsplash.com/photo-1515378791036-0648a3ef77b2?q=80&w=1200&auto=format&fit=crop",
			},
			"colors":      []string{"wine", "emerald"},
			"sizes":       []string{"S", "M", "L"},
			"tags":        []string{"set", "velvet", "lounge"},
			"is_featured": true,
			"rating":      4.5,
		},
		{
			"title":       "Everyday Comfort Brief",
			"description": "Breathable cotton mid-rise brief.",
			"price":       18.0,
			"category":    "panties",
			"images": []string{
				"https://images.unsplash.com/photo-1516641392179-434d6d130a7b?q=80&w=1200&auto=format&fit=crop",
			},
			"colors": []string{"nude", "black", "white"},
			"sizes":  []string{"S", "M", "L", "XL"},
			"tags":   []string{"cotton", "comfort"},
			"rating": 4.2,
		},
	}
}
