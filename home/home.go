package home

import (
	"net/http"

	"cradle/utils"

	"github.com/julienschmidt/httprouter"
)

type featuredCategory struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	URL   string `json:"url"`
}

type bestseller struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	IsNew    bool    `json:"isNew"`
	Rating   int     `json:"rating"`
	OldPrice float64 `json:"old_price"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
}

// The landing page tiles are curated, not catalog-driven.
var featured = []featuredCategory{
	{Name: "Diapers & Pampers", Image: "/static/home/feature1.png", URL: "/products/diaper/"},
	{Name: "Baby Dress", Image: "/static/home/feature2.png", URL: "/products/girls-fashion/"},
	{Name: "Baby Soap", Image: "/static/home/feature3.png", URL: "/products/soap/"},
	{Name: "Baby Stroller & Prams", Image: "/static/home/feature4.jpg", URL: "/products/stroller/"},
}

var bestsellers = []bestseller{
	{Name: "Wipes", Image: "/static/home/best1.jpg", IsNew: true, Rating: 5, OldPrice: 1444, Price: 1299, URL: "/products/diaper/"},
	{Name: "Mama Miel Baby", Image: "/static/home/best2.jpg", IsNew: true, Rating: 5, OldPrice: 1444, Price: 1299, URL: "/products/boys-fashion/"},
	{Name: "Zibuyu", Image: "/static/home/best3.png", IsNew: true, Rating: 5, OldPrice: 1444, Price: 1299, URL: "/products/girls-fashion/"},
}

// GetHome returns the landing-page payload.
func GetHome(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"categories":  featured,
		"bestsellers": bestsellers,
	})
}
