package catalog

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"cradle/db"
	"cradle/models"
	"cradle/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const offersPerPage = 6

// GetCategories returns every category.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.CategoryCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetCategories Find error:", err)
		http.Error(w, "Could not retrieve categories", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		log.Println("GetCategories cursor.All error:", err)
		http.Error(w, "Error reading categories", http.StatusInternalServerError)
		return
	}
	if len(categories) == 0 {
		categories = []models.Category{}
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// GetProductsByCategory lists active products within a category slug.
func GetProductsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := db.CategoryCollection.FindOne(ctx, bson.M{"slug": ps.ByName("categoryslug")}).Decode(&category); err != nil {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	cursor, err := db.ProductCollection.Find(ctx, bson.M{
		"categoryid": category.CategoryID,
		"isActive":   true,
	})
	if err != nil {
		log.Println("GetProductsByCategory Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetProductsByCategory cursor.All error:", err)
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}
	if len(products) == 0 {
		products = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"category": category,
		"products": products,
	})
}

// GetProduct returns one product by numeric id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.ParseInt(ps.ByName("productid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetOffers lists active offers, paginated six per page like the offers page.
func GetOffers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	filter := bson.M{"isActive": true}
	total, err := db.OfferCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("GetOffers CountDocuments error:", err)
		http.Error(w, "Could not retrieve offers", http.StatusInternalServerError)
		return
	}

	pages := int((total + offersPerPage - 1) / offersPerPage)
	if pages > 0 && page > pages {
		page = pages
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * offersPerPage)).
		SetLimit(offersPerPage)

	cursor, err := db.OfferCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetOffers Find error:", err)
		http.Error(w, "Could not retrieve offers", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		log.Println("GetOffers cursor.All error:", err)
		http.Error(w, "Error reading offers", http.StatusInternalServerError)
		return
	}
	if len(offers) == 0 {
		offers = []models.Offer{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"offers":      offers,
		"page":        page,
		"total_pages": pages,
		"total":       total,
	})
}
