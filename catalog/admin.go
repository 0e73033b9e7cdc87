package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"cradle/db"
	"cradle/models"
	"cradle/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// referencedByOrderItem reports whether any order line references the entity.
// Catalog entities an order points at must survive for as long as the order
// does.
func referencedByOrderItem(ctx context.Context, kind string, id int64) (bool, error) {
	n, err := db.OrderCollection.CountDocuments(ctx, bson.M{
		"items": bson.M{"$elemMatch": bson.M{"kind": kind, "itemid": id}},
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateProduct adds a catalog product. Admin only.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if product.Title == "" || product.CategoryID == "" || product.Price < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	id, err := db.NextSequence(ctx, "products")
	if err != nil {
		log.Println("CreateProduct sequence error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	product.ID = id
	product.IsActive = true
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// EditProduct overwrites a product's editable fields. Admin only.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(ps.ByName("productid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"categoryid":  product.CategoryID,
		"title":       product.Title,
		"description": product.Description,
		"price":       product.Price,
		"mrp":         product.MRP,
		"isNew":       product.IsNew,
		"rating":      product.Rating,
		"isActive":    product.IsActive,
		"updatedAt":   time.Now(),
	}}
	res, err := db.ProductCollection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		log.Println("EditProduct UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// DeleteProduct removes a product unless an order line references it.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(ps.ByName("productid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	referenced, err := referencedByOrderItem(ctx, models.ItemProduct, id)
	if err != nil {
		log.Println("DeleteProduct reference check error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	if referenced {
		http.Error(w, "Product is referenced by an order and cannot be deleted", http.StatusConflict)
		return
	}

	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

// CreateOffer adds a promotional offer. Admin only.
func CreateOffer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if offer.Title == "" || offer.Price < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	id, err := db.NextSequence(ctx, "offers")
	if err != nil {
		log.Println("CreateOffer sequence error:", err)
		http.Error(w, "Failed to create offer", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	offer.ID = id
	offer.IsActive = true
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if _, err := db.OfferCollection.InsertOne(ctx, offer); err != nil {
		log.Println("CreateOffer InsertOne error:", err)
		http.Error(w, "Failed to create offer", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, offer)
}

// EditOffer overwrites an offer's editable fields. Admin only.
func EditOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(ps.ByName("offerid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid offer id", http.StatusBadRequest)
		return
	}

	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"title":       offer.Title,
		"description": offer.Description,
		"link":        offer.Link,
		"price":       offer.Price,
		"mrp":         offer.MRP,
		"rating":      offer.Rating,
		"isNew":       offer.IsNew,
		"isActive":    offer.IsActive,
		"updatedAt":   time.Now(),
	}}
	res, err := db.OfferCollection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		log.Println("EditOffer UpdateOne error:", err)
		http.Error(w, "Failed to update offer", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Offer not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// DeleteOffer removes an offer unless an order line references it.
func DeleteOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(ps.ByName("offerid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid offer id", http.StatusBadRequest)
		return
	}

	referenced, err := referencedByOrderItem(ctx, models.ItemOffer, id)
	if err != nil {
		log.Println("DeleteOffer reference check error:", err)
		http.Error(w, "Failed to delete offer", http.StatusInternalServerError)
		return
	}
	if referenced {
		http.Error(w, "Offer is referenced by an order and cannot be deleted", http.StatusConflict)
		return
	}

	res, err := db.OfferCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Println("DeleteOffer DeleteOne error:", err)
		http.Error(w, "Failed to delete offer", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Offer not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

// CreateCategory adds a category. Admin only.
func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if category.Name == "" || category.Slug == "" {
		http.Error(w, "Name and slug are required", http.StatusBadRequest)
		return
	}

	// Slugs are unique
	if n, err := db.CategoryCollection.CountDocuments(ctx, bson.M{"slug": category.Slug}); err == nil && n > 0 {
		http.Error(w, "Category slug already exists", http.StatusConflict)
		return
	}

	category.CategoryID = "c" + utils.GenerateID(10)
	if _, err := db.CategoryCollection.InsertOne(ctx, category); err != nil {
		log.Println("CreateCategory InsertOne error:", err)
		http.Error(w, "Failed to create category", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, category)
}
