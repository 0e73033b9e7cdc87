package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cradle/db"
	"cradle/models"
	"cradle/rdx"
	"cradle/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// AddProductToCart increments quantity if the product is already in the cart,
// or inserts a fresh line from the live catalog entry.
func AddProductToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	productID, err := strconv.ParseInt(ps.ByName("productid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"id": productID}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	c, err := LoadCart(ctx, rdx.Conn, userID)
	if err != nil {
		log.Println("AddProductToCart load error:", err)
		http.Error(w, "Could not load cart", http.StatusInternalServerError)
		return
	}

	count := c.AddOrIncrement(ProductKey(productID), Line{
		Title: product.Title,
		Price: product.Price,
		Image: product.Image,
	})

	if err := SaveCart(ctx, rdx.Conn, userID, c); err != nil {
		log.Println("AddProductToCart save error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":    true,
		"message":    "Added to cart!",
		"cart_count": count,
	})
}

// AddOfferToCart is the offer-entity counterpart of AddProductToCart; offer
// lines carry the "offer_" key tag and the is_offer flag.
func AddOfferToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	offerID, err := strconv.ParseInt(ps.ByName("offerid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid offer id", http.StatusBadRequest)
		return
	}

	var offer models.Offer
	if err := db.OfferCollection.FindOne(ctx, bson.M{"id": offerID}).Decode(&offer); err != nil {
		http.Error(w, "Offer not found", http.StatusNotFound)
		return
	}

	c, err := LoadCart(ctx, rdx.Conn, userID)
	if err != nil {
		log.Println("AddOfferToCart load error:", err)
		http.Error(w, "Could not load cart", http.StatusInternalServerError)
		return
	}

	count := c.AddOrIncrement(OfferKey(offerID), Line{
		Title:   offer.Title,
		Price:   offer.Price,
		MRP:     offer.MRP,
		Image:   offer.Image,
		IsOffer: true,
	})

	if err := SaveCart(ctx, rdx.Conn, userID, c); err != nil {
		log.Println("AddOfferToCart save error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":    true,
		"message":    "Offer added to cart!",
		"cart_count": count,
	})
}

// UpdateQuantities applies a batch of qty_<key> fields to the cart. Values
// that fail to parse are skipped rather than failing the request.
func UpdateQuantities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	c, err := LoadCart(ctx, rdx.Conn, userID)
	if err != nil {
		log.Println("UpdateQuantities load error:", err)
		http.Error(w, "Could not load cart", http.StatusInternalServerError)
		return
	}

	for field, raw := range fields {
		if key, ok := strings.CutPrefix(field, "qty_"); ok {
			c.SetQuantity(key, raw)
		}
	}

	if err := SaveCart(ctx, rdx.Conn, userID, c); err != nil {
		log.Println("UpdateQuantities save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// RemoveFromCart drops one line; an absent key still succeeds.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := LoadCart(ctx, rdx.Conn, userID)
	if err != nil {
		log.Println("RemoveFromCart load error:", err)
		http.Error(w, "Could not load cart", http.StatusInternalServerError)
		return
	}

	c.Remove(ps.ByName("key"))

	if err := SaveCart(ctx, rdx.Conn, userID, c); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "removed"})
}

type cartLineView struct {
	Line
	Subtotal float64 `json:"subtotal"`
}

// GetCart renders the cart with derived totals. Totals are recomputed on
// every read; an optional ?coupon= code is priced in. Anonymous callers get
// an empty view with checkout disabled instead of an error.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"cart_items":       Cart{},
			"subtotal":         0,
			"discount":         0,
			"total":            0,
			"alert_message":    "Login required to access cart.",
			"disable_checkout": true,
		})
		return
	}

	c, err := LoadCart(ctx, rdx.Conn, userID)
	if err != nil {
		log.Println("GetCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	coupon := r.URL.Query().Get("coupon")
	subtotal := ComputeSubtotal(c)
	discount := ApplyCoupon(subtotal, coupon)

	items := make(map[string]cartLineView, len(c))
	for key, line := range c {
		items[key] = cartLineView{Line: line, Subtotal: line.Price * float64(line.Quantity)}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cart_items": items,
		"subtotal":   subtotal,
		"discount":   discount,
		"total":      ComputeTotal(subtotal, discount),
		"coupon":     coupon,
	})
}

// CartCount returns the number of distinct cart lines; zero when anonymous.
func CartCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"cart_count": 0})
		return
	}

	c, err := LoadCart(ctx, rdx.Conn, userID)
	if err != nil {
		log.Println("CartCount load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"cart_count": c.Count()})
}
