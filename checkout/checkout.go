package checkout

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cradle/addresses"
	"cradle/cart"
	"cradle/db"
	"cradle/models"
	"cradle/mq"
	"cradle/rdx"
	"cradle/utils"

	"github.com/julienschmidt/httprouter"
)

// Request drives a checkout attempt. The caller either selects a saved
// address by id or supplies new address fields; place_order wins when both
// it and save_address are set.
type Request struct {
	AddressID   string          `json:"address_id"`
	Address     *addresses.Form `json:"address"`
	SaveAddress bool            `json:"save_address"`
	PlaceOrder  bool            `json:"place_order"`
	Coupon      string          `json:"coupon"`
}

// Store is the persistence a checkout commit touches: the session cart and
// the orders collection.
type Store interface {
	LoadCart(ctx context.Context, userID string) (cart.Cart, error)
	ClearCart(ctx context.Context, userID string) error
	InsertOrder(ctx context.Context, order *models.Order) error
}

type liveStore struct{}

func (liveStore) LoadCart(ctx context.Context, userID string) (cart.Cart, error) {
	return cart.LoadCart(ctx, rdx.Conn, userID)
}

func (liveStore) ClearCart(ctx context.Context, userID string) error {
	return cart.ClearCart(ctx, rdx.Conn, userID)
}

func (liveStore) InsertOrder(ctx context.Context, order *models.Order) error {
	// Items are embedded in the order document, so this insert is atomic:
	// the order and all of its lines exist together or not at all.
	_, err := db.OrderCollection.InsertOne(ctx, order)
	return err
}

// orderError is a refused or failed order attempt. Refusals carry a machine
// code for the client; failures carry the underlying error for the log.
type orderError struct {
	status  int
	code    string
	message string
	err     error
}

// Checkout resolves the shipping address, snapshots the session cart, and
// commits it as an order. Every failure leaves the cart and the session's
// address selection untouched so the attempt can be retried.
func Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if !req.PlaceOrder && !req.SaveAddress {
		http.Error(w, "Nothing to do", http.StatusBadRequest)
		return
	}

	address, ok := resolveAddress(ctx, w, userID, &req)
	if !ok {
		return
	}

	if !req.PlaceOrder {
		utils.RespondWithJSON(w, http.StatusCreated, utils.M{
			"save_success": true,
			"address":      address,
		})
		return
	}

	order, oerr := placeOrder(ctx, liveStore{}, catalogResolver{}, userID, address.AddressID, req.Coupon)
	if oerr != nil {
		if oerr.err != nil {
			log.Println("Checkout error:", oerr.err)
			utils.RespondWithError(w, oerr.status, oerr.message)
			return
		}
		utils.RespondWithJSON(w, oerr.status, utils.M{
			"error": oerr.message,
			"code":  oerr.code,
		})
		return
	}

	mq.Emit(ctx, "order-placed", mq.Event{EntityID: order.OrderID, UserID: userID})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"order":   order,
		"address": address,
	})
}

// placeOrder snapshots the user's cart and commits it as an order shipping
// to addressID. The cart is cleared only after the insert succeeds; every
// refusal and failure before that leaves the cart untouched.
func placeOrder(ctx context.Context, store Store, res Resolver, userID, addressID, coupon string) (*models.Order, *orderError) {
	c, err := store.LoadCart(ctx, userID)
	if err != nil {
		return nil, &orderError{status: http.StatusInternalServerError, message: "Could not load cart", err: err}
	}
	if c.Count() == 0 {
		return nil, &orderError{status: http.StatusBadRequest, code: "cart_empty", message: "Your cart is empty."}
	}

	items := buildOrderItems(ctx, c, res)
	if len(items) == 0 {
		// Every line pointed at a vanished catalog entity. Refuse rather
		// than commit a zero-item order.
		return nil, &orderError{status: http.StatusBadRequest, code: "cart_empty", message: "No purchasable items in cart."}
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
	}
	discount := cart.ApplyCoupon(subtotal, coupon)
	total := cart.ComputeTotal(subtotal, discount)

	now := time.Now()
	order := &models.Order{
		OrderID:   "o" + utils.GenerateID(10),
		UserID:    userID,
		AddressID: addressID,
		Items:     items,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		Status:    models.OrderPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.InsertOrder(ctx, order); err != nil {
		return nil, &orderError{status: http.StatusInternalServerError, message: "Order creation failed", err: err}
	}

	if err := store.ClearCart(ctx, userID); err != nil {
		log.Println("Checkout cart cleanup error:", err)
	}
	return order, nil
}

// resolveAddress turns the request into a concrete owned address. It writes
// the failure response itself and returns ok=false when the caller should
// re-prompt: unknown address ids and invalid new-address fields are both
// recoverable.
func resolveAddress(ctx context.Context, w http.ResponseWriter, userID string, req *Request) (*models.Address, bool) {
	if req.AddressID != "" && req.AddressID != "new" {
		address, err := addresses.Get(ctx, userID, req.AddressID)
		if err != nil {
			utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
				"error": "Address not found.",
				"code":  "address_not_found",
			})
			return nil, false
		}
		addresses.RememberLastUsed(userID, address.AddressID)
		return address, true
	}

	if req.Address == nil {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
			"errors": map[string]string{"address": "Select an address or supply a new one."},
		})
		return nil, false
	}

	if errs := req.Address.Validate(); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return nil, false
	}

	address, err := addresses.Save(ctx, userID, req.Address)
	if err != nil {
		log.Println("Checkout address insert error:", err)
		http.Error(w, "Failed to save address", http.StatusInternalServerError)
		return nil, false
	}
	return address, true
}
