package addresses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"cradle/db"
	"cradle/models"
	"cradle/rdx"
	"cradle/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save persists a validated form as a new address owned by userID and records
// it as the session's last-used address.
func Save(ctx context.Context, userID string, form *Form) (*models.Address, error) {
	address := &models.Address{
		AddressID:     "a" + utils.GenerateID(10),
		UserID:        userID,
		FullName:      form.FullName,
		Phone:         form.Phone,
		AddressLine1:  form.AddressLine1,
		AddressLine2:  form.AddressLine2,
		City:          form.City,
		State:         form.State,
		Pincode:       form.Pincode,
		Landmark:      form.Landmark,
		SaveForFuture: form.SaveForFuture,
		CreatedAt:     time.Now(),
	}

	if _, err := db.AddressCollection.InsertOne(ctx, address); err != nil {
		return nil, err
	}

	RememberLastUsed(userID, address.AddressID)
	return address, nil
}

const lastUsedTTL = 30 * 24 * time.Hour

// RememberLastUsed records the address the session shipped to most recently
// so the checkout page can preselect it. Best effort.
func RememberLastUsed(userID, addressID string) {
	if err := rdx.SetWithExpiry("lastaddr:"+userID, addressID, lastUsedTTL); err != nil {
		log.Printf("Failed to record last address for %s: %v", userID, err)
	}
}

// Get resolves an address id scoped to its owner.
func Get(ctx context.Context, userID, addressID string) (*models.Address, error) {
	var address models.Address
	err := db.AddressCollection.FindOne(ctx, bson.M{
		"addressid": addressID,
		"userid":    userID,
	}).Decode(&address)
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// ReferencedByOrder reports whether any order ships to this address.
func ReferencedByOrder(ctx context.Context, addressID string) (bool, error) {
	n, err := db.OrderCollection.CountDocuments(ctx, bson.M{"addressid": addressID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var (
	errNotFound   = errors.New("address not found")
	errReferenced = errors.New("address referenced by an order")
)

// Store is what the delete guard walks: ownership lookup, order reference
// check, removal.
type Store interface {
	Get(ctx context.Context, userID, addressID string) (*models.Address, error)
	ReferencedByOrder(ctx context.Context, addressID string) (bool, error)
	Remove(ctx context.Context, userID, addressID string) error
}

type liveStore struct{}

func (liveStore) Get(ctx context.Context, userID, addressID string) (*models.Address, error) {
	return Get(ctx, userID, addressID)
}

func (liveStore) ReferencedByOrder(ctx context.Context, addressID string) (bool, error) {
	return ReferencedByOrder(ctx, addressID)
}

func (liveStore) Remove(ctx context.Context, userID, addressID string) error {
	_, err := db.AddressCollection.DeleteOne(ctx, bson.M{"addressid": addressID, "userid": userID})
	return err
}

// removeAddress deletes an owned address unless an order ships to it, in
// which case nothing changes.
func removeAddress(ctx context.Context, store Store, userID, addressID string) error {
	if _, err := store.Get(ctx, userID, addressID); err != nil {
		return errNotFound
	}
	referenced, err := store.ReferencedByOrder(ctx, addressID)
	if err != nil {
		return err
	}
	if referenced {
		return errReferenced
	}
	return store.Remove(ctx, userID, addressID)
}

// ListAddresses returns the caller's saved addresses, most recent first.
func ListAddresses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.AddressCollection.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		log.Println("ListAddresses Find error:", err)
		http.Error(w, "Could not retrieve addresses", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Address
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("ListAddresses cursor.All error:", err)
		http.Error(w, "Error reading addresses", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Address{}
	}

	// Last-used id lets the checkout page preselect an address
	lastUsed, err := rdx.RdxGet("lastaddr:" + userID)
	if err != nil {
		lastUsed = ""
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"addresses": list,
		"last_used": lastUsed,
	})
}

// CreateAddress validates and persists a new address for the caller.
func CreateAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	address, err := Save(ctx, userID, &form)
	if err != nil {
		log.Println("CreateAddress insert error:", err)
		http.Error(w, "Failed to save address", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, address)
}

// UpdateAddress overwrites an owned address. Addresses an order ships to are
// frozen and cannot be edited.
func UpdateAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	addressID := ps.ByName("addressid")
	if _, err := Get(ctx, userID, addressID); err != nil {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}

	referenced, err := ReferencedByOrder(ctx, addressID)
	if err != nil {
		log.Println("UpdateAddress reference check error:", err)
		http.Error(w, "Failed to update address", http.StatusInternalServerError)
		return
	}
	if referenced {
		http.Error(w, "Address is used by an order and cannot be edited", http.StatusConflict)
		return
	}

	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	update := bson.M{"$set": bson.M{
		"full_name":       form.FullName,
		"phone":           form.Phone,
		"address_line1":   form.AddressLine1,
		"address_line2":   form.AddressLine2,
		"city":            form.City,
		"state":           form.State,
		"pincode":         form.Pincode,
		"landmark":        form.Landmark,
		"save_for_future": form.SaveForFuture,
	}}
	if _, err := db.AddressCollection.UpdateOne(ctx, bson.M{"addressid": addressID, "userid": userID}, update); err != nil {
		log.Println("UpdateAddress UpdateOne error:", err)
		http.Error(w, "Failed to update address", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// DeleteAddress removes an owned address unless an order references it, in
// which case the delete is rejected and nothing changes.
func DeleteAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	addressID := ps.ByName("addressid")
	switch err := removeAddress(ctx, liveStore{}, userID, addressID); {
	case err == nil:
	case errors.Is(err, errNotFound):
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	case errors.Is(err, errReferenced):
		http.Error(w, "Address is used by an order and cannot be deleted", http.StatusConflict)
		return
	default:
		log.Println("DeleteAddress error:", err)
		http.Error(w, "Failed to delete address", http.StatusInternalServerError)
		return
	}

	// Drop a last-used pointer that now dangles
	if last, err := rdx.RdxGet("lastaddr:" + userID); err == nil && last == addressID {
		if err := rdx.RdxDel("lastaddr:" + userID); err != nil {
			log.Printf("Failed to clear last address for %s: %v", userID, err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}
