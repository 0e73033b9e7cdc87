package contactfm

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"cradle/db"
	"cradle/models"
	"cradle/utils"

	"github.com/julienschmidt/httprouter"
)

const maxMessageLen = 2000

// SubmitContact validates and stores a contact-form submission.
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	errs := map[string]string{}
	contact.FirstName = strings.TrimSpace(contact.FirstName)
	contact.LastName = strings.TrimSpace(contact.LastName)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.PhoneNumber = strings.TrimSpace(contact.PhoneNumber)
	contact.Message = strings.TrimSpace(contact.Message)

	if contact.FirstName == "" {
		errs["first_name"] = "This field is required."
	}
	if contact.LastName == "" {
		errs["last_name"] = "This field is required."
	}
	if contact.Email == "" || !strings.Contains(contact.Email, "@") {
		errs["email"] = "Enter a valid email address."
	}
	if contact.PhoneNumber == "" {
		errs["phone_number"] = "This field is required."
	}
	if contact.Message == "" {
		errs["message"] = "This field is required."
	} else if len(contact.Message) > maxMessageLen {
		errs["message"] = "Message is too long."
	}

	if len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}

	contact.CreatedAt = time.Now()
	if _, err := db.ContactCollection.InsertOne(ctx, contact); err != nil {
		log.Println("SubmitContact InsertOne error:", err)
		http.Error(w, "Failed to submit message", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true})
}
