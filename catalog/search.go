package catalog

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"cradle/db"
	"cradle/models"
	"cradle/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchProducts matches active products whose title or description contains
// the query, case-insensitively.
func SearchProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"query": "", "results": []models.Product{}})
		return
	}

	pattern := regexp.QuoteMeta(query)
	filter := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}

	cursor, err := db.ProductCollection.Find(ctx, filter)
	if err != nil {
		log.Println("SearchProducts Find error:", err)
		http.Error(w, "Search failed", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var results []models.Product
	if err := cursor.All(ctx, &results); err != nil {
		log.Println("SearchProducts cursor.All error:", err)
		http.Error(w, "Error reading search results", http.StatusInternalServerError)
		return
	}
	if len(results) == 0 {
		results = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"query": query, "results": results})
}

// SuggestProductNames returns up to eight title suggestions for a prefix of
// the search box, sorted by title.
func SuggestProductNames(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"suggestions": []string{}})
		return
	}

	filter := bson.M{
		"isActive": true,
		"title":    bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"},
	}
	opts := options.Find().
		SetSort(bson.M{"title": 1}).
		SetLimit(8).
		SetProjection(bson.M{"title": 1})

	cursor, err := db.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("SuggestProductNames Find error:", err)
		http.Error(w, "Suggestions failed", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	suggestions := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			Title string `bson:"title"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		suggestions = append(suggestions, doc.Title)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"suggestions": suggestions})
}
