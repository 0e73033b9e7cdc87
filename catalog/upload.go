package catalog

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cradle/db"
	"cradle/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var productPicDir = "./static/productpic"

// UploadProductImage stores a product image and a 300px thumbnail, then
// records both paths on the product. Admin only.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !utils.IsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	productID, err := strconv.ParseInt(ps.ByName("productid"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}
	if n, err := db.ProductCollection.CountDocuments(ctx, bson.M{"id": productID}); err != nil || n == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB limit
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, handler) {
		return
	}

	ext := filepath.Ext(utils.SanitizeFilename(handler.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		http.Error(w, "Unsupported file type", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(productPicDir); err != nil {
		log.Println("UploadProductImage mkdir error:", err)
		http.Error(w, "Unable to save file", http.StatusInternalServerError)
		return
	}

	id := utils.GetUUID()
	filename := fmt.Sprintf("%s%s", id, ext)
	path := filepath.Join(productPicDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		http.Error(w, "Unable to save file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	thumbName, err := createThumbnail(path, id)
	if err != nil {
		log.Println("UploadProductImage thumbnail error:", err)
	}

	update := bson.M{"$set": bson.M{
		"image":     "/static/productpic/" + filename,
		"updatedAt": time.Now(),
	}}
	if thumbName != "" {
		update["$set"].(bson.M)["thumb"] = "/static/productpic/thumb/" + thumbName
	}
	if _, err := db.ProductCollection.UpdateOne(ctx, bson.M{"id": productID}, update); err != nil {
		log.Println("UploadProductImage UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"imageUrl": "/static/productpic/" + filename,
	})
}

// createThumbnail writes a 300px-wide jpeg next to the original, keeping
// aspect ratio.
func createThumbnail(srcPath, baseName string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", srcPath, err)
	}

	resized := imaging.Resize(img, 300, 0, imaging.Lanczos) // maintain aspect ratio
	thumbDir := filepath.Join(productPicDir, "thumb")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", thumbDir, err)
	}

	name := baseName + ".jpg"
	out, err := os.Create(filepath.Join(thumbDir, name))
	if err != nil {
		return "", fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return name, nil
}
