package checkout

import (
	"context"
	"log"

	"cradle/cart"
	"cradle/db"
	"cradle/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Resolver looks cart keys up in the catalog.
type Resolver interface {
	Product(ctx context.Context, id int64) (*models.Product, error)
	Offer(ctx context.Context, id int64) (*models.Offer, error)
}

type catalogResolver struct{}

func (catalogResolver) Product(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (catalogResolver) Offer(ctx context.Context, id int64) (*models.Offer, error) {
	var o models.Offer
	if err := db.OfferCollection.FindOne(ctx, bson.M{"id": id}).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// buildOrderItems resolves every cart line against the catalog. Lines whose
// catalog entity has disappeared, and keys in no recognizable format, are
// skipped with a log line: a stale cart entry must not abort the whole
// order. Prices come from the session cart, not the live catalog, so the
// price the customer saw is the price they pay.
func buildOrderItems(ctx context.Context, c cart.Cart, res Resolver) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c))
	for rawKey, line := range c {
		key, err := cart.ParseLineItemKey(rawKey)
		if err != nil {
			log.Printf("Skipping cart item %s: %v", rawKey, err)
			continue
		}

		item := models.OrderItem{
			ItemID:   key.ID,
			Title:    line.Title,
			Price:    line.Price,
			Quantity: line.Quantity,
			Subtotal: line.Price * float64(line.Quantity),
		}

		switch key.Kind {
		case cart.KindOffer:
			if _, err := res.Offer(ctx, key.ID); err != nil {
				log.Printf("Skipping cart item %s: offer not found: %v", rawKey, err)
				continue
			}
			item.Kind = models.ItemOffer
		default:
			if _, err := res.Product(ctx, key.ID); err != nil {
				log.Printf("Skipping cart item %s: product not found: %v", rawKey, err)
				continue
			}
			item.Kind = models.ItemProduct
		}

		items = append(items, item)
	}
	return items
}
