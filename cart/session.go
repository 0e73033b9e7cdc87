package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

func sessionKey(userID string) string {
	return "cart:" + userID
}

// LoadCart reads the user's cart blob from the session store. A missing key
// is an empty cart, not an error.
func LoadCart(ctx context.Context, client *redis.Client, userID string) (Cart, error) {
	data, err := client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart for %s: %w", userID, err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("decode cart for %s: %w", userID, err)
	}
	if c == nil {
		c = Cart{}
	}
	return c, nil
}

// SaveCart writes the cart back to the session store. Last write wins for
// concurrent updates from the same session.
func SaveCart(ctx context.Context, client *redis.Client, userID string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart for %s: %w", userID, err)
	}
	if err := client.Set(ctx, sessionKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("save cart for %s: %w", userID, err)
	}
	return nil
}

// ClearCart drops the session cart entirely.
func ClearCart(ctx context.Context, client *redis.Client, userID string) error {
	return client.Del(ctx, sessionKey(userID)).Err()
}
