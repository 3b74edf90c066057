package shopping

import (
	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shopping"
)

// AddItemRequest contains the input for adding a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest contains the input for changing a line's quantity.
// Quantity zero removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// CartItemView is a cart line joined with its current product state.
// LineTotalCents uses the product's current price; prices are only frozen
// at checkout.
type CartItemView struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	PriceCents     int64     `json:"price_cents"`
	Quantity       int       `json:"quantity"`
	LineTotalCents int64     `json:"line_total_cents"`
	ImageURL       string    `json:"image_url,omitempty"`
	Stock          int       `json:"stock"`
}

// CartResponse is the API representation of a cart
type CartResponse struct {
	ID             uuid.UUID      `json:"id"`
	Items          []CartItemView `json:"items"`
	TotalCents     int64          `json:"total_cents"`
	TotalFormatted string         `json:"total_formatted"`
}

// toCartResponse projects a cart against the current product catalog.
// Lines whose product has been deleted are skipped.
func toCartResponse(cart *shopping.Cart, products []catalog.Product) CartResponse {
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	resp := CartResponse{
		ID:    cart.ID,
		Items: make([]CartItemView, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lineTotal := int64(item.Quantity) * product.PriceCents
		resp.Items = append(resp.Items, CartItemView{
			ProductID:      product.ID,
			ProductName:    product.Name,
			PriceCents:     product.PriceCents,
			Quantity:       item.Quantity,
			LineTotalCents: lineTotal,
			ImageURL:       product.ImageURL,
			Stock:          product.Stock,
		})
		resp.TotalCents += lineTotal
	}
	resp.TotalFormatted = shared.FormatCents(resp.TotalCents)
	return resp
}
