package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateItemRequest body para POST /api/items. SKU vacío = se genera.
type CreateItemRequest struct {
	CategoryID          string          `json:"category_id" validate:"required,uuid4"`
	Name                string          `json:"name" validate:"required"`
	SKU                 string          `json:"sku"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
}

// UpdateItemRequest body para PUT /api/items/:id.
type UpdateItemRequest struct {
	CategoryID          string          `json:"category_id" validate:"required,uuid4"`
	Name                string          `json:"name" validate:"required"`
	SKU                 string          `json:"sku" validate:"required"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
}

// CategoryDTO categoría para listados.
type CategoryDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ItemDTO artículo del catálogo para listados.
type ItemDTO struct {
	ID                  string          `json:"id"`
	CategoryID          string          `json:"category_id"`
	Name                string          `json:"name"`
	SKU                 string          `json:"sku"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
}

// LeadRequest body para crear/actualizar un lead.
type LeadRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"telefono"`
	Status       string `json:"status" validate:"omitempty,oneof=new contacted qualified won lost"`
	Priority     string `json:"priority" validate:"omitempty,oneof=low medium high"`
	ItemID       string `json:"item_id" validate:"omitempty,uuid4"`
	FollowUpDate string `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes"`
}

// LeadDTO lead del pipeline para listados.
type LeadDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	ItemID       string `json:"item_id,omitempty"`
	FollowUpDate string `json:"follow_up_date,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
