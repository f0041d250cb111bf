// internal/serializers/serializers.go
//
// Package serializers renders models into their wire representations. Every
// resource has two shapes: List (id, primary label, resource URL) and Detail
// (full fields, nested relations, audit identities resolved to usernames).
// The shape is resolved once per request from the action being served.
package serializers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
)

type Shape int

const (
	List Shape = iota
	Detail
)

// ShapeFor maps an action to the representation it serves. Retrieve and the
// write actions echo the full detail shape; list stays slim.
func ShapeFor(action permissions.Action) Shape {
	if action == permissions.ActionList {
		return List
	}
	return Detail
}

type AuditInfo struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

func audit(base models.BaseModel, fields models.AuditFields) AuditInfo {
	return AuditInfo{
		CreatedAt: base.CreatedAt,
		UpdatedAt: base.UpdatedAt,
		CreatedBy: username(fields.CreatedBy),
		UpdatedBy: username(fields.UpdatedBy),
	}
}

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}

// --- Category ---

type CategoryList struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	URL  string    `json:"url"`
}

type CategoryDetail struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	IsActive bool      `json:"is_active"`
	AuditInfo
}

func Category(cat *models.Category, shape Shape) interface{} {
	if shape == List {
		return CategoryList{
			ID:   cat.ID,
			Name: cat.Name,
			Slug: cat.Slug,
			URL:  "/api/categories/" + cat.Slug + "/",
		}
	}
	return CategoryDetail{
		ID:        cat.ID,
		Name:      cat.Name,
		Slug:      cat.Slug,
		IsActive:  cat.IsActive,
		AuditInfo: audit(cat.BaseModel, cat.AuditFields),
	}
}

func Categories(cats []models.Category, shape Shape) []interface{} {
	out := make([]interface{}, 0, len(cats))
	for i := range cats {
		out = append(out, Category(&cats[i], shape))
	}
	return out
}

// --- Brand ---

type BrandList struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	URL  string    `json:"url"`
}

type BrandDetail struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	AuditInfo
}

func Brand(b *models.Brand, shape Shape) interface{} {
	if shape == List {
		return BrandList{
			ID:   b.ID,
			Name: b.Name,
			Slug: b.Slug,
			URL:  "/api/brands/" + b.Slug + "/",
		}
	}
	return BrandDetail{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		IsActive:    b.IsActive,
		AuditInfo:   audit(b.BaseModel, b.AuditFields),
	}
}

func Brands(brands []models.Brand, shape Shape) []interface{} {
	out := make([]interface{}, 0, len(brands))
	for i := range brands {
		out = append(out, Brand(&brands[i], shape))
	}
	return out
}

// --- Attribute ---

type AttributeList struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	URL  string    `json:"url"`
}

type AttributeDetail struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	AuditInfo
}

func Attribute(a *models.Attribute, shape Shape) interface{} {
	if shape == List {
		return AttributeList{
			ID:   a.ID,
			Name: a.Name,
			Slug: a.Slug,
			URL:  "/api/attributes/" + a.Slug + "/",
		}
	}
	return AttributeDetail{
		ID:          a.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		IsActive:    a.IsActive,
		AuditInfo:   audit(a.BaseModel, a.AuditFields),
	}
}

func Attributes(attrs []models.Attribute, shape Shape) []interface{} {
	out := make([]interface{}, 0, len(attrs))
	for i := range attrs {
		out = append(out, Attribute(&attrs[i], shape))
	}
	return out
}

// --- Product ---

type ProductList struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Brand    string    `json:"brand,omitempty"`
	Category string    `json:"category,omitempty"`
	URL      string    `json:"url"`
}

type ProductDetail struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description"`
	IsActive     bool          `json:"is_active"`
	Brand        interface{}   `json:"brand,omitempty"`
	Category     interface{}   `json:"category,omitempty"`
	Owner        string        `json:"owner,omitempty"`
	ProductLines []interface{} `json:"product_lines"`
	Images       []interface{} `json:"images"`
	AuditInfo
}

func Product(p *models.Product, shape Shape) interface{} {
	if shape == List {
		item := ProductList{
			ID:   p.ID,
			Name: p.Name,
			Slug: p.Slug,
			URL:  "/api/products/" + p.Slug + "/",
		}
		if p.Brand != nil {
			item.Brand = p.Brand.Name
		}
		if p.Category != nil {
			item.Category = p.Category.Name
		}
		return item
	}

	detail := ProductDetail{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		IsActive:     p.IsActive,
		Owner:        username(p.Owner),
		ProductLines: ProductLines(p.ProductLines, List),
		Images:       ProductImages(p.Images, List),
		AuditInfo:    audit(p.BaseModel, p.AuditFields),
	}
	if p.Brand != nil {
		detail.Brand = Brand(p.Brand, List)
	}
	if p.Category != nil {
		detail.Category = Category(p.Category, List)
	}
	return detail
}

func Products(products []models.Product, shape Shape) []interface{} {
	out := make([]interface{}, 0, len(products))
	for i := range products {
		out = append(out, Product(&products[i], shape))
	}
	return out
}

// --- ProductLine ---

type ProductLineList struct {
	ID    uuid.UUID       `json:"id"`
	Sku   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	URL   string          `json:"url"`
}

type ProductAttributeValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductLineDetail struct {
	ID            uuid.UUID               `json:"id"`
	Sku           string                  `json:"sku"`
	Price         decimal.Decimal         `json:"price"`
	StockQuantity int                     `json:"stock_quantity"`
	IsActive      bool                    `json:"is_active"`
	Product       interface{}             `json:"product,omitempty"`
	Attributes    []ProductAttributeValue `json:"attributes"`
	AuditInfo
}

func ProductLine(pl *models.ProductLine, shape Shape) interface{} {
	if shape == List {
		return ProductLineList{
			ID:    pl.ID,
			Sku:   pl.Sku,
			Price: pl.Price,
			URL:   "/api/product_lines/" + pl.Sku + "/",
		}
	}

	attrs := make([]ProductAttributeValue, 0, len(pl.Attributes))
	for _, pa := range pl.Attributes {
		value := ProductAttributeValue{Value: pa.Value}
		if pa.Attribute != nil {
			value.Name = pa.Attribute.Name
		}
		attrs = append(attrs, value)
	}

	detail := ProductLineDetail{
		ID:            pl.ID,
		Sku:           pl.Sku,
		Price:         pl.Price,
		StockQuantity: pl.StockQuantity,
		IsActive:      pl.IsActive,
		Attributes:    attrs,
		AuditInfo:     audit(pl.BaseModel, pl.AuditFields),
	}
	if pl.Product != nil {
		detail.Product = Product(pl.Product, List)
	}
	return detail
}

func ProductLines(lines []models.ProductLine, shape Shape) []interface{} {
	out := make([]interface{}, 0, len(lines))
	for i := range lines {
		out = append(out, ProductLine(&lines[i], shape))
	}
	return out
}

// --- ProductImage ---

type ProductImageList struct {
	ID      uuid.UUID `json:"id"`
	Image   string    `json:"image"`
	AltText string    `json:"alt_text"`
	URL     string    `json:"url"`
}

type ProductImageDetail struct {
	ID      uuid.UUID   `json:"id"`
	Image   string      `json:"image"`
	AltText string      `json:"alt_text"`
	Product interface{} `json:"product,omitempty"`
	AuditInfo
}

func ProductImage(pi *models.ProductImage, shape Shape) interface{} {
	if shape == List {
		return ProductImageList{
			ID:      pi.ID,
			Image:   pi.Image,
			AltText: pi.AltText,
			URL:     "/api/product_image/" + pi.ID.String() + "/",
		}
	}
	detail := ProductImageDetail{
		ID:        pi.ID,
		Image:     pi.Image,
		AltText:   pi.AltText,
		AuditInfo: audit(pi.BaseModel, pi.AuditFields),
	}
	if pi.Product != nil {
		detail.Product = Product(pi.Product, List)
	}
	return detail
}

func ProductImages(images []models.ProductImage, shape Shape) []interface{} {
	out := make([]interface{}, 0, len(images))
	for i := range images {
		out = append(out, ProductImage(&images[i], shape))
	}
	return out
}

// --- User ---

type UserList struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	URL      string    `json:"url"`
}

type UserDetail struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`
	DateJoined  time.Time `json:"date_joined"`
}

func User(u *models.User, shape Shape) interface{} {
	if shape == List {
		return UserList{
			ID:       u.ID,
			Username: u.Username,
			URL:      "/api/users/" + u.Username + "/",
		}
	}
	return UserDetail{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Name:        u.Name,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		DateJoined:  u.CreatedAt,
	}
}

func Users(users []models.User, shape Shape) []interface{} {
	out := make([]interface{}, 0, len(users))
	for i := range users {
		out = append(out, User(&users[i], shape))
	}
	return out
}
