// internal/models/category.go
package models

// Category is a node in the product category forest. The hierarchy is
// encoded as nested sets: Lft/Rgt/TreeID/Depth are maintained exclusively by
// the category service and are never accepted from API clients. Within a
// tree, a node contains its descendants' intervals:
//
//	ancestor.Lft < node.Lft && node.Rgt < ancestor.Rgt
//
// Roots start at depth 1 with bounds (1, 2); every root owns its own TreeID.
type Category struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	IsActive bool   `json:"is_active" gorm:"not null;default:false"`

	Lft    int `json:"-" gorm:"not null;index:idx_categories_tree_lft,priority:2"`
	Rgt    int `json:"-" gorm:"not null"`
	TreeID int `json:"-" gorm:"not null;index:idx_categories_tree_lft,priority:1"`
	Depth  int `json:"-" gorm:"not null"`

	AuditFields
}

func (Category) TableName() string {
	return "categories"
}

// IsAncestorOf reports whether c strictly contains other.
func (c *Category) IsAncestorOf(other *Category) bool {
	return c.TreeID == other.TreeID && c.Lft < other.Lft && other.Rgt < c.Rgt
}

// IsRoot reports whether c is the top of its tree.
func (c *Category) IsRoot() bool {
	return c.Depth == 1
}
