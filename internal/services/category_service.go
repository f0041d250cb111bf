// internal/services/category_service.go
package services

import (
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/database"
	"github.com/vrcadore/ecommerce-backend/internal/models"
	"github.com/vrcadore/ecommerce-backend/internal/permissions"
	"github.com/vrcadore/ecommerce-backend/internal/utils"
)

// CategoryService maintains the category forest. Every operation that
// renumbers nested-set bounds runs inside a single transaction: a partially
// renumbered tree would corrupt every query on it, so failures roll back
// entirely and are never retried. Concurrent renumbering of the same tree is
// serialized by the store's row locking, not by application locks.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Slug     string `json:"slug" validate:"omitempty,max=100,slug"`
	IsActive *bool  `json:"is_active"`
	Parent   string `json:"parent" validate:"omitempty,max=100"` // parent slug; empty creates a new root
}

// UpdateCategoryRequest deliberately has no slug field: slug edits in the
// payload are dropped, not rejected.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active"`
}

func (s *CategoryService) List(params utils.PaginationParams) ([]models.Category, int64, error) {
	query := s.db.Model(&models.Category{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Pre-order within each tree.
	var categories []models.Category
	if err := utils.ApplyPagination(query, params).
		Order("tree_id, lft").
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (s *CategoryService) GetBySlug(slugStr string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("CreatedBy").Preload("UpdatedBy").
		Where("slug = ?", slugStr).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(actor permissions.Actor, req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	node := &models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}
	if node.Slug == "" {
		node.Slug = slug.Make(req.Name)
	}
	if req.IsActive != nil {
		node.IsActive = *req.IsActive
	}
	node.Stamp(actor.ID)

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if req.Parent == "" {
			return addRoot(tx, node)
		}

		var parent models.Category
		if err := tx.Where("slug = ?", req.Parent).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewFieldError("parent", "Parent category not found.")
			}
			return err
		}
		return addChild(tx, &parent, node)
	})
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.NewFieldError("slug", "category with this slug already exists.")
		}
		return nil, err
	}

	return node, nil
}

func (s *CategoryService) Update(actor permissions.Actor, slugStr string, req *UpdateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.GetValidationErrors(err)
	}

	category, err := s.GetBySlug(slugStr)
	if err != nil {
		return nil, err
	}

	// Sibling ordering is applied when a node is inserted or moved; a
	// rename does not re-slot the node.
	updates := map[string]interface{}{"updated_by_id": actor.ID}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBySlug(slugStr)
}

// Destroy deactivates the node. Categories are never removed from the tree,
// so the bounds of the remaining nodes stay untouched.
func (s *CategoryService) Destroy(actor permissions.Actor, slugStr string) error {
	category, err := s.GetBySlug(slugStr)
	if err != nil {
		return err
	}

	return s.db.Model(category).Updates(map[string]interface{}{
		"is_active":     false,
		"updated_by_id": actor.ID,
	}).Error
}

// Move relocates the whole subtree under a new parent, re-slotting it among
// the new siblings by name. Cross-tree moves rewrite the tree identifier and
// depth of every node in the subtree.
func (s *CategoryService) Move(actor permissions.Actor, nodeSlug, newParentSlug string) (*models.Category, error) {
	var nodeID string

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var node, parent models.Category
		if err := tx.Where("slug = ?", nodeSlug).First(&node).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNotFound
			}
			return err
		}
		if err := tx.Where("slug = ?", newParentSlug).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewFieldError("parent", "Parent category not found.")
			}
			return err
		}

		if node.ID == parent.ID || node.IsAncestorOf(&parent) {
			return utils.NewFieldError("parent", "Cannot move a category under itself or its own descendants.")
		}
		nodeID = node.ID.String()

		width := node.Rgt - node.Lft + 1
		oldTree := node.TreeID

		// Park the subtree at negated bounds so the gap arithmetic below
		// cannot touch it.
		if err := tx.Model(&models.Category{}).
			Where("tree_id = ? AND lft >= ? AND rgt <= ?", oldTree, node.Lft, node.Rgt).
			UpdateColumns(map[string]interface{}{
				"lft": gorm.Expr("-lft"),
				"rgt": gorm.Expr("-rgt"),
			}).Error; err != nil {
			return err
		}

		// Close the gap left behind.
		if err := tx.Model(&models.Category{}).
			Where("tree_id = ? AND lft > ?", oldTree, node.Rgt).
			UpdateColumn("lft", gorm.Expr("lft - ?", width)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).
			Where("tree_id = ? AND rgt > ?", oldTree, node.Rgt).
			UpdateColumn("rgt", gorm.Expr("rgt - ?", width)).Error; err != nil {
			return err
		}

		// The parent's bounds may have shifted with the gap close.
		if err := tx.First(&parent, "id = ?", parent.ID).Error; err != nil {
			return err
		}

		pos, err := childPosition(tx, &parent, node.Name)
		if err != nil {
			return err
		}

		// Open a gap at the destination.
		if err := tx.Model(&models.Category{}).
			Where("tree_id = ? AND rgt >= ?", parent.TreeID, pos).
			UpdateColumn("rgt", gorm.Expr("rgt + ?", width)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).
			Where("tree_id = ? AND lft >= ?", parent.TreeID, pos).
			UpdateColumn("lft", gorm.Expr("lft + ?", width)).Error; err != nil {
			return err
		}

		// Land the parked subtree in the gap.
		shift := pos - node.Lft
		depthDelta := parent.Depth + 1 - node.Depth
		if err := tx.Model(&models.Category{}).
			Where("tree_id = ? AND lft < 0", oldTree).
			UpdateColumns(map[string]interface{}{
				"lft":     gorm.Expr("-lft + ?", shift),
				"rgt":     gorm.Expr("-rgt + ?", shift),
				"depth":   gorm.Expr("depth + ?", depthDelta),
				"tree_id": parent.TreeID,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Category{}).
			Where("id = ?", node.ID).
			UpdateColumn("updated_by_id", actor.ID).Error
	})
	if err != nil {
		return nil, err
	}

	var moved models.Category
	if err := s.db.Preload("CreatedBy").Preload("UpdatedBy").
		First(&moved, "id = ?", nodeID).Error; err != nil {
		return nil, err
	}
	return &moved, nil
}

// Ancestors returns the chain from root to the node's direct parent, in
// pre-order.
func (s *CategoryService) Ancestors(slugStr string) ([]models.Category, error) {
	node, err := s.GetBySlug(slugStr)
	if err != nil {
		return nil, err
	}

	var ancestors []models.Category
	if err := s.db.
		Where("tree_id = ? AND lft < ? AND rgt > ?", node.TreeID, node.Lft, node.Rgt).
		Order("lft").
		Find(&ancestors).Error; err != nil {
		return nil, err
	}
	return ancestors, nil
}

// Descendants returns the node's whole subtree (excluding the node itself)
// in pre-order.
func (s *CategoryService) Descendants(slugStr string) ([]models.Category, error) {
	node, err := s.GetBySlug(slugStr)
	if err != nil {
		return nil, err
	}

	var descendants []models.Category
	if err := s.db.
		Where("tree_id = ? AND lft > ? AND rgt < ?", node.TreeID, node.Lft, node.Rgt).
		Order("lft").
		Find(&descendants).Error; err != nil {
		return nil, err
	}
	return descendants, nil
}

func addRoot(tx *gorm.DB, node *models.Category) error {
	var maxTree int
	if err := tx.Model(&models.Category{}).
		Select("COALESCE(MAX(tree_id), 0)").
		Scan(&maxTree).Error; err != nil {
		return err
	}

	node.TreeID = maxTree + 1
	node.Lft = 1
	node.Rgt = 2
	node.Depth = 1
	return tx.Create(node).Error
}

func addChild(tx *gorm.DB, parent, node *models.Category) error {
	pos, err := childPosition(tx, parent, node.Name)
	if err != nil {
		return err
	}

	// Everything at or right of the slot shifts by the width of the new
	// leaf; ancestors only grow their right bound.
	if err := tx.Model(&models.Category{}).
		Where("tree_id = ? AND rgt >= ?", parent.TreeID, pos).
		UpdateColumn("rgt", gorm.Expr("rgt + 2")).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Category{}).
		Where("tree_id = ? AND lft >= ?", parent.TreeID, pos).
		UpdateColumn("lft", gorm.Expr("lft + 2")).Error; err != nil {
		return err
	}

	node.TreeID = parent.TreeID
	node.Lft = pos
	node.Rgt = pos + 1
	node.Depth = parent.Depth + 1
	return tx.Create(node).Error
}

// childPosition finds the lft slot for a child named name under parent,
// keeping direct children ordered by name ascending.
func childPosition(tx *gorm.DB, parent *models.Category, name string) (int, error) {
	var sibling models.Category
	err := tx.
		Where("tree_id = ? AND depth = ? AND lft > ? AND rgt < ? AND name > ?",
			parent.TreeID, parent.Depth+1, parent.Lft, parent.Rgt, name).
		Order("lft").
		First(&sibling).Error
	if err == nil {
		return sibling.Lft, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return parent.Rgt, nil
	}
	return 0, err
}
