// ABOUTME: Course category CRUD against /admin/course-categories

package api

import "context"

// Category groups courses in the catalog.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

// ListCategories returns all course categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	body, err := c.get(ctx, "/admin/course-categories")
	if err != nil {
		return nil, err
	}
	return decodeList[Category](body, "categories")
}

// CreateCategory adds a new course category.
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) error {
	_, err := c.post(ctx, "/admin/course-categories", input)
	return err
}

// UpdateCategory replaces the category with the given id.
func (c *Client) UpdateCategory(ctx context.Context, id string, input CategoryInput) error {
	_, err := c.put(ctx, "/admin/course-categories/"+id, input)
	return err
}

// DeleteCategory removes the category with the given id.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/course-categories/"+id)
}
