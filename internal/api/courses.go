// ABOUTME: Course catalog CRUD against /admin/courses

package api

import "context"

// Course is a catalog course as stored by the backend.
type Course struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Image       string  `json:"image,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// CourseInput is the create/update payload for a course.
type CourseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Image       string  `json:"image,omitempty"`
}

// ListCourses returns all courses.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	body, err := c.get(ctx, "/admin/courses")
	if err != nil {
		return nil, err
	}
	return decodeList[Course](body, "courses")
}

// CreateCourse adds a new course to the catalog.
func (c *Client) CreateCourse(ctx context.Context, input CourseInput) error {
	_, err := c.post(ctx, "/admin/courses", input)
	return err
}

// UpdateCourse replaces the course with the given id.
func (c *Client) UpdateCourse(ctx context.Context, id string, input CourseInput) error {
	_, err := c.put(ctx, "/admin/courses/"+id, input)
	return err
}

// DeleteCourse removes the course with the given id.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/courses/"+id)
}
