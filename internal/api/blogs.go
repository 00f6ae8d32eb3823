package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Blog is one published post.
type Blog struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Date     string `json:"date"`
}

// ListBlogs returns a page of posts.
func (c *Client) ListBlogs(ctx context.Context, skip, limit int) ([]Blog, error) {
	q := url.Values{
		"skip":  {strconv.Itoa(skip)},
		"limit": {strconv.Itoa(limit)},
	}
	var blogs []Blog
	if err := c.get(ctx, "/blogs", q, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBlog fetches a single post by id.
func (c *Client) GetBlog(ctx context.Context, id string) (*Blog, error) {
	var b Blog
	if err := c.get(ctx, fmt.Sprintf("/blogs/%s", url.PathEscape(id)), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SearchBlogs returns posts matching a free-text query.
func (c *Client) SearchBlogs(ctx context.Context, query string) ([]Blog, error) {
	q := url.Values{"query": {query}}
	var blogs []Blog
	if err := c.get(ctx, "/blogs/search", q, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// BlogsByCategory returns posts in one category.
func (c *Client) BlogsByCategory(ctx context.Context, category string) ([]Blog, error) {
	var blogs []Blog
	path := fmt.Sprintf("/blogs/category/%s", url.PathEscape(category))
	if err := c.get(ctx, path, nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}
