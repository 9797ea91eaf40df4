package rasterize

import "image/color"

// Option configures rasterization.
type Option func(*Config)

// WithDimensions sets the output image dimensions.
func WithDimensions(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithVertexLabels enables or disables vertex ID labels.
func WithVertexLabels(enable bool) Option {
	return func(c *Config) {
		c.VertexLabels = enable
	}
}

// WithEdgeLabels enables or disables edge labels.
func WithEdgeLabels(enable bool) Option {
	return func(c *Config) {
		c.EdgeLabels = enable
	}
}

// WithTriangleLabels enables or disables triangle labels.
func WithTriangleLabels(enable bool) Option {
	return func(c *Config) {
		c.TriangleLabels = enable
	}
}

// WithFillTriangles enables or disables triangle fills.
func WithFillTriangles(enable bool) Option {
	return func(c *Config) {
		c.FillTriangles = enable
	}
}

// WithDrawVertices enables or disables vertex markers.
func WithDrawVertices(enable bool) Option {
	return func(c *Config) {
		c.DrawVertices = enable
	}
}

// WithDrawEdges enables or disables edge strokes.
func WithDrawEdges(enable bool) Option {
	return func(c *Config) {
		c.DrawEdges = enable
	}
}

// WithDrawPerimeters enables or disables perimeter outlines.
func WithDrawPerimeters(enable bool) Option {
	return func(c *Config) {
		c.DrawPerimeters = enable
	}
}

// WithDrawHoles enables or disables hole outlines.
func WithDrawHoles(enable bool) Option {
	return func(c *Config) {
		c.DrawHoles = enable
	}
}

// WithColors overrides the perimeter, hole, triangle, edge, and vertex
// colors in one call, in that order.
func WithColors(perimeter, hole, triangle, edge, vertex color.Color) Option {
	return func(c *Config) {
		c.PerimeterColor = perimeter
		c.HoleColor = hole
		c.TriangleColor = triangle
		c.EdgeColor = edge
		c.VertexColor = vertex
	}
}
