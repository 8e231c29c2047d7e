// Package mosaic turns a raster image into a grid of colored shapes.
//
// A build runs in two stages. The source is point sampled on a regular grid:
// the top-left pixel of every SampleSize x SampleSize cell stands in for the
// whole cell. Then one shape per cell is drawn on a fresh white canvas, each
// shape occupying a ShapeSize + ShapeMargin slot:
//
//	canvas width  = ceil(source width  / SampleSize) * (ShapeSize + ShapeMargin)
//	canvas height = ceil(source height / SampleSize) * (ShapeSize + ShapeMargin)
//
// Four shapes are supported: square, circle (rasterizer antialiasing),
// smoothcircle (an incremental midpoint circle with coverage based edge
// blending) and a five pointed star.
//
// Point sampling is a known fidelity limitation: a cell whose top-left pixel
// is an outlier is drawn in that outlier's color.
//
// Builds are deterministic and keep no state between calls. Errors wrap one
// of ErrInvalidConfiguration, ErrInvalidShape or ErrInvalidImage.
package mosaic
