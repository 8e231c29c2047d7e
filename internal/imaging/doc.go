// Package imaging is the image I/O side of the mosaic tools.
//
// It loads and decodes source images, caps their width before sampling,
// reads single pixel colors, converts colors to and from hex, and encodes or
// saves finished mosaics as PNG. The mosaic core in package mosaic never
// touches files or encoders directly; everything goes through here.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// image's top-left corner, whatever its Bounds().Min is:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Supported Formats
//
// Decoding: PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding: PNG only.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless and can be called concurrently on different images.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Unreadable or undecodable source files
//   - Malformed hex colors
//   - Encoding or file write failures
package imaging
