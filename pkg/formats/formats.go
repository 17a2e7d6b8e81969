// Package formats provides parsers for MDL model files and a PLY encoder.
package formats

// Note: Single and packed MDL decoding live in mdl_single.go and mdl_packed.go
// Note: Face lists are never stored in MDL files; see faces.go
