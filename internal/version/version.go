// ABOUTME: Version constants for speechwav
// ABOUTME: Product identification printed by the CLI
package version

const (
	// Version is the release version
	Version = "0.1.0"

	// Product is the product name
	Product = "speechwav"
)

// String returns "product version"
func String() string {
	return Product + " " + Version
}
