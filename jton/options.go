package jton

// Options configures a single Compress call. The zero value is the
// default: every packer in §4.4 is available.
type Options struct {
	// HumanReadable disables the base64 binary packers (booleans,
	// integer-width, scaled-float, raw-double) while keeping the
	// arithmetic-progression, constant-run, prefix-factored-string, and
	// columnar shapes, per §9's human-readable variant.
	HumanReadable bool
}

// DefaultOptions returns the standard configuration: every packer
// enabled.
func DefaultOptions() Options { return Options{} }

// HumanReadableOptions returns a configuration that keeps the encoded
// document free of base64 payloads, trading some size for a document a
// person can skim.
func HumanReadableOptions() Options { return Options{HumanReadable: true} }
