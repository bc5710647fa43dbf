//go:build !amd64 && !arm64

package spectral

// detect on architectures without a recognized vector facility reports
// only the portable backend. Dispatch still succeeds for every operation
// with a portable kernel; there is no sequential mode.
func detect() CapabilityDescriptor {
	return PortableOnly()
}
