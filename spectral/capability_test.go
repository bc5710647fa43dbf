package spectral

import "testing"

func TestCapabilitiesStable(t *testing.T) {
	first := Capabilities()
	second := Capabilities()
	if first != second {
		t.Errorf("probe not stable: %+v then %+v", first, second)
	}
}

func TestCapabilitiesAlwaysPortable(t *testing.T) {
	if !Capabilities().HasPortable {
		t.Error("portable backend must always be available")
	}
	if !Capabilities().Supports(BackendPortable) {
		t.Error("Supports(BackendPortable) = false")
	}
}

func TestPortableOnlyDescriptor(t *testing.T) {
	d := PortableOnly()
	if !d.Supports(BackendPortable) {
		t.Error("portable-only descriptor must support the portable backend")
	}
	for _, be := range []Backend{BackendNEON, BackendAVX2, BackendAVX512, BackendAMX} {
		if d.Supports(be) {
			t.Errorf("portable-only descriptor claims %v", be)
		}
	}
}

func TestBackendPriorityOrder(t *testing.T) {
	// Matrix coprocessor above standard vector units above portable.
	if !(BackendAMX.Priority() > BackendAVX512.Priority() &&
		BackendAVX512.Priority() > BackendAVX2.Priority() &&
		BackendAVX2.Priority() > BackendNEON.Priority() &&
		BackendNEON.Priority() > BackendPortable.Priority()) {
		t.Error("backend priority order violated")
	}
	if BackendPortable.Priority() <= 0 {
		t.Error("portable backend must have a positive rank")
	}
}

func TestBackendGeometry(t *testing.T) {
	if got := BackendAVX2.Lanes(TypeFloat32); got != 8 {
		t.Errorf("AVX2 float32 lanes = %d, want 8", got)
	}
	if got := BackendAVX512.Lanes(TypeFloat64); got != 8 {
		t.Errorf("AVX512 float64 lanes = %d, want 8", got)
	}
	if got := BackendNEON.Lanes(TypeInt8); got != 16 {
		t.Errorf("NEON int8 lanes = %d, want 16", got)
	}
	if got := BackendAMX.MinAlign(); got != 128 {
		t.Errorf("AMX min align = %d, want 128", got)
	}
}
