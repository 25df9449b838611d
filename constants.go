package zint

import "github.com/zint-go/zint/internal/dispatch"

// Symbology ids, re-exported from internal/dispatch so callers never need
// to import the internal package directly.
const (
	SymbologyCode128                = dispatch.Code128
	SymbologyGS1128                 = dispatch.GS1128
	SymbologyEAN14                  = dispatch.EAN14
	SymbologyNVE18                  = dispatch.NVE18
	SymbologyDPD                    = dispatch.DPD
	SymbologyUPUS10                 = dispatch.UPUS10
	SymbologyHIBC128                = dispatch.HIBC128
	SymbologyDataBarExpanded        = dispatch.DataBarExpanded
	SymbologyDataBarExpandedStacked = dispatch.DataBarExpandedStacked
)

// ValidID reports whether id names a known symbology, per spec.md §6.
func ValidID(id int) bool { return dispatch.ValidID(id) }

// BarcodeName returns the human-readable name for id, per spec.md §6.
func BarcodeName(id int) (string, error) { return dispatch.BarcodeName(id) }

// Cap reports whether symbology id declares every capability in mask, per
// spec.md §6's "cap(id, flag_mask)" query.
func Cap(id int, mask dispatch.Capability) bool { return dispatch.Cap(id, mask) }

// DefaultXdim returns the default X-dimension in millimetres for id, per
// spec.md §6.
func DefaultXdim(id int) float64 { return dispatch.DefaultXdim(id) }
