// Package zint implements a barcode-generation pipeline: given payload
// bytes and a symbology selector, it produces a rendered barcode (a
// row-major module matrix for linear and stacked symbologies) plus
// optional human-readable text and a serialized raster output.
//
// # Overview
//
// The pipeline is a pure function of (Symbology, InputMode, Options,
// Payload) -> Symbol | error. A Symbol is a mutable aggregate threaded
// through the pipeline stages in order: dispatch, escape expansion,
// charset/ECI normalization, GS1 verification, symbology encoding, and
// geometry finalization.
//
// # Detailed subsystems
//
// Two symbology families are implemented in full: the Code-128 family
// (internal/code128, including GS1-128, EAN-14, NVE-18, DPD, UPU S10, and
// HIBC-128) and GS1 DataBar Expanded / Expanded Stacked
// (internal/databar). Encode rejects any other symbology id as unknown.
//
// # Basic usage
//
//	s := zint.Create()
//	s.Symbology = zint.SymbologyCode128
//	if err := zint.Encode(s, []byte("AIM")); err != nil {
//	    // err is a *zint.Error carrying a numeric Code and Severity
//	}
//	bmp, _ := zint.Buffer(s, 0)
package zint
