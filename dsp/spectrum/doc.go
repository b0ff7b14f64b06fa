// Package spectrum provides spectrum-domain helpers for analyzing
// filter responses.
//
// Magnitude, power and phase extraction operate on complex bins
// produced by an FFT backend. MagnitudeFromTaps samples the frequency
// response of an FIR tap set by zero-padding it into an FFT frame, so
// designed filters can be checked against their target response
// without evaluating the transfer function point by point.
package spectrum
