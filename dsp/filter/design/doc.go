// Package design converts analog (s-domain) biquad prototypes into
// digital (z-domain) coefficients for the dsp/filter/biquad runtime.
//
// The pipeline is the classic one: the resonance Q is applied to the
// denominator, both polynomials are prewarped to counteract the
// frequency-axis distortion of the bilinear transform, and the
// transform maps the section into the z domain. A shared gain
// accumulator is multiplied by each section's gain ratio, so after
// designing a cascade it holds the single scalar that normalizes the
// overall passband gain to unity (install it as the chain gain).
package design
