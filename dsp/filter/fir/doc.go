// Package fir provides windowed-sinc FIR filter design, polyphase
// decomposition of a prototype filter, and streaming runtimes that
// apply designed filters to multichannel sample streams.
//
// Design produces symmetric (linear-phase) tap vectors normalized to
// unity passband gain. Filter applies one filter to one stream with a
// circular delay line of arbitrary length. Queue applies a bank of
// filters in parallel against shared circular histories and requires a
// power-of-two filter length.
package fir
