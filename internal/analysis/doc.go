// Package analysis characterises the tesseract's motion offline.
//
//   - [Trace]: follows one vertex through a headless run
//   - [PowerSpectrum]: magnitude spectrum of a sampled signal
//   - [DominantBin]: strongest non-DC frequency bin
//
// # Example
//
//	tr, _ := analysis.Trace(ctx, *cfg, 15, 2048)
//	ps := analysis.PowerSpectrum(tr.X())
//	bin := analysis.DominantBin(ps)
//	period := float64(len(tr.Points)) / float64(bin) // in ticks
package analysis
