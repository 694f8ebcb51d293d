package width

// inferChain is the sequence Infer walks. 4 is deliberately absent: it can be
// requested but is never inferred.
var inferChain = [...]Width{W2, W8, W16, W32, W64}

// Infer returns the smallest width in the chain 2, 8, 16, 32, 64 such that v
// divided by 2^width truncates to zero. Negative values are measured by
// magnitude; their output still shows the full two's-complement pattern.
func Infer(v int64) Width {
	w := inferChain[0]
	for _, next := range inferChain[1:] {
		if v/(int64(1)<<w.Bits()) == 0 {
			break
		}
		w = next
	}
	return w
}

// Resolution is the outcome of reconciling an inferred width with a request.
type Resolution struct {
	Width       Width
	Inferred    Width
	Requested   Width
	Substituted bool // Requested was too small and Inferred was used instead
}

// Resolve picks the effective width for v. A request narrower than the
// inferred width is replaced by the inferred one; any other request is
// honoured, including one wider than needed.
func Resolve(v int64, requested Width) Resolution {
	inferred := Infer(v)
	res := Resolution{Width: inferred, Inferred: inferred, Requested: requested}
	if !requested.IsSet() {
		return res
	}
	if requested < inferred {
		res.Substituted = true
		return res
	}
	res.Width = requested
	return res
}
