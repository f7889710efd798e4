package mathengine

// vectorBackend batches wordsPerStep packed uint64 words per loop
// iteration. This is the Go analogue of the original's SSE2 (2 words,
// 128 bits) and AVX2 (4 words, 256 bits) backends: same per-lane
// formula as Scalar, applied to a wider window per iteration so the
// compiler has more independent work to schedule and auto-vectorise.
// There is no hand-written machine code here -- Go has no portable way
// to express CPU SIMD intrinsics outside per-architecture assembly --
// but the batch width and the "fixed per instance, bit-identical
// output" contract are preserved, which is what LtHash actually
// depends on.
type vectorBackend struct {
	name         string
	wordsPerStep int
}

// Vector128 batches two words per iteration, mirroring the original
// SSE2 backend's lane width.
var Vector128 Backend = vectorBackend{name: "vector128", wordsPerStep: 2}

// Vector256 batches four words per iteration, mirroring the original
// AVX2 backend's lane width. Selecting it only makes sense when the
// host CPU actually supports AVX2; see DetectBackend.
var Vector256 Backend = vectorBackend{name: "vector256", wordsPerStep: 4}

func (v vectorBackend) Name() string { return v.name }

func (v vectorBackend) Add(dst, a, b []byte, p Params) {
	n := len(dst) / 8
	step := v.wordsPerStep
	i := 0
	for ; i+step <= n; i += step {
		for j := 0; j < step; j++ {
			storeWord(dst, i+j, addWord(loadWord(a, i+j), loadWord(b, i+j), p))
		}
	}
	for ; i < n; i++ {
		storeWord(dst, i, addWord(loadWord(a, i), loadWord(b, i), p))
	}
}

func (v vectorBackend) Sub(dst, a, b []byte, p Params) {
	n := len(dst) / 8
	step := v.wordsPerStep
	i := 0
	for ; i+step <= n; i += step {
		for j := 0; j < step; j++ {
			storeWord(dst, i+j, subWord(loadWord(a, i+j), loadWord(b, i+j), p))
		}
	}
	for ; i < n; i++ {
		storeWord(dst, i, subWord(loadWord(a, i), loadWord(b, i), p))
	}
}

func (v vectorBackend) CheckPadding(data []byte, p Params) bool {
	if !p.NeedsPadding {
		return true
	}
	n := len(data) / 8
	step := v.wordsPerStep
	i := 0
	for ; i+step <= n; i += step {
		for j := 0; j < step; j++ {
			if !checkPaddingWord(loadWord(data, i+j), p) {
				return false
			}
		}
	}
	for ; i < n; i++ {
		if !checkPaddingWord(loadWord(data, i), p) {
			return false
		}
	}
	return true
}

func (v vectorBackend) ClearPadding(data []byte, p Params) {
	if !p.NeedsPadding {
		return
	}
	n := len(data) / 8
	step := v.wordsPerStep
	i := 0
	for ; i+step <= n; i += step {
		for j := 0; j < step; j++ {
			storeWord(data, i+j, clearPaddingWord(loadWord(data, i+j), p))
		}
	}
	for ; i < n; i++ {
		storeWord(data, i, clearPaddingWord(loadWord(data, i), p))
	}
}
