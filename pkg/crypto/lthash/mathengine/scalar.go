package mathengine

// scalarBackend is the portable baseline: one uint64 word per loop
// iteration.
type scalarBackend struct{}

// Scalar is the portable math-engine backend, always available.
var Scalar Backend = scalarBackend{}

func (scalarBackend) Name() string { return "scalar" }

func (scalarBackend) Add(dst, a, b []byte, p Params) {
	n := len(dst) / 8
	for i := 0; i < n; i++ {
		storeWord(dst, i, addWord(loadWord(a, i), loadWord(b, i), p))
	}
}

func (scalarBackend) Sub(dst, a, b []byte, p Params) {
	n := len(dst) / 8
	for i := 0; i < n; i++ {
		storeWord(dst, i, subWord(loadWord(a, i), loadWord(b, i), p))
	}
}

func (scalarBackend) CheckPadding(data []byte, p Params) bool {
	if !p.NeedsPadding {
		return true
	}
	n := len(data) / 8
	for i := 0; i < n; i++ {
		if !checkPaddingWord(loadWord(data, i), p) {
			return false
		}
	}
	return true
}

func (scalarBackend) ClearPadding(data []byte, p Params) {
	if !p.NeedsPadding {
		return
	}
	n := len(data) / 8
	for i := 0; i < n; i++ {
		storeWord(data, i, clearPaddingWord(loadWord(data, i), p))
	}
}
