package comparison

// Shared benchmark inputs - generated once at init
var (
	input1KB  []byte
	input64KB []byte
	input1MB  []byte
	benchSink byte
)

func init() {
	input1KB = makeInput(1024)
	input64KB = makeInput(64 * 1024)
	input1MB = makeInput(1024 * 1024)
}

func makeInput(n int) []byte {
	in := make([]byte, n)
	for i := range in {
		in[i] = byte('a' + (i % 26))
	}
	return in
}

func sink(sum []byte) {
	benchSink ^= sum[0]
}
