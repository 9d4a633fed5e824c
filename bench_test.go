package relaxed_test

import (
	"testing"

	relaxed "github.com/maotv/json-relaxed"
	"github.com/maotv/json-relaxed/convert"
)

func benchDoc() []byte {
	return []byte(`{"name":"svc","port":"8080","debug":1,"limits":{"max":100,"rate":2.5},"tags":["a","b","c"]}`)
}

func BenchmarkParseBytes(b *testing.B) {
	data := benchDoc()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := relaxed.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaybeInt(b *testing.B) {
	v, err := relaxed.ParseBytes(benchDoc())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := v.MaybeInt(relaxed.Field("port")).Relaxed(); got != 8080 {
			b.Fatalf("got %d", got)
		}
	}
}

func BenchmarkMaybeArray(b *testing.B) {
	v, err := relaxed.ParseBytes(benchDoc())
	if err != nil {
		b.Fatal(err)
	}
	conv := convert.String()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := relaxed.MaybeArray(v, relaxed.Field("tags"), conv).Relaxed(); len(got) != 3 {
			b.Fatalf("got %v", got)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	v, err := relaxed.ParseBytes(benchDoc())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.MarshalJSON(); err != nil {
			b.Fatal(err)
		}
	}
}
