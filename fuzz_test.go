package simgo

import (
	"bytes"
	"testing"
)

func FuzzSearch(f *testing.F) {
	f.Add("thngs apa")
	f.Add("the old man")
	f.Add("")
	f.Add("   ")
	f.Add("宮崎駿")
	f.Add("naïve café")
	f.Add(string([]byte{0xFF, 0xFE, 0x00}))

	engine, err := New[int]()
	if err != nil {
		f.Fatal(err)
	}
	engine.Insert(1, "Things Fall Apart")
	engine.Insert(2, "The Old Man and the Sea")
	engine.Insert(3, "千と千尋の神隠し")

	f.Fuzz(func(t *testing.T, query string) {
		results := engine.Search(query)
		for _, id := range results {
			if id < 1 || id > 3 {
				t.Fatalf("search returned unknown identifier %d", id)
			}
		}
	})
}

func FuzzInsertSearchDelete(f *testing.F) {
	f.Add("Things Fall Apart", "thngs")
	f.Add("", "")
	f.Add("a/b/c", "b")

	f.Fuzz(func(t *testing.T, content, query string) {
		engine, err := New[string](WithStopWords("/"))
		if err != nil {
			t.Fatal(err)
		}

		engine.Insert("id", content)
		engine.Search(query)
		engine.Delete("id")

		if got := engine.Len(); got != 0 {
			t.Fatalf("engine not empty after delete: %d entries", got)
		}
		if got := engine.VocabularySize(); got != 0 {
			t.Fatalf("vocabulary not empty after delete: %d tokens", got)
		}
	})
}

func FuzzLoadFromReader(f *testing.F) {
	engine, err := New[uint64]()
	if err != nil {
		f.Fatal(err)
	}
	engine.Insert(1, "Things Fall Apart")
	engine.Insert(2, "The Old Man and the Sea")

	for _, compression := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZstd} {
		var buf bytes.Buffer
		if err := engine.SaveToWriter(&buf, WithCompression(compression)); err != nil {
			f.Fatal(err)
		}
		f.Add(buf.Bytes())
	}
	f.Add([]byte{})
	f.Add([]byte("SGS1 garbage"))

	// Malformed input must surface as an error, never a panic.
	f.Fuzz(func(t *testing.T, data []byte) {
		restored, err := LoadFromReader[uint64](bytes.NewReader(data))
		if err != nil {
			return
		}
		restored.Search("thngs")
	})
}
