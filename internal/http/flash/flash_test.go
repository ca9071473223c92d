package flash

import (
	"strings"
	"testing"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
)

func testCodec() *Codec {
	return NewCodec([]byte("0123456789abcdef"), "eshop_flash", false)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := testCodec()
	in := []view.Flash{
		{Kind: view.FlashInfo, Message: "Deleting product, please wait...."},
		{Kind: view.FlashSuccess, Message: "Product deleted"},
	}

	v, err := c.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := c.Decode(v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestCodec_RejectsTampering(t *testing.T) {
	c := testCodec()
	v, _ := c.Encode([]view.Flash{{Kind: view.FlashSuccess, Message: "ok"}})

	forged, _ := NewCodec([]byte("another-secret-value"), "eshop_flash", false).Encode([]view.Flash{{Kind: view.FlashSuccess, Message: "ok"}})
	cases := map[string]string{
		"no separator":  strings.ReplaceAll(v, ".", ""),
		"bad signature": v[:strings.Index(v, ".")] + ".AAAA",
		"other secret":  forged,
	}
	for name, val := range cases {
		if _, err := c.Decode(val); err != ErrInvalid {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestCodec_DropsBlankMessages(t *testing.T) {
	c := testCodec()
	v, _ := c.Encode([]view.Flash{{Kind: view.FlashInfo, Message: "  "}})
	if _, err := c.Decode(v); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid for blank-only flash, got %v", err)
	}
}

func TestCodec_KeepsLastMessages(t *testing.T) {
	c := testCodec()
	var in []view.Flash
	for i := 0; i < maxMessages+3; i++ {
		in = append(in, view.Flash{Kind: view.FlashInfo, Message: strings.Repeat("m", i+1)})
	}
	v, _ := c.Encode(in)
	out, err := c.Decode(v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != maxMessages || out[len(out)-1] != in[len(in)-1] {
		t.Fatalf("expected last %d messages, got %+v", maxMessages, out)
	}
}

func TestNotices(t *testing.T) {
	var n Notices
	n.Info("a")
	n.Success("b")
	n.Error("c")

	got := n.Items()
	want := []view.FlashKind{view.FlashInfo, view.FlashSuccess, view.FlashError}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("item %d: expected %s, got %s", i, k, got[i].Kind)
		}
	}
}
