package entity

import (
	"encoding/json"
	"testing"
)

func TestAnchorImagePrefersPrimary(t *testing.T) {
	q := &Quote{Images: []QuoteImage{
		{URL: "a.jpg"},
		{URL: "b.jpg", Primary: true},
		{URL: "c.jpg"},
	}}
	if img := q.AnchorImage(); img == nil || img.URL != "b.jpg" {
		t.Errorf("AnchorImage = %+v, want primary", img)
	}
}

func TestAnchorImageFallsBackToFirst(t *testing.T) {
	q := &Quote{Images: []QuoteImage{{URL: "a.jpg"}, {URL: "b.jpg"}}}
	if img := q.AnchorImage(); img == nil || img.URL != "a.jpg" {
		t.Errorf("AnchorImage = %+v, want first", img)
	}
}

func TestAnchorImageEmpty(t *testing.T) {
	if img := (&Quote{}).AnchorImage(); img != nil {
		t.Errorf("AnchorImage = %+v, want nil", img)
	}
}

func TestParseQuoteImages(t *testing.T) {
	imgs, err := ParseQuoteImages(json.RawMessage(`[{"url":"a.jpg","primary":true}]`))
	if err != nil {
		t.Fatalf("ParseQuoteImages: %v", err)
	}
	if len(imgs) != 1 || !imgs[0].Primary {
		t.Errorf("imgs = %+v", imgs)
	}

	if imgs, err := ParseQuoteImages(nil); err != nil || imgs != nil {
		t.Errorf("empty column: %v, %v", imgs, err)
	}
	if _, err := ParseQuoteImages(json.RawMessage(`{broken`)); err == nil {
		t.Error("malformed blob accepted")
	}
}

func TestGraceCreditsRemaining(t *testing.T) {
	cfg := &TenantRenderConfig{GraceCreditsTotal: 3, GraceCreditsUsed: 1}
	if got := cfg.GraceCreditsRemaining(); got != 2 {
		t.Errorf("remaining = %d", got)
	}
	dirty := &TenantRenderConfig{GraceCreditsTotal: 1, GraceCreditsUsed: 5}
	if got := dirty.GraceCreditsRemaining(); got != 0 {
		t.Errorf("dirty ledger remaining = %d, want clamped 0", got)
	}
}
