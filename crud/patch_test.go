package crud

import (
	"testing"
	"time"
)

func testDescriptor() Descriptor {
	return Descriptor{
		Name: "Blog",
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true},
			{Name: "category", Kind: KindString},
			{Name: "tags", Kind: KindStringList},
			{Name: "featured", Kind: KindBool},
			{Name: "rating", Kind: KindInt, Min: 1, Max: 5},
			{Name: "date", Kind: KindDate, DefaultNow: true},
		},
		ImageField: "imageUrl",
	}
}

func payloadWith(values map[string]any) *Payload {
	return &Payload{Values: values}
}

func TestBuildCreateDocRequiredMissing(t *testing.T) {
	d := testDescriptor()
	_, err := d.BuildCreateDoc(payloadWith(map[string]any{}), time.Now())
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestBuildCreateDocRequiredEmpty(t *testing.T) {
	d := testDescriptor()
	_, err := d.BuildCreateDoc(payloadWith(map[string]any{"title": ""}), time.Now())
	if err == nil {
		t.Fatal("expected error for empty required field")
	}
}

func TestBuildCreateDocDefaults(t *testing.T) {
	d := testDescriptor()
	now := time.Now()
	doc, err := d.BuildCreateDoc(payloadWith(map[string]any{"title": "hello"}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, ok := doc["featured"].(bool); !ok || got {
		t.Errorf("featured default = %v, want false", doc["featured"])
	}
	tags, ok := doc["tags"].([]string)
	if !ok || len(tags) != 0 {
		t.Errorf("tags default = %v, want empty list", doc["tags"])
	}
	if got, ok := doc["date"].(time.Time); !ok || !got.Equal(now) {
		t.Errorf("date default = %v, want %v", doc["date"], now)
	}
	if _, ok := doc["category"]; ok {
		t.Error("optional string without a default should stay absent")
	}
	if !doc["createdAt"].(time.Time).Equal(now) || !doc["updatedAt"].(time.Time).Equal(now) {
		t.Error("createdAt/updatedAt should both be the creation time")
	}
}

func TestBuildCreateDocSkipsImageField(t *testing.T) {
	d := testDescriptor()
	d.Fields = append(d.Fields, Field{Name: "imageUrl", Kind: KindString})
	doc, err := d.BuildCreateDoc(payloadWith(map[string]any{
		"title":    "hello",
		"imageUrl": "http://example.com/pic.png",
	}), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["imageUrl"]; ok {
		t.Error("image field must be left to the upload resolver, not the doc builder")
	}
}

func TestBuildPatchOnlyPresentKeys(t *testing.T) {
	d := testDescriptor()
	patch, err := d.BuildPatch(payloadWith(map[string]any{"category": "tech"}), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch["category"] != "tech" {
		t.Errorf("category = %v, want tech", patch["category"])
	}
	for _, absent := range []string{"title", "tags", "featured", "rating", "date"} {
		if _, ok := patch[absent]; ok {
			t.Errorf("field %s was not sent but entered the patch", absent)
		}
	}
	if _, ok := patch["updatedAt"]; !ok {
		t.Error("updatedAt must be stamped on every patch")
	}
}

func TestBuildPatchFalsyValuesOverwrite(t *testing.T) {
	d := testDescriptor()
	patch, err := d.BuildPatch(payloadWith(map[string]any{
		"featured": false,
		"category": "",
	}), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := patch["featured"].(bool); !ok || got {
		t.Errorf("explicit false must enter the patch, got %v", patch["featured"])
	}
	if got, ok := patch["category"].(string); !ok || got != "" {
		t.Errorf("explicit empty string must enter the patch, got %v", patch["category"])
	}
}

func TestBuildPatchRatingBounds(t *testing.T) {
	d := testDescriptor()
	for _, tc := range []struct {
		rating  float64
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{6, true},
	} {
		_, err := d.BuildPatch(payloadWith(map[string]any{"rating": tc.rating}), time.Now())
		if tc.wantErr && err == nil {
			t.Errorf("rating %v: expected bounds error", tc.rating)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("rating %v: unexpected error %v", tc.rating, err)
		}
	}
}

func TestBuildPatchRatingNonIntegral(t *testing.T) {
	d := testDescriptor()
	if _, err := d.BuildPatch(payloadWith(map[string]any{"rating": 3.5}), time.Now()); err == nil {
		t.Error("fractional rating should be rejected")
	}
}

func TestBuildPatchTagsFromString(t *testing.T) {
	d := testDescriptor()
	patch, err := d.BuildPatch(payloadWith(map[string]any{"tags": "go, web ,go"}), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags, ok := patch["tags"].([]string)
	if !ok {
		t.Fatalf("tags = %T, want []string", patch["tags"])
	}
	want := []string{"go", "web", "go"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q (order and duplicates preserved)", i, tags[i], want[i])
		}
	}
}

func TestBuildPatchTagsFromJSONArray(t *testing.T) {
	d := testDescriptor()
	patch, err := d.BuildPatch(payloadWith(map[string]any{"tags": []any{"go", "mongo"}}), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags := patch["tags"].([]string)
	if len(tags) != 2 || tags[0] != "go" || tags[1] != "mongo" {
		t.Errorf("tags = %v", tags)
	}
}

func TestBuildPatchDateFormats(t *testing.T) {
	d := testDescriptor()
	for _, s := range []string{"2026-08-31", "2026-08-31T10:00:00Z"} {
		patch, err := d.BuildPatch(payloadWith(map[string]any{"date": s}), time.Now())
		if err != nil {
			t.Fatalf("date %q: unexpected error %v", s, err)
		}
		if _, ok := patch["date"].(time.Time); !ok {
			t.Errorf("date %q coerced to %T, want time.Time", s, patch["date"])
		}
	}
	if _, err := d.BuildPatch(payloadWith(map[string]any{"date": "yesterday"}), time.Now()); err == nil {
		t.Error("unparseable date should be rejected")
	}
}

func TestBuildPatchBoolFromFormString(t *testing.T) {
	d := testDescriptor()
	patch, err := d.BuildPatch(payloadWith(map[string]any{"featured": "true"}), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := patch["featured"].(bool); !ok || !got {
		t.Errorf("featured = %v, want true", patch["featured"])
	}
}
