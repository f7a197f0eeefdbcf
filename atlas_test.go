package willowkit

import (
	"strings"
	"testing"
)

const singlePageJSON = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    },
    "trimmed.png": {
      "frame": {"x": 100, "y": 50, "w": 60, "h": 58},
      "rotated": false,
      "spriteSourceSize": {"x": 2, "y": 3, "w": 60, "h": 58},
      "sourceSize": {"w": 64, "h": 64}
    },
    "rotated.png": {
      "frame": {"x": 200, "y": 0, "w": 48, "h": 32},
      "rotated": true,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 48, "h": 32},
      "sourceSize": {"w": 32, "h": 48}
    },
    "walk_01": {
      "frame": {"x": 32, "y": 64, "w": 32, "h": 32},
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 32},
      "sourceSize": {"w": 32, "h": 32}
    },
    "walk_00": {
      "frame": {"x": 0, "y": 64, "w": 32, "h": 32},
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 32},
      "sourceSize": {"w": 32, "h": 32}
    },
    "walk_02": {
      "frame": {"x": 64, "y": 64, "w": 32, "h": 32},
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 32},
      "sourceSize": {"w": 32, "h": 32}
    }
  },
  "meta": {"image": "atlas.png", "size": {"w": 1024, "h": 1024}}
}`

const multiPageJSON = `{
  "textures": [
    {
      "image": "atlas-0.png",
      "frames": {
        "page0_sprite.png": {
          "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
          "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
          "sourceSize": {"w": 64, "h": 64}
        }
      }
    },
    {
      "image": "atlas-1.png",
      "frames": {
        "page1_sprite.png": {
          "frame": {"x": 10, "y": 20, "w": 50, "h": 50},
          "spriteSourceSize": {"x": 0, "y": 0, "w": 50, "h": 50},
          "sourceSize": {"w": 50, "h": 50}
        }
      }
    }
  ]
}`

func loadTestAtlas(t *testing.T, data string) *Atlas {
	t.Helper()
	atlas, err := LoadAtlas([]byte(data), nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	return atlas
}

func TestLoadAtlas_SinglePage(t *testing.T) {
	atlas := loadTestAtlas(t, singlePageJSON)
	if got := len(atlas.RegionNames()); got != 6 {
		t.Errorf("region count = %d, want 6", got)
	}

	r, ok := atlas.Region("hero.png")
	if !ok {
		t.Fatal("hero.png not found")
	}
	if r.X != 0 || r.Y != 0 || r.Width != 64 || r.Height != 64 || r.Page != 0 {
		t.Errorf("hero.png = %+v, want 64x64 at origin on page 0", r)
	}
}

func TestLoadAtlas_RegionMissing(t *testing.T) {
	atlas := loadTestAtlas(t, singlePageJSON)
	if _, ok := atlas.Region("nonexistent.png"); ok {
		t.Error("missing region reported as found")
	}
}

func TestLoadAtlas_TrimmedAndRotated(t *testing.T) {
	atlas := loadTestAtlas(t, singlePageJSON)

	r, _ := atlas.Region("trimmed.png")
	if r.OffsetX != 2 || r.OffsetY != 3 {
		t.Errorf("trimmed OffsetX/Y = %d/%d, want 2/3", r.OffsetX, r.OffsetY)
	}
	if r.OriginalW != 64 || r.OriginalH != 64 {
		t.Errorf("trimmed OriginalW/H = %d/%d, want 64/64", r.OriginalW, r.OriginalH)
	}

	r, _ = atlas.Region("rotated.png")
	if !r.Rotated {
		t.Error("rotated.png Rotated = false, want true")
	}
	if r.Width != 48 || r.Height != 32 {
		t.Errorf("rotated Width/Height = %d/%d, want 48/32", r.Width, r.Height)
	}
}

func TestLoadAtlas_MultiPage(t *testing.T) {
	atlas := loadTestAtlas(t, multiPageJSON)

	r0, _ := atlas.Region("page0_sprite.png")
	if r0.Page != 0 {
		t.Errorf("page0_sprite Page = %d, want 0", r0.Page)
	}
	r1, _ := atlas.Region("page1_sprite.png")
	if r1.Page != 1 {
		t.Errorf("page1_sprite Page = %d, want 1", r1.Page)
	}
	if r1.X != 10 || r1.Y != 20 {
		t.Errorf("page1_sprite X/Y = %d/%d, want 10/20", r1.X, r1.Y)
	}
}

func TestLoadAtlas_Errors(t *testing.T) {
	if _, err := LoadAtlas([]byte(`{invalid`), nil); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
	_, err := LoadAtlas([]byte(`{"meta":{}}`), nil)
	if err == nil {
		t.Fatal("expected error for JSON with no frames/textures, got nil")
	}
	if !strings.Contains(err.Error(), "neither") {
		t.Errorf("error message = %q, want mention of neither", err.Error())
	}
}

func TestAtlasClip(t *testing.T) {
	atlas := loadTestAtlas(t, singlePageJSON)

	clip, ok := atlas.Clip("walk_", 12, true)
	if !ok {
		t.Fatal("walk_ clip not built")
	}
	if clip.Name != "walk_" || clip.FPS != 12 || !clip.Loop {
		t.Errorf("clip = %+v", clip)
	}
	if len(clip.Frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(clip.Frames))
	}
	for i, want := range []uint16{0, 32, 64} {
		if clip.Frames[i].X != want {
			t.Errorf("frame %d X = %d, want %d (name order)", i, clip.Frames[i].X, want)
		}
	}
	if got := clip.Length(); got != 0.25 {
		t.Errorf("Length = %f, want 0.25", got)
	}

	if _, ok := atlas.Clip("run_", 12, true); ok {
		t.Error("clip with no matching regions reported as built")
	}
}

func BenchmarkLoadAtlas_SinglePage(b *testing.B) {
	data := []byte(singlePageJSON)
	for i := 0; i < b.N; i++ {
		_, _ = LoadAtlas(data, nil)
	}
}
