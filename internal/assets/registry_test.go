package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, size int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegisterAndLookup(t *testing.T) {
	dir := t.TempDir()
	odi := writePNG(t, dir, "odi.png", 64)

	r := NewRegistry()
	r.Register("Entity.Odi", odi)
	r.Register("Entity.Enemy", odi)

	if _, ok := r.Lookup("Entity.Odi"); ok {
		t.Error("Expected lookup to fail before Load")
	}
	if err := r.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	player, ok := r.Lookup("Entity.Odi")
	if !ok {
		t.Fatal("Expected player sprite")
	}
	enemy, ok := r.Lookup("Entity.Enemy")
	if !ok {
		t.Fatal("Expected enemy sprite")
	}
	if player != enemy {
		t.Error("Expected names sharing a file to share the decoded image")
	}
	if b := player.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("Expected 64x64, got %v", b)
	}
	if _, ok := r.Lookup("Entity.Unknown"); ok {
		t.Error("Expected unknown name to be missing")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"Missing file", filepath.Join(dir, "missing.png")},
		{"Not an image", garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.Register("Entity.Odi", tt.path)
			if err := r.Load(); err == nil {
				t.Errorf("Expected error for %s", tt.path)
			}
		})
	}
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("b", "x")
	r.Register("a", "y")
	r.Register("b", "z")
	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Expected [a b], got %v", names)
	}
}

func TestBundledSprite(t *testing.T) {
	r := NewRegistry()
	r.Register("Entity.Odi", filepath.Join("..", "..", "asset", "img", "odi.png"))
	if err := r.Load(); err != nil {
		t.Fatalf("Expected bundled sprite to load: %v", err)
	}
}
