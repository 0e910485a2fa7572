package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"sort"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Registry сопоставляет символические имена текстур с файлами и кэширует
// декодированные изображения. Несколько имён могут ссылаться на один файл.
type Registry struct {
	paths  map[string]string      // имя -> путь
	images map[string]image.Image // путь -> изображение
}

// NewRegistry создает пустой реестр.
func NewRegistry() *Registry {
	return &Registry{
		paths:  make(map[string]string),
		images: make(map[string]image.Image),
	}
}

// Register связывает имя с файлом. Повторная регистрация перезаписывает путь.
func (r *Registry) Register(name, path string) {
	r.paths[name] = path
}

// Load декодирует все зарегистрированные файлы. Каждый путь читается один раз.
func (r *Registry) Load() error {
	for _, name := range r.Names() {
		path := r.paths[name]
		if _, ok := r.images[path]; ok {
			continue
		}
		img, err := decodeFile(path)
		if err != nil {
			return fmt.Errorf("failed to load asset %s: %w", name, err)
		}
		r.images[path] = img
		b := img.Bounds()
		log.Printf("Loaded asset %s from %s (%dx%d)", name, path, b.Dx(), b.Dy())
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: empty %s image", path, format)
	}
	return img, nil
}

// Lookup возвращает изображение по имени, если оно загружено.
func (r *Registry) Lookup(name string) (image.Image, bool) {
	path, ok := r.paths[name]
	if !ok {
		return nil, false
	}
	img, ok := r.images[path]
	return img, ok
}

// Names возвращает зарегистрированные имена в алфавитном порядке.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.paths))
	for name := range r.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
