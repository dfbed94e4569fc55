package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"sync"

	"cityscape/internal/logger"
	_ "golang.org/x/image/webp"
)

// Texture is a decoded face image.
type Texture struct {
	Source string
	Image  image.Image
}

// DecodeFile decodes a png, jpeg or webp image.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// Pending is a texture batch being decoded in the background.
type Pending struct {
	done     chan struct{}
	textures []Texture
}

// LoadTextures starts decoding paths on a bounded set of goroutines. Files that
// fail to decode are logged and dropped; the survivors keep the order of paths.
func LoadTextures(ctx context.Context, paths []string, log *logger.Logger) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		results := make([]*Texture, len(paths))
		sem := make(chan struct{}, runtime.NumCPU())
		var wg sync.WaitGroup
		for i, path := range paths {
			i, path := i, path
			wg.Add(1)
			go func() {
				defer wg.Done()
				select {
				case sem <- struct{}{}:
				case <-ctx.Done():
					return
				}
				defer func() { <-sem }()
				img, err := DecodeFile(path)
				if err != nil {
					log.Logf("assets: dropping texture: %v", err)
					return
				}
				results[i] = &Texture{Source: path, Image: img}
			}()
		}
		wg.Wait()
		for _, t := range results {
			if t != nil {
				p.textures = append(p.textures, *t)
			}
		}
	}()
	return p
}

// Await blocks until every texture has been decoded or dropped. It is the single
// join point before placement starts.
func (p *Pending) Await(ctx context.Context) ([]Texture, error) {
	select {
	case <-p.done:
		return p.textures, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("assets: %w", ctx.Err())
	}
}

// Sources returns the texture paths, for layout generation.
func Sources(textures []Texture) []string {
	out := make([]string, len(textures))
	for i, t := range textures {
		out[i] = t.Source
	}
	return out
}
