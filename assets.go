package corral

import (
	"embed"
	"encoding/json"
	"fmt"
	"image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets
var embeddedAssets embed.FS

// AssetSet holds every image the game draws: one frame sequence per heading
// for cows and the herder, plus the fence and title images.
type AssetSet struct {
	Cow    [headingCount][]*ebiten.Image
	Person [headingCount][]*ebiten.Image
	Fence  *ebiten.Image
	Title  *ebiten.Image
}

// assetManifest maps logical names to PNG files under assets/.
// Headings are keyed by their lowercase names (left, right, up, down).
type assetManifest struct {
	Cow    map[string][]string `json:"cow"`
	Person map[string][]string `json:"person"`
	Fence  string              `json:"fence"`
	Title  string              `json:"title"`
}

// DefaultAssets loads the images embedded in the binary.
func DefaultAssets() (*AssetSet, error) {
	return LoadAssets(embeddedAssets)
}

// LoadAssets reads assets/manifest.json from fsys and decodes every image it
// references. The manifest must list all four headings for both the cow and
// the person, each with at least one frame.
func LoadAssets(fsys fs.FS) (*AssetSet, error) {
	data, err := fs.ReadFile(fsys, "assets/manifest.json")
	if err != nil {
		return nil, fmt.Errorf("corral: read asset manifest: %w", err)
	}
	var m assetManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("corral: parse asset manifest: %w", err)
	}

	set := &AssetSet{}
	if set.Cow, err = loadFrames(fsys, "cow", m.Cow); err != nil {
		return nil, err
	}
	if set.Person, err = loadFrames(fsys, "person", m.Person); err != nil {
		return nil, err
	}
	if set.Fence, err = loadImage(fsys, m.Fence); err != nil {
		return nil, err
	}
	if set.Title, err = loadImage(fsys, m.Title); err != nil {
		return nil, err
	}
	return set, nil
}

// loadFrames decodes one frame sequence per heading from a manifest section.
func loadFrames(fsys fs.FS, kind string, entries map[string][]string) ([headingCount][]*ebiten.Image, error) {
	var frames [headingCount][]*ebiten.Image
	for h := HeadingLeft; h < headingCount; h++ {
		files := entries[h.String()]
		if len(files) == 0 {
			return frames, fmt.Errorf("corral: asset manifest: %s has no %s frames", kind, h)
		}
		for _, file := range files {
			img, err := loadImage(fsys, file)
			if err != nil {
				return frames, err
			}
			frames[h] = append(frames[h], img)
		}
	}
	return frames, nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("corral: asset manifest: missing image name")
	}
	f, err := fsys.Open(path.Join("assets", name))
	if err != nil {
		return nil, fmt.Errorf("corral: open asset %s: %w", name, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("corral: decode asset %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
