package scene

import (
	"sort"

	"github.com/pkg/errors"
)

// Options are the inputs every example scene is built from
type Options struct {
	Config      Config
	Seed        int64  // Seeds scene randomness such as sphere placement and noise
	TexturePath string // Optional image for textured globes
}

// DefaultOptions returns DefaultConfig with seed 42 and no texture file
func DefaultOptions() Options {
	return Options{Config: DefaultConfig(), Seed: 42}
}

// Factory builds a scene from options
type Factory func(Options) (*Scene, error)

// Info describes a registered example scene
type Info struct {
	Name        string
	Description string
	Lights      bool // Has direct light sampling targets
	Build       Factory
}

var registry = map[string]Info{}

func register(info Info) {
	registry[info.Name] = info
}

func init() {
	register(Info{"cornell", "Cornell box with a glass sphere and a rotated box", true, NewCornellScene})
	register(Info{"cornell-smoke", "Cornell box with two smoke-filled boxes", true, NewCornellSmokeScene})
	register(Info{"random-spheres", "Field of random moving, metal and glass spheres under a sky dome", false, NewRandomSpheresScene})
	register(Info{"perlin-spheres", "Two marble spheres under a sky dome", false, NewPerlinSpheresScene})
	register(Info{"simple-light", "Marble spheres lit by an emissive sphere and rectangle", true, NewSimpleLightScene})
	register(Info{"earth", "Image textured globe; checkerboard without a texture file", false, NewEarthScene})
	register(Info{"final", "Boxes, media, noise, textures and instanced spheres", true, NewFinalScene})
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the registered scene with the given name
func Lookup(name string) (Info, error) {
	info, ok := registry[name]
	if !ok {
		return Info{}, errors.Wrapf(ErrUnknownScene, "%q", name)
	}
	return info, nil
}

// Build looks up a scene by name and builds it
func Build(name string, opts Options) (*Scene, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	s, err := info.Build(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", name)
	}
	return s, nil
}
