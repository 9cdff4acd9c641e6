package scene

import (
	"fmt"
)

// CubeMap is a six-face environment texture. Faces are decoded on a
// background goroutine; the render loop keeps drawing the solid fallback
// background until Ready reports true, then uploads the faces on the main
// goroutine. Face order: +X, -X, +Y, -Y, +Z, -Z.
type CubeMap struct {
	Faces [6]*Texture

	// GLID is set by the OpenGL backend after upload.
	GLID uint32

	done chan struct{}
	err  error
}

// LoadCubeMapAsync starts decoding the six face images and returns
// immediately. Decoding never blocks or gates rendering.
func LoadCubeMapAsync(paths [6]string) *CubeMap {
	cm := &CubeMap{done: make(chan struct{})}
	go func() {
		defer close(cm.done)
		for i, p := range paths {
			tex, err := LoadTexture(p)
			if err != nil {
				cm.err = fmt.Errorf("cube map face %d: %w", i, err)
				return
			}
			cm.Faces[i] = tex
		}
	}()
	return cm
}

// Ready reports whether decoding has finished, successfully or not.
func (cm *CubeMap) Ready() bool {
	select {
	case <-cm.done:
		return true
	default:
		return false
	}
}

// Err returns the decode error, if any. Only meaningful once Ready is true.
func (cm *CubeMap) Err() error {
	return cm.err
}

// Uploaded reports whether the faces have been pushed to the GPU.
func (cm *CubeMap) Uploaded() bool {
	return cm.GLID != 0
}
