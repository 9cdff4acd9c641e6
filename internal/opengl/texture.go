package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"shader-demos/scene"
)

// UploadCubeMap pushes the six decoded faces to a GL_TEXTURE_CUBE_MAP and
// records the texture id on the cube map. Must run on the main goroutine
// with the GL context current, after cm.Ready reports true.
func UploadCubeMap(cm *scene.CubeMap) error {
	if err := cm.Err(); err != nil {
		return err
	}
	if cm.Uploaded() {
		return nil
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)

	for i, face := range cm.Faces {
		if face == nil {
			gl.DeleteTextures(1, &id)
			return fmt.Errorf("cube map face %d not decoded", i)
		}
		gl.TexImage2D(
			uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i),
			0,
			gl.RGBA8,
			int32(face.Width),
			int32(face.Height),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(face.Pixels),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	cm.GLID = id
	return nil
}
