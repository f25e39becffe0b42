package world

import (
	"bookhunt/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, 0.1, 1000.0)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, 0.1, 1000.0)
	}

	vp := rl.MatrixMultiply(view, proj)

	// Each plane is row4 plus or minus one of the first three rows.
	rows := [3][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
	}
	w := [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}

	var f Frustum
	for i, row := range rows {
		f.planes[2*i] = planeFrom(w, row, 1)
		f.planes[2*i+1] = planeFrom(w, row, -1)
	}
	return f
}

func planeFrom(w, row [4]float32, sign float32) Plane {
	return normalizePlane(Plane{
		normal:   rl.Vector3{X: w[0] + sign*row[0], Y: w[1] + sign*row[1], Z: w[2] + sign*row[2]},
		distance: w[3] + sign*row[3],
	})
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

// ContainsAABB is conservative: boxes near a corner of the frustum may pass.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for _, p := range f.planes {
		// The box corner furthest along the plane normal.
		corner := box.Min
		if p.normal.X >= 0 {
			corner.X = box.Max.X
		}
		if p.normal.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if p.normal.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(p.normal, corner)+p.distance < 0 {
			return false
		}
	}
	return true
}
