package components

import (
	"bookhunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wires    bool // outline cubes
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw renders the mesh at the object's world transform. Cubes follow yaw;
// an Animator on the same object adds its body offset.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	pos := g.WorldPosition()
	if anim := engine.GetComponent[*Animator](g); anim != nil {
		pos.Y += anim.BodyOffset()
	}

	switch m.MeshType {
	case MeshCube:
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(g.WorldRotation().Y, 0, 1, 0)
		rl.DrawCubeV(rl.Vector3{}, m.Size, m.Color)
		if m.Wires {
			rl.DrawCubeWiresV(rl.Vector3{}, m.Size, rl.Black)
		}
		rl.PopMatrix()
	case MeshSphere:
		rl.DrawSphere(pos, m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}
}
