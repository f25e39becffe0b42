package scripts

import (
	"log"

	"bookhunt/internal/engine"
	"bookhunt/internal/gameplay"
)

// Collector receives a collected pickup.
type Collector interface {
	Collect() bool
}

// CollectibleItem is a book lying in the level. When an object tagged
// TargetTag walks into its trigger it reports to the manager and removes
// itself.
type CollectibleItem struct {
	engine.BaseComponent
	TargetTag string
	Manager   Collector

	collected bool
}

func (c *CollectibleItem) Start() {
	if c.TargetTag == "" {
		c.TargetTag = PlayerTag
	}
}

func (c *CollectibleItem) OnTriggerEnter(other *engine.GameObject) {
	if c.collected || other == nil || !other.HasTag(c.TargetTag) {
		return
	}
	if c.Manager == nil {
		log.Printf("CollectibleItem: no minigame manager: %v", gameplay.ErrMissingDependency)
		return
	}

	c.collected = true
	c.Manager.Collect()

	g := c.GetGameObject()
	if g != nil && g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.Destroy(g)
	}
}

func (c *CollectibleItem) Collected() bool { return c.collected }

func init() {
	engine.RegisterScript("CollectibleItem", collectibleItemFactory, collectibleItemSerializer)
}

func collectibleItemFactory(props map[string]any) engine.Component {
	tag, _ := props["targetTag"].(string)
	return &CollectibleItem{TargetTag: tag}
}

func collectibleItemSerializer(c engine.Component) map[string]any {
	item, ok := c.(*CollectibleItem)
	if !ok {
		return nil
	}
	return map[string]any{
		"targetTag": item.TargetTag,
	}
}
