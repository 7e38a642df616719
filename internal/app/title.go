package app

import "fmt"

// sceneTitle formats the window title: position in the catalogue, scene
// title and the hovered object's label.
func sceneTitle(index, count int, title, hovered string) string {
	s := fmt.Sprintf("%s | %d/%d %s", windowTitle, index+1, count, title)
	if hovered != "" {
		s += " | " + hovered
	}
	return s
}

// titleCache remembers the last title sent to the window.
type titleCache struct {
	last string
}

// update reports whether title differs from the last one and records it.
func (c *titleCache) update(title string) bool {
	if title == c.last {
		return false
	}
	c.last = title
	return true
}
