// Package entity models collectible items and autonomous NPCs placed in the maze.
package entity

import (
	"github.com/lixenwraith/maze3d/vmath"
)

type ItemType uint8

const (
	ItemCoin ItemType = iota
	ItemKey
	ItemHealth
	ItemExit
	itemTypeCount
)

var itemIcons = [itemTypeCount]rune{
	ItemCoin:   '◆',
	ItemKey:    '⚷',
	ItemHealth: '♥',
	ItemExit:   '▣',
}

var itemNames = [itemTypeCount]string{
	ItemCoin:   "coin",
	ItemKey:    "key",
	ItemHealth: "health",
	ItemExit:   "exit",
}

// Icon returns the single-cell glyph used for sprites and the HUD
func (t ItemType) Icon() rune {
	if t >= itemTypeCount {
		return '?'
	}
	return itemIcons[t]
}

func (t ItemType) String() string {
	if t >= itemTypeCount {
		return "unknown"
	}
	return itemNames[t]
}

// Item is a pickup at a cell centre. Collected flips once and never reverts.
type Item struct {
	Position  vmath.Vec2
	Type      ItemType
	Collected bool
}

func NewItem(pos vmath.Vec2, t ItemType) Item {
	return Item{Position: pos, Type: t}
}

func (i *Item) DistanceTo(p vmath.Vec2) float64 {
	return i.Position.Distance(p)
}
