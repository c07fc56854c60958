package models

import "sort"

// Move is one legal destination of a piece and the pieces captured on the
// way there.
type Move struct {
	Dest     Position
	Captured []*Piece
}

// Moves maps destinations to captured pieces. Destinations are kept in the
// order they were first discovered; setting a known destination again
// replaces its capture list in place.
type Moves struct {
	order    []Position
	captures map[Position][]*Piece
}

func (m *Moves) Set(dest Position, captured []*Piece) {
	if m.captures == nil {
		m.captures = make(map[Position][]*Piece)
	}
	if _, exists := m.captures[dest]; !exists {
		m.order = append(m.order, dest)
	}
	m.captures[dest] = captured
}

func (m Moves) Len() int {
	return len(m.order)
}

func (m Moves) Has(dest Position) bool {
	_, ok := m.captures[dest]
	return ok
}

// Captured returns the capture list of dest and whether dest is legal.
func (m Moves) Captured(dest Position) ([]*Piece, bool) {
	c, ok := m.captures[dest]
	return c, ok
}

func (m Moves) Destinations() []Position {
	return append([]Position(nil), m.order...)
}

// List returns the moves in discovery order.
func (m Moves) List() []Move {
	list := make([]Move, 0, len(m.order))
	for _, dest := range m.order {
		list = append(list, Move{Dest: dest, Captured: m.captures[dest]})
	}
	return list
}

// ByCaptures returns the moves with the longest capture lists first. Ties
// keep discovery order.
func (m Moves) ByCaptures() []Move {
	list := m.List()
	sort.SliceStable(list, func(i, j int) bool {
		return len(list[i].Captured) > len(list[j].Captured)
	})
	return list
}
