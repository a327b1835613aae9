package store

import (
	"sort"
	"strconv"
)

// CreateGroup creates a group and moves the listed shapes into it. Unknown
// ids are skipped.
func (s *Store) CreateGroup(name string, shapeIDs []int) *Group {
	g := &Group{
		ID:       s.nextGroupID,
		Name:     name,
		Visible:  true,
		Order:    s.maxGroupOrder() + 1,
		Expanded: true,
	}
	s.nextGroupID++
	if g.Name == "" {
		g.Name = "Group " + strconv.Itoa(g.ID)
	}
	s.groups[g.ID] = g

	previous := make(map[int]bool)
	for _, id := range shapeIDs {
		sh, ok := s.shapes[id]
		if !ok {
			continue
		}
		if sh.GroupID != 0 {
			previous[sh.GroupID] = true
		}
		sh.GroupID = g.ID
		s.emit(ShapeUpdated, id, g.ID)
	}
	for old := range previous {
		s.collectGroup(old)
	}

	s.emit(GroupCreated, 0, g.ID)
	s.commit()
	return g
}

// GroupSelected groups the current selection.
func (s *Store) GroupSelected(name string) (*Group, bool) {
	ids := s.SelectedIDs()
	if len(ids) == 0 {
		return nil, false
	}
	return s.CreateGroup(name, ids), true
}

// RemoveGroup ungroups the members (keeping the shapes) and deletes the
// group record.
func (s *Store) RemoveGroup(id int) bool {
	if _, ok := s.groups[id]; !ok {
		return false
	}
	for _, sh := range s.shapes {
		if sh.GroupID == id {
			sh.GroupID = 0
			s.emit(ShapeUpdated, sh.ID, 0)
		}
	}
	delete(s.groups, id)
	s.emit(GroupRemoved, 0, id)
	s.commit()
	return true
}

// collectGroup deletes a group that has no members left.
func (s *Store) collectGroup(id int) {
	if id == 0 {
		return
	}
	if _, ok := s.groups[id]; !ok {
		return
	}
	for _, sh := range s.shapes {
		if sh.GroupID == id {
			return
		}
	}
	delete(s.groups, id)
	s.emit(GroupRemoved, 0, id)
}

// Group returns the group with the given id.
func (s *Store) Group(id int) (*Group, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// Groups returns every group in panel order.
func (s *Store) Groups() []*Group {
	out := make([]*Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ShapesInGroup returns the members of a group in ascending z-order. An
// unknown group has no members.
func (s *Store) ShapesInGroup(id int) []*Shape {
	if id == 0 {
		return nil
	}
	var out []*Shape
	for _, sh := range s.shapes {
		if sh.GroupID == id {
			out = append(out, sh)
		}
	}
	sortByZ(out)
	return out
}

// SetGroupVisible shows or hides every member of a group at once without
// touching their own visible flags.
func (s *Store) SetGroupVisible(id int, visible bool) bool {
	return s.updateGroup(id, func(g *Group) { g.Visible = visible })
}

// RenameGroup changes a group's name.
func (s *Store) RenameGroup(id int, name string) bool {
	return s.updateGroup(id, func(g *Group) { g.Name = name })
}

// ToggleGroupExpanded flips the panel expansion state of a group.
func (s *Store) ToggleGroupExpanded(id int) bool {
	return s.updateGroup(id, func(g *Group) { g.Expanded = !g.Expanded })
}

// SelectGroup selects every member of a group.
func (s *Store) SelectGroup(id int) bool {
	members := s.ShapesInGroup(id)
	if len(members) == 0 {
		return false
	}
	s.clearSelected()
	for _, sh := range members {
		sh.Selected = true
	}
	s.primary = s.lowestSelected()
	s.emit(ShapeSelected, 0, id)
	s.requestRender()
	return true
}

func (s *Store) updateGroup(id int, fn func(*Group)) bool {
	g, ok := s.groups[id]
	if !ok {
		return false
	}
	fn(g)
	s.emit(GroupUpdated, 0, id)
	s.commit()
	return true
}

func (s *Store) maxGroupOrder() int {
	order := 0
	for _, g := range s.groups {
		if g.Order > order {
			order = g.Order
		}
	}
	return order
}
