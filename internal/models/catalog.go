package models

import "strings"

// Catalog is an ID-indexed lookup table over projects and areas. Task and
// project references go through it, so a reference to a missing or deleted
// record resolves to nil rather than dangling.
type Catalog struct {
	projects map[uint]*Project
	areas    map[uint]*Area
	order    []uint // project IDs in ascending order
}

// NewCatalog indexes projects and areas by ID.
func NewCatalog(projects []Project, areas []Area) *Catalog {
	c := &Catalog{
		projects: make(map[uint]*Project, len(projects)),
		areas:    make(map[uint]*Area, len(areas)),
	}
	for i := range projects {
		p := &projects[i]
		c.projects[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	for i := range areas {
		a := &areas[i]
		c.areas[a.ID] = a
	}
	return c
}

// Project returns the non-deleted project with the given ID, or nil.
func (c *Catalog) Project(id *uint) *Project {
	if c == nil || id == nil {
		return nil
	}
	p, ok := c.projects[*id]
	if !ok || p.IsDeleted() {
		return nil
	}
	return p
}

// Area returns the non-deleted area with the given ID, or nil.
func (c *Catalog) Area(id *uint) *Area {
	if c == nil || id == nil {
		return nil
	}
	a, ok := c.areas[*id]
	if !ok || a.IsDeleted() {
		return nil
	}
	return a
}

// ProjectBySlug finds a non-deleted project by exact slug.
func (c *Catalog) ProjectBySlug(slug string) *Project {
	if c == nil {
		return nil
	}
	for _, id := range c.order {
		p := c.projects[id]
		if !p.IsDeleted() && p.Slug == slug {
			return p
		}
	}
	return nil
}

// DeletedProjectBySlug finds the most recently created deleted project with slug.
func (c *Catalog) DeletedProjectBySlug(slug string) *Project {
	if c == nil {
		return nil
	}
	for i := len(c.order) - 1; i >= 0; i-- {
		p := c.projects[c.order[i]]
		if p.IsDeleted() && p.Slug == slug {
			return p
		}
	}
	return nil
}

// AreaByName finds a non-deleted area by case-insensitive name.
func (c *Catalog) AreaByName(name string) *Area {
	if c == nil {
		return nil
	}
	name = strings.TrimSpace(name)
	for _, a := range c.areas {
		if !a.IsDeleted() && strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return nil
}

// SlugTaken reports whether a non-deleted project already owns slug.
func (c *Catalog) SlugTaken(slug string) bool {
	return c.ProjectBySlug(slug) != nil
}

// Projects returns the non-deleted projects in ascending ID order.
func (c *Catalog) Projects() []*Project {
	if c == nil {
		return nil
	}
	var out []*Project
	for _, id := range c.order {
		if p := c.projects[id]; !p.IsDeleted() {
			out = append(out, p)
		}
	}
	return out
}
