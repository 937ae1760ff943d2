package beamgrid

// PropertyTable maps each material type to its static physical properties.
// The table is injected configuration: the trace engine reads it, nothing
// in the core ever writes it.
type PropertyTable map[MaterialType]Properties

// DefaultProperties returns the standard material property table.
// Callers may pass their own PropertyTable to override individual entries;
// the returned map is a fresh copy each call, safe to mutate.
func DefaultProperties() PropertyTable {
	return PropertyTable{
		Empty:    {Reflectivity: 1.0, Transparency: 1.0},
		Mirror:   {Reflectivity: 0.95},
		Water:    {Reflectivity: 0.70, Transparency: 0.30, Diffusion: 15},
		Glass:    {Reflectivity: 0.50, Transparency: 0.50},
		Metal:    {Reflectivity: 0.85},
		Absorber: {Absorbs: true},
	}
}

// PropertiesOf looks up the properties for t in table, falling back to the
// default table when table is nil or lacks the entry.
// Returns ErrUnknownMaterial for a type outside the closed set.
// Complexity: O(1).
func PropertiesOf(t MaterialType, table PropertyTable) (Properties, error) {
	if !t.Valid() {
		return Properties{}, ErrUnknownMaterial
	}
	if table != nil {
		if p, ok := table[t]; ok {
			return p, nil
		}
	}
	return DefaultProperties()[t], nil
}
