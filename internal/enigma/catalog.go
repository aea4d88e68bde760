package enigma

// Catalog is the set of rotors available to a machine, looked up by name.
// Machines refer to catalog entries by handle; a rotor is never copied, so
// its setting is shared by every machine built over the same catalog.
type Catalog struct {
	rotors []Rotor
	byName map[string]int
}

// NewCatalog returns a catalog of rotors. Names must be unique and all
// rotors must share one alphabet.
func NewCatalog(rotors ...Rotor) (*Catalog, error) {
	c := &Catalog{
		rotors: make([]Rotor, 0, len(rotors)),
		byName: make(map[string]int, len(rotors)),
	}
	for _, r := range rotors {
		if r == nil {
			return nil, Errorf(KindConfig, "catalog cannot hold a nil rotor")
		}
		if _, dup := c.byName[r.Name()]; dup {
			return nil, Errorf(KindConfig, "duplicate rotor %s", r.Name())
		}
		if len(c.rotors) > 0 && r.Alphabet() != c.rotors[0].Alphabet() {
			return nil, Errorf(KindConfig, "rotor %s uses a different alphabet", r.Name())
		}
		c.byName[r.Name()] = len(c.rotors)
		c.rotors = append(c.rotors, r)
	}
	return c, nil
}

// Len returns the number of rotors.
func (c *Catalog) Len() int {
	return len(c.rotors)
}

// Lookup returns the handle of the rotor called name.
func (c *Catalog) Lookup(name string) (int, bool) {
	h, ok := c.byName[name]
	return h, ok
}

// Rotor returns the rotor behind handle h.
func (c *Catalog) Rotor(h int) Rotor {
	return c.rotors[h]
}

// Names returns the rotor names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.rotors))
	for i, r := range c.rotors {
		names[i] = r.Name()
	}
	return names
}
