package component

// Divider is a two-element voltage divider. Transfer is the drop
// across Z1 relative to the source across the whole chain.
type Divider struct {
	Name  string
	Z1    Component
	Z2    Component
	total *Series
}

func NewDivider(name string, z1, z2 Component) *Divider {
	return &Divider{Name: name, Z1: z1, Z2: z2, total: NewSeries(name, z1, z2)}
}

func (d *Divider) GetName() string { return d.Name }

func (d *Divider) Transfer(freq float64) (complex128, error) {
	z1, err := d.Z1.Impedance(freq)
	if err != nil {
		return 0, err
	}
	zt, err := d.total.Impedance(freq)
	if err != nil {
		return 0, err
	}
	return z1 / zt, nil
}
