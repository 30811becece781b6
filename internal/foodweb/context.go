package foodweb

// Context is the read-only parameter bundle passed to every flux
// computation: current absolute temperature T, the index of the shared
// nutrient resource (Resource), the index of the consumer pool that acts
// as the second limiting resource for heterotrophs (Consumer), and the
// ecosystem itself. Index bounds and distinctness are checked once here,
// never inside the flux loops.
type Context struct {
	T        float64
	Resource int
	Consumer int
	Web      *Ecosystem
}

func NewContext(web *Ecosystem, temperature float64, resource, consumer int) (*Context, error) {
	if temperature <= 0 {
		return nil, ErrTemperature
	}
	n := web.Size()
	if resource < 0 || resource >= n || consumer < 0 || consumer >= n {
		return nil, ErrIndexRange
	}
	if resource == consumer {
		return nil, ErrIndexClash
	}
	return &Context{T: temperature, Resource: resource, Consumer: consumer, Web: web}, nil
}

// SetTemperature updates T between runs. Experiment setups that model a
// changing climate use this; it must never be called during a single
// derivative evaluation.
func (c *Context) SetTemperature(temperature float64) error {
	if temperature <= 0 {
		return ErrTemperature
	}
	c.T = temperature
	return nil
}
