package machine

// Device is a peripheral behind the data-memory window.
type Device interface {
	// Read produces the device's next value.
	Read() (Number, error)
	// Write hands one value to the device.
	Write(n Number) error
}
