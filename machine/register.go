package machine

// Register is a gated storage cell. Reads see the content only while the
// read gate is open; a closed gate floats to zero. Writes latch only while
// the write gate is open and truncate to the register's own width.
type Register struct {
	content   Number
	readGate  bool
	writeGate bool
}

// NewRegister creates a register of the given width holding zero, with
// both gates closed.
func NewRegister(bitDepth int) *Register {
	return &Register{content: NewNumber(bitDepth, 0)}
}

// BitDepth returns the register width in bits.
func (reg *Register) BitDepth() int {
	return reg.content.BitDepth()
}

// Value returns the content regardless of the read gate.
func (reg *Register) Value() Number {
	return reg.content
}

// Read returns the content if the read gate is open, else a zero of the
// register's width.
func (reg *Register) Read() Number {
	if !reg.readGate {
		return NewNumber(reg.BitDepth(), 0)
	}

	return reg.content
}

// Write latches n, truncated to the register's width. With the write gate
// closed nothing happens.
func (reg *Register) Write(n Number) {
	if !reg.writeGate {
		return
	}

	reg.content = NewNumber(reg.BitDepth(), n.Value())
}

// OpenRead opens the read gate.
func (reg *Register) OpenRead() {
	reg.readGate = true
}

// CloseRead closes the read gate.
func (reg *Register) CloseRead() {
	reg.readGate = false
}

// OpenWrite opens the write gate.
func (reg *Register) OpenWrite() {
	reg.writeGate = true
}

// CloseWrite closes the write gate.
func (reg *Register) CloseWrite() {
	reg.writeGate = false
}
