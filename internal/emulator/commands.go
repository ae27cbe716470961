package emulator

// params returns how many parameter bytes follow command c.
func params(c byte) int {
	switch c {
	case 0x20, 0x81, 0x8D, 0xA8, 0xD3, 0xD5, 0xD9, 0xDA, 0xDB:
		return 1
	case 0x21, 0x22, 0xA3:
		return 2
	case 0x29, 0x2A:
		return 5
	case 0x26, 0x27:
		return 6
	}
	return 0
}

// command accumulates b and runs the command once its parameters are in.
func (p *Panel) command(b byte) {
	p.cmd = append(p.cmd, b)
	if len(p.cmd) <= params(p.cmd[0]) {
		return
	}
	p.exec(p.cmd[0], p.cmd[1:])
	p.cmd = p.cmd[:0]
	p.stats.Commands++
}

func (p *Panel) exec(c byte, args []byte) {
	switch {
	case c <= 0x0F: // Lower column start, page mode
		p.col = p.col&0xF0 | int(c&0x0F)
	case c <= 0x1F: // Higher column start, page mode
		p.col = p.col&0x0F | int(c&0x07)<<4
	case c == 0x20:
		p.mode = Addressing(args[0] & 0x03)
		if p.mode > Page {
			p.mode = Page
		}
	case c == 0x21:
		p.colStart = int(args[0] & 0x7F)
		p.colEnd = int(args[1] & 0x7F)
		p.col = p.colStart
	case c == 0x22:
		p.pageStart = int(args[0] & 0x07)
		p.pageEnd = int(args[1] & 0x07)
		p.page = p.pageStart
	case c == 0x26, c == 0x27, c == 0x29, c == 0x2A, c == 0xA3:
		// Scroll setup; scrolling itself is not rendered.
	case c == 0x2E:
		p.scrolling = false
	case c == 0x2F:
		p.scrolling = true
	case c >= 0x40 && c <= 0x7F:
		p.startLine = int(c & 0x3F)
	case c == 0x81:
		p.contrast = args[0]
	case c == 0x8D:
		p.chargePump = args[0]&0x04 != 0
	case c == 0xA0, c == 0xA1:
		p.segRemap = c == 0xA1
	case c == 0xA4, c == 0xA5:
		p.entireOn = c == 0xA5
	case c == 0xA6, c == 0xA7:
		p.inverse = c == 0xA7
	case c == 0xA8:
		if m := int(args[0] & 0x3F); m >= 15 {
			p.mux = m
		}
	case c == 0xAE, c == 0xAF:
		p.displayOn = c == 0xAF
	case c >= 0xB0 && c <= 0xB7: // Page start, page mode
		p.page = int(c & 0x07)
	case c == 0xC0, c == 0xC8:
		p.comRemap = c == 0xC8
	case c == 0xD3:
		p.offset = int(args[0] & 0x3F)
	}
}

// Status is a snapshot of the panel registers.
type Status struct {
	DisplayOn  bool
	Inverse    bool
	EntireOn   bool
	Contrast   byte
	MuxRatio   int // Active rows
	StartLine  int
	Offset     int
	SegRemap   bool
	COMRemap   bool
	ChargePump bool
	Scrolling  bool
	Mode       Addressing
	Column     int // GDDRAM pointer
	Page       int
}

// Status returns the register state.
func (p *Panel) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{
		DisplayOn:  p.displayOn,
		Inverse:    p.inverse,
		EntireOn:   p.entireOn,
		Contrast:   p.contrast,
		MuxRatio:   p.mux + 1,
		StartLine:  p.startLine,
		Offset:     p.offset,
		SegRemap:   p.segRemap,
		COMRemap:   p.comRemap,
		ChargePump: p.chargePump,
		Scrolling:  p.scrolling,
		Mode:       p.mode,
		Column:     p.col,
		Page:       p.page,
	}
}

// Stats returns the traffic counters.
func (p *Panel) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
