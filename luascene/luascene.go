// Package luascene drives a canvas from Lua scripts.
//
// A Scene exposes the canvas to Lua as the global table "oled":
//
//	oled.width()  oled.height()
//	oled.pixel(x, y [, color])      oled.get(x, y) -> bool
//	oled.fill(color)                oled.clear()
//	oled.line(x0, y0, x1, y1 [, color])
//	oled.hline(x0, y, x1 [, color]) oled.vline(x, y0, y1 [, color])
//	oled.rect(x, y, w, h [, color]) oled.fill_rect(x, y, w, h [, color])
//	oled.round_rect(x, y, w, h, r [, color])
//	oled.fill_round_rect(x, y, w, h, r [, color])
//	oled.circle(x, y, r [, color])  oled.fill_circle(x, y, r [, color])
//	oled.circle_quarter(x, y, r, q [, color])
//	oled.fill_circle_quarter(x, y, r, q [, color])
//	oled.xbm(x, y, w, h, bits [, color])
//	oled.font(name) -> bool
//	oled.cursor(col, row)           oled.cursor_xy(x, y)
//	oled.position() -> x, y
//	oled.text(s) -> n               oled.printf(format, ...) -> n
//	oled.measure(s) -> width
//	oled.style{scale=, letter=, line=, color=, offset_x=, offset_y=}
//	oled.display()
//
// Colors are oled.OFF, oled.ON (the default) and oled.INVERT; quadrants are
// oled.TOP_RIGHT, oled.TOP_LEFT, oled.BOTTOM_LEFT and oled.BOTTOM_RIGHT.
// Only the base, table, string and math libraries are opened, without the
// base functions that load code from files.
//
// A Scene is not safe for concurrent use.
package luascene

import (
	"errors"
	"fmt"
	"math"

	"github.com/flavioheleno/ssd1306/bitfont"
	"github.com/flavioheleno/ssd1306/canvas"
	lua "github.com/yuin/gopher-lua"
)

// ErrClosed is returned by a Scene after Close.
var ErrClosed = errors.New("luascene: scene closed")

// Option configures a Scene.
type Option func(*Scene)

// WithDisplay sets the function oled.display() calls, typically a device's
// Display method.
func WithDisplay(fn func() error) Option {
	return func(s *Scene) {
		s.display = fn
	}
}

// WithFont registers f under name for oled.font(name).
func WithFont(name string, f *bitfont.Font) Option {
	return func(s *Scene) {
		s.fonts[name] = f
	}
}

// Scene is a Lua state bound to one canvas.
type Scene struct {
	L       *lua.LState
	c       *canvas.Canvas
	display func() error
	fonts   map[string]*bitfont.Font
	closed  bool
}

// New returns a Scene drawing into c.
func New(c *canvas.Canvas, opts ...Option) *Scene {
	s := &Scene{
		c:     c,
		fonts: make(map[string]*bitfont.Font),
	}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	s.L = L
	s.register()
	return s
}

func (s *Scene) register() {
	L := s.L
	mod := L.NewTable()

	for name, fn := range map[string]lua.LGFunction{
		"width":               s.width,
		"height":              s.height,
		"pixel":               s.pixel,
		"get":                 s.get,
		"fill":                s.fill,
		"clear":               s.clear,
		"line":                s.line,
		"hline":               s.hline,
		"vline":               s.vline,
		"rect":                s.rect,
		"fill_rect":           s.fillRect,
		"round_rect":          s.roundRect,
		"fill_round_rect":     s.fillRoundRect,
		"circle":              s.circle,
		"fill_circle":         s.fillCircle,
		"circle_quarter":      s.circleQuarter,
		"fill_circle_quarter": s.fillCircleQuarter,
		"xbm":                 s.xbm,
		"font":                s.font,
		"cursor":              s.cursor,
		"cursor_xy":           s.cursorXY,
		"position":            s.position,
		"text":                s.text,
		"printf":              s.printf,
		"measure":             s.measure,
		"style":               s.style,
		"display":             s.flush,
	} {
		L.SetField(mod, name, L.NewFunction(fn))
	}

	L.SetField(mod, "OFF", lua.LNumber(canvas.Off))
	L.SetField(mod, "ON", lua.LNumber(canvas.On))
	L.SetField(mod, "INVERT", lua.LNumber(canvas.Invert))
	L.SetField(mod, "TOP_RIGHT", lua.LNumber(canvas.TopRight))
	L.SetField(mod, "TOP_LEFT", lua.LNumber(canvas.TopLeft))
	L.SetField(mod, "BOTTOM_LEFT", lua.LNumber(canvas.BottomLeft))
	L.SetField(mod, "BOTTOM_RIGHT", lua.LNumber(canvas.BottomRight))

	L.SetGlobal("oled", mod)
}

// DoString runs a chunk of Lua code.
func (s *Scene) DoString(code string) error {
	if s.closed {
		return ErrClosed
	}
	return s.protect(func() error { return s.L.DoString(code) })
}

// DoFile runs the Lua file at path.
func (s *Scene) DoFile(path string) error {
	if s.closed {
		return ErrClosed
	}
	return s.protect(func() error { return s.L.DoFile(path) })
}

// Frame calls the global Lua function frame(n), if the script defined one,
// and reports whether it exists.
func (s *Scene) Frame(n int) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	fn := s.L.GetGlobal("frame")
	if fn.Type() != lua.LTFunction {
		return false, nil
	}
	err := s.protect(func() error {
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LNumber(n))
	})
	return true, err
}

// Close releases the Lua state.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

func (s *Scene) protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("luascene: panic: %v", r)
		}
	}()
	if err := fn(); err != nil {
		return fmt.Errorf("luascene: %w", err)
	}
	return nil
}

// color reads an optional color argument; it defaults to On.
func color(L *lua.LState, n int) canvas.Color {
	v := L.OptInt(n, int(canvas.On))
	if v < 0 {
		L.ArgError(n, "color must be OFF, ON or INVERT")
	}
	return canvas.Color(min(v, int(canvas.Invert)))
}

func quadrant(L *lua.LState, n int) canvas.Quadrant {
	v := L.CheckInt(n)
	if v < 0 || v > int(canvas.BottomRight) {
		L.ArgError(n, "invalid quadrant")
	}
	return canvas.Quadrant(v)
}

func (s *Scene) width(L *lua.LState) int {
	L.Push(lua.LNumber(s.c.Width()))
	return 1
}

func (s *Scene) height(L *lua.LState) int {
	L.Push(lua.LNumber(s.c.Height()))
	return 1
}

func (s *Scene) pixel(L *lua.LState) int {
	s.c.SetPixel(L.CheckInt(1), L.CheckInt(2), color(L, 3))
	return 0
}

func (s *Scene) get(L *lua.LState) int {
	L.Push(lua.LBool(s.c.Pixel(L.CheckInt(1), L.CheckInt(2))))
	return 1
}

func (s *Scene) fill(L *lua.LState) int {
	s.c.Fill(color(L, 1))
	return 0
}

func (s *Scene) clear(L *lua.LState) int {
	s.c.Clear()
	return 0
}

func (s *Scene) line(L *lua.LState) int {
	s.c.DrawLine(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), color(L, 5))
	return 0
}

func (s *Scene) hline(L *lua.LState) int {
	s.c.DrawHLine(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), color(L, 4))
	return 0
}

func (s *Scene) vline(L *lua.LState) int {
	s.c.DrawVLine(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), color(L, 4))
	return 0
}

func (s *Scene) rect(L *lua.LState) int {
	s.c.DrawRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), color(L, 5))
	return 0
}

func (s *Scene) fillRect(L *lua.LState) int {
	s.c.FillRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), color(L, 5))
	return 0
}

func (s *Scene) roundRect(L *lua.LState) int {
	s.c.DrawRoundRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5), color(L, 6))
	return 0
}

func (s *Scene) fillRoundRect(L *lua.LState) int {
	s.c.FillRoundRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5), color(L, 6))
	return 0
}

func (s *Scene) circle(L *lua.LState) int {
	s.c.DrawCircle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), color(L, 4))
	return 0
}

func (s *Scene) fillCircle(L *lua.LState) int {
	s.c.FillCircle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), color(L, 4))
	return 0
}

func (s *Scene) circleQuarter(L *lua.LState) int {
	s.c.DrawCircleQuarter(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), quadrant(L, 4), color(L, 5))
	return 0
}

func (s *Scene) fillCircleQuarter(L *lua.LState) int {
	s.c.FillCircleQuarter(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), quadrant(L, 4), color(L, 5))
	return 0
}

// xbm(x, y, w, h, bits [, color]) draws an LSB-first bitmap held in a Lua
// string.
func (s *Scene) xbm(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	w, h := L.CheckInt(3), L.CheckInt(4)
	bits := L.CheckString(5)
	s.c.DrawXBM([]byte(bits), w, h, x, y, color(L, 6))
	return 0
}

func (s *Scene) font(L *lua.LState) int {
	f, ok := s.fonts[L.CheckString(1)]
	if ok {
		s.c.SetFont(f)
	}
	L.Push(lua.LBool(ok))
	return 1
}

func (s *Scene) cursor(L *lua.LState) int {
	s.c.SetCursor(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (s *Scene) cursorXY(L *lua.LState) int {
	s.c.SetCursorCoords(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (s *Scene) position(L *lua.LState) int {
	p := s.c.Cursor()
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	return 2
}

func (s *Scene) text(L *lua.LState) int {
	n, _ := s.c.WriteString(L.CheckString(1))
	L.Push(lua.LNumber(n))
	return 1
}

// printf(format, ...) maps integral numbers to %d arguments, other numbers
// to %f and everything else to its string form.
func (s *Scene) printf(L *lua.LState) int {
	format := L.CheckString(1)
	args := make([]canvas.Arg, 0, L.GetTop()-1)
	for i := 2; i <= L.GetTop(); i++ {
		switch v := L.Get(i).(type) {
		case lua.LNumber:
			f := float64(v)
			if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
				args = append(args, canvas.Int(int(f)))
			} else {
				args = append(args, canvas.Float(f))
			}
		default:
			args = append(args, canvas.Str(L.ToStringMeta(v).String()))
		}
	}
	L.Push(lua.LNumber(s.c.Printf(format, args...)))
	return 1
}

func (s *Scene) measure(L *lua.LState) int {
	L.Push(lua.LNumber(s.c.MeasureText(L.CheckString(1))))
	return 1
}

// style{...} updates the fields present in the table and leaves the others.
func (s *Scene) style(L *lua.LState) int {
	t := L.CheckTable(1)
	st := s.c.Style()
	if v, ok := t.RawGetString("scale").(lua.LNumber); ok {
		st.Scale = int(v)
	}
	if v, ok := t.RawGetString("letter").(lua.LNumber); ok {
		st.LetterSpacing = int(v)
	}
	if v, ok := t.RawGetString("line").(lua.LNumber); ok {
		st.LineSpacing = int(v)
	}
	if v, ok := t.RawGetString("color").(lua.LNumber); ok {
		st.Color = canvas.Color(min(max(int(v), 0), int(canvas.Invert)))
	}
	if v, ok := t.RawGetString("offset_x").(lua.LNumber); ok {
		st.OffsetX = int(v)
	}
	if v, ok := t.RawGetString("offset_y").(lua.LNumber); ok {
		st.OffsetY = int(v)
	}
	s.c.SetStyle(st)
	return 0
}

func (s *Scene) flush(L *lua.LState) int {
	if s.display == nil {
		return 0
	}
	if err := s.display(); err != nil {
		L.RaiseError("display: %v", err)
	}
	return 0
}
