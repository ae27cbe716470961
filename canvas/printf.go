package canvas

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fraction digits %f prints.
const DefaultPrecision = 2

type argKind uint8

const (
	argInt argKind = iota
	argFloat
	argString
	argChar
)

// Arg is one tagged Printf argument.
type Arg struct {
	kind argKind
	i    int64
	f    float64
	s    string
}

// Int wraps an integer argument.
func Int(v int) Arg { return Arg{kind: argInt, i: int64(v)} }

// Float wraps a floating point argument.
func Float(v float64) Arg { return Arg{kind: argFloat, f: v} }

// Str wraps a string argument.
func Str(s string) Arg { return Arg{kind: argString, s: s} }

// Char wraps a single character code.
func Char(ch byte) Arg { return Arg{kind: argChar, i: int64(ch)} }

// Printf draws format at the cursor, substituting the tagged arguments in
// order, and returns the number of characters drawn.
//
// The conversions are:
//
//	%c     a single character
//	%d %i  a signed integer
//	%s     a string
//	%f     a number with 2 fraction digits; %.Nf prints N digits
//
// The last fraction digit is rounded by adding 0.05 to the remainder before
// it is truncated. Digits, '.' and '-' between the percent sign and the
// conversion character are accepted; only the precision of %f is used.
//
// A percent sign followed by any other conversion character is dropped
// together with that character and does not consume an argument, so a
// mistyped conversion shifts every later argument by one. Conversions without
// a matching argument draw nothing. Arguments of another kind are converted:
// floats truncate for %d, integers print their digits for %s, and so on.
func (c *Canvas) Printf(format string, args ...Arg) int {
	f := c.encode(format)
	n := 0
	next := 0

	for i := 0; i < len(f); i++ {
		if f[i] != '%' {
			c.WriteChar(f[i])
			n++
			continue
		}

		j := i + 1
		for j < len(f) && isFormatFlag(f[j]) {
			j++
		}
		if j >= len(f) {
			break
		}
		flags := string(f[i+1 : j])
		i = j

		verb := f[j]
		if !strings.ContainsRune("cdifs", rune(verb)) {
			continue
		}
		if next >= len(args) {
			continue
		}
		a := args[next]
		next++

		switch verb {
		case 'c':
			c.WriteChar(a.char())
			n++
		case 'd', 'i':
			n += c.printInt(a)
		case 'f':
			n += c.printFloat(a.float(), precision(flags))
		case 's':
			n += c.printStr(a)
		}
	}
	return n
}

func isFormatFlag(ch byte) bool {
	return ch == '.' || ch == '-' || (ch >= '0' && ch <= '9')
}

// precision extracts N from a "%.Nf" flag string.
func precision(flags string) int {
	dot := strings.LastIndexByte(flags, '.')
	if dot < 0 {
		return DefaultPrecision
	}
	digits := flags[dot+1:]
	if digits == "" {
		return 0
	}
	p, err := strconv.Atoi(digits)
	if err != nil || p < 0 {
		return DefaultPrecision
	}
	return p
}

func (c *Canvas) emit(b []byte) int {
	for _, ch := range b {
		c.WriteChar(ch)
	}
	return len(b)
}

func (c *Canvas) printInt(a Arg) int {
	switch a.kind {
	case argString:
		return 0
	case argFloat:
		if math.IsNaN(a.f) || math.IsInf(a.f, 0) {
			return c.printFloat(a.f, 0)
		}
		return c.emit(strconv.AppendFloat(nil, math.Trunc(a.f), 'f', 0, 64))
	}
	return c.emit(strconv.AppendInt(nil, a.i, 10))
}

func (c *Canvas) printStr(a Arg) int {
	switch a.kind {
	case argString:
		return c.emit(c.encode(a.s))
	case argChar:
		c.WriteChar(byte(a.i))
		return 1
	case argFloat:
		return c.printFloat(a.f, DefaultPrecision)
	}
	return c.printInt(a)
}

// printFloat prints the integer part, a '.', and prec fraction digits each
// obtained by multiplying the remainder by ten.
func (c *Canvas) printFloat(v float64, prec int) int {
	n := 0
	if v < 0 {
		c.WriteChar('-')
		n++
		v = -v
	}
	switch {
	case math.IsNaN(v):
		return n + c.emit([]byte("nan"))
	case math.IsInf(v, 0):
		return n + c.emit([]byte("inf"))
	}

	n += c.emit(strconv.AppendFloat(nil, math.Trunc(v), 'f', 0, 64))
	c.WriteChar('.')
	n++
	for p := prec; p > 0; p-- {
		if p == 1 {
			v += 0.05
		}
		v = (v - math.Trunc(v)) * 10
		c.WriteChar('0' + byte(v))
		n++
	}
	return n
}

func (a Arg) char() byte {
	switch a.kind {
	case argFloat:
		return byte(int64(a.f))
	case argString:
		if a.s == "" {
			return 0
		}
		return a.s[0]
	}
	return byte(a.i)
}

func (a Arg) float() float64 {
	switch a.kind {
	case argFloat:
		return a.f
	case argString:
		v, err := strconv.ParseFloat(a.s, 64)
		if err != nil {
			return 0
		}
		return v
	}
	return float64(a.i)
}
