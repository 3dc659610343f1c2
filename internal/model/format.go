package model

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidRule is returned when a textual formatting rule cannot be parsed.
var ErrInvalidRule = errors.New("invalid format rule")

// FormatRule turns a raw value of a given width into display text. The set of
// rules is closed; implementations live in this package only.
type FormatRule interface {
	format(v *big.Int, width int) string
	String() string
}

// Radix formats unsigned values in base 2, 8, 10 or 16. Any other base
// formats in hex.
type Radix struct {
	Base int
}

// Signed formats two's-complement values in decimal.
type Signed struct{}

// Enum maps codes to symbols. Exact Symbols win, then the first matching
// pattern, then Default. Anything else uses Fallback (hex when nil).
type Enum struct {
	Symbols  map[uint64]string
	Patterns []EnumPattern
	Default  string
	Fallback FormatRule
}

// EnumPattern matches values whose bits under Mask equal Value. Bits is the
// pattern length, most significant digit first.
type EnumPattern struct {
	Value  uint64
	Mask   uint64
	Bits   int
	Symbol string
}

// Matches reports whether v agrees with the pattern on every cared-for bit.
func (p EnumPattern) Matches(v uint64) bool {
	return v&p.Mask == p.Value
}

func (p EnumPattern) String() string {
	var b strings.Builder

	b.WriteString("0b")

	for i := p.Bits - 1; i >= 0; i-- {
		switch {
		case p.Mask>>i&1 == 0:
			b.WriteByte('?')
		case p.Value>>i&1 == 1:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}

	return b.String()
}

// FixedPoint formats values with FracBits fractional bits.
type FixedPoint struct {
	FracBits int
	Signed   bool
}

// Field is one sub-field of a Struct rule.
type Field struct {
	Name  string
	Lo    int
	Width int
	Rule  FormatRule
}

// Struct decomposes a vector into ordered, independently formatted fields.
type Struct struct {
	Fields []Field
}

// Tagged splits a vector into a low sequence tag and a payload made of all
// higher bits. The tag is rendered as zero-padded decimal.
type Tagged struct {
	Payload FormatRule
	TagBits int
}

// Text renders the value as characters, lowest byte first.
type Text struct{}

var (
	Hex    FormatRule = Radix{Base: 16}
	Binary FormatRule = Radix{Base: 2}
)

// Format renders bits with the signal's rule. Signals without a rule use
// binary for single wires and hex for buses.
func Format(sig *Signal, bits Bits) string {
	return FormatWidth(ruleFor(sig), bits.Big(), sig.Width)
}

// FormatWidth renders v as a value of the given width with rule.
func FormatWidth(rule FormatRule, v *big.Int, width int) string {
	if rule == nil {
		rule = defaultRule(width)
	}

	return rule.format(truncate(v, width), width)
}

func ruleFor(sig *Signal) FormatRule {
	if sig.Rule != nil {
		return sig.Rule
	}

	return defaultRule(sig.Width)
}

func defaultRule(width int) FormatRule {
	if width == 1 {
		return Binary
	}

	return Hex
}

func truncate(v *big.Int, width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}

	mask := new(big.Int).Lsh(big.NewInt(1), uint(width))
	mask.Sub(mask, big.NewInt(1))

	return new(big.Int).And(v, mask)
}

func slice(v *big.Int, lo, width int) *big.Int {
	return truncate(new(big.Int).Rsh(v, uint(lo)), width)
}

func (r Radix) format(v *big.Int, width int) string {
	base := r.Base
	if base != 2 && base != 8 && base != 10 {
		base = 16
	}

	text := strings.ToUpper(v.Text(base))

	digits := 0

	switch base {
	case 2:
		digits = width
	case 8:
		digits = (width + 2) / 3
	case 16:
		digits = (width + 3) / 4
	}

	if len(text) < digits {
		text = strings.Repeat("0", digits-len(text)) + text
	}

	return text
}

func (r Radix) String() string {
	switch r.Base {
	case 2:
		return "bin"
	case 8:
		return "oct"
	case 10:
		return "dec"
	default:
		return "hex"
	}
}

func (Signed) format(v *big.Int, width int) string {
	return toSigned(v, width).String()
}

func (Signed) String() string { return "signed" }

func toSigned(v *big.Int, width int) *big.Int {
	if width == 0 || v.Bit(width-1) == 0 {
		return v
	}

	full := new(big.Int).Lsh(big.NewInt(1), uint(width))

	return new(big.Int).Sub(v, full)
}

func (e Enum) format(v *big.Int, width int) string {
	if v.IsUint64() {
		if sym, ok := e.Symbols[v.Uint64()]; ok {
			return sym
		}
	}

	// Bits above 64 are outside every pattern.
	low := truncate(v, 64).Uint64()
	for _, p := range e.Patterns {
		if p.Matches(low) {
			return p.Symbol
		}
	}

	if e.Default != "" {
		return e.Default
	}

	fallback := e.Fallback
	if fallback == nil {
		fallback = Hex
	}

	return fallback.format(v, width)
}

func (e Enum) String() string {
	codes := make([]uint64, 0, len(e.Symbols))
	for code := range e.Symbols {
		codes = append(codes, code)
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%d=%s", code, e.Symbols[code]))
	}

	for _, p := range e.Patterns {
		parts = append(parts, p.String()+"="+p.Symbol)
	}

	if e.Default != "" {
		parts = append(parts, enumDefaultCode+"="+e.Default)
	}

	return "enum:" + strings.Join(parts, ",")
}

func (f FixedPoint) format(v *big.Int, width int) string {
	if f.Signed {
		v = toSigned(v, width)
	}

	value := new(big.Float).SetInt(v)
	scale := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(f.FracBits)))
	value.Quo(value, scale)

	out, _ := value.Float64()

	return strconv.FormatFloat(out, 'f', -1, 64)
}

func (f FixedPoint) String() string {
	if f.Signed {
		return fmt.Sprintf("fixed:%d:signed", f.FracBits)
	}

	return fmt.Sprintf("fixed:%d", f.FracBits)
}

func (s Struct) format(v *big.Int, _ int) string {
	parts := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		parts = append(parts, field.Name+": "+FormatWidth(field.Rule, slice(v, field.Lo, field.Width), field.Width))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func (s Struct) String() string {
	parts := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		part := fmt.Sprintf("%s@%d+%d", field.Name, field.Lo, field.Width)
		if field.Rule != nil {
			part += "/" + field.Rule.String()
		}

		parts = append(parts, part)
	}

	return "struct:" + strings.Join(parts, ",")
}

func (t Tagged) format(v *big.Int, width int) string {
	tag := slice(v, 0, t.TagBits)

	payloadWidth := width - t.TagBits
	if payloadWidth <= 0 {
		return fmt.Sprintf("#%03d", tag.Uint64())
	}

	payload := FormatWidth(t.Payload, slice(v, t.TagBits, payloadWidth), payloadWidth)

	return fmt.Sprintf("%s #%03d", payload, tag.Uint64())
}

func (t Tagged) String() string {
	payload := Hex
	if t.Payload != nil {
		payload = t.Payload
	}

	return fmt.Sprintf("tagged:%d:%s", t.TagBits, payload)
}

func (Text) format(v *big.Int, _ int) string {
	var b strings.Builder

	rest := new(big.Int).Set(v)
	low := big.NewInt(0xff)
	for rest.Sign() > 0 {
		b.WriteByte(byte(new(big.Int).And(rest, low).Uint64()))
		rest.Rsh(rest, 8)
	}

	return b.String()
}

func (Text) String() string { return "text" }

// ParseRule parses the textual rule notation used by trace dumps and config:
//
//	hex | bin | oct | dec | signed | text
//	fixed:<frac>[:signed]
//	tagged:<tagbits>:<payload rule>
//	enum:0=IDLE,1=BUSY,0b1?=REQ,_=OTHER
//	struct:name@lo+width[/rule],...
//
// An empty spec yields a nil rule, meaning the width default.
func ParseRule(spec string) (FormatRule, error) {
	spec = strings.TrimSpace(spec)
	kind, rest, _ := strings.Cut(spec, ":")

	switch kind {
	case "":
		return nil, nil
	case "hex":
		return Radix{Base: 16}, nil
	case "bin":
		return Radix{Base: 2}, nil
	case "oct":
		return Radix{Base: 8}, nil
	case "dec":
		return Radix{Base: 10}, nil
	case "signed":
		return Signed{}, nil
	case "text":
		return Text{}, nil
	case "fixed":
		return parseFixed(spec, rest)
	case "tagged":
		return parseTagged(spec, rest)
	case "enum":
		return parseEnum(spec, rest)
	case "struct":
		return parseStruct(spec, rest)
	}

	return nil, fmt.Errorf("%w: unknown rule %q", ErrInvalidRule, spec)
}

func parseFixed(spec, rest string) (FormatRule, error) {
	fracText, signed, _ := strings.Cut(rest, ":")

	frac, err := strconv.Atoi(fracText)
	if err != nil || frac < 0 {
		return nil, fmt.Errorf("%w: bad fraction bits in %q", ErrInvalidRule, spec)
	}

	if signed != "" && signed != "signed" {
		return nil, fmt.Errorf("%w: bad fixed suffix in %q", ErrInvalidRule, spec)
	}

	return FixedPoint{FracBits: frac, Signed: signed == "signed"}, nil
}

func parseTagged(spec, rest string) (FormatRule, error) {
	bitsText, payloadSpec, _ := strings.Cut(rest, ":")

	tagBits, err := strconv.Atoi(bitsText)
	if err != nil || tagBits <= 0 {
		return nil, fmt.Errorf("%w: bad tag bits in %q", ErrInvalidRule, spec)
	}

	payload, err := ParseRule(payloadSpec)
	if err != nil {
		return nil, err
	}

	return Tagged{Payload: payload, TagBits: tagBits}, nil
}

// enumDefaultCode names the entry used when no code or pattern matches.
const enumDefaultCode = "_"

func parseEnum(spec, rest string) (FormatRule, error) {
	enum := Enum{Symbols: make(map[uint64]string)}

	for _, entry := range strings.Split(rest, ",") {
		codeText, name, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: bad enum entry %q in %q", ErrInvalidRule, entry, spec)
		}

		if codeText == enumDefaultCode {
			if enum.Default != "" {
				return nil, fmt.Errorf("%w: second default in %q", ErrInvalidRule, spec)
			}

			enum.Default = name

			continue
		}

		if pattern, ok := parseEnumPattern(codeText); ok {
			pattern.Symbol = name
			enum.Patterns = append(enum.Patterns, pattern)

			continue
		}

		code, err := strconv.ParseUint(codeText, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad enum code %q in %q", ErrInvalidRule, codeText, spec)
		}

		enum.Symbols[code] = name
	}

	return enum, nil
}

// parseEnumPattern reads a binary code with don't-care digits, most
// significant first. With a 0b prefix every digit other than 0 and 1 is a
// don't-care; without it only '?' and '-' are. Codes without don't-cares are
// left to the exact parser.
func parseEnumPattern(text string) (EnumPattern, bool) {
	digits, prefixed := strings.CutPrefix(text, "0b")
	if digits == "" || len(digits) > 64 {
		return EnumPattern{}, false
	}

	p := EnumPattern{Bits: len(digits)}
	dontCare := false

	for _, c := range digits {
		p.Mask <<= 1
		p.Value <<= 1

		switch {
		case c == '1':
			p.Mask |= 1
			p.Value |= 1
		case c == '0':
			p.Mask |= 1
		case prefixed || c == '?' || c == '-':
			dontCare = true
		default:
			return EnumPattern{}, false
		}
	}

	return p, dontCare
}

func parseStruct(spec, rest string) (FormatRule, error) {
	var fields []Field

	for _, entry := range strings.Split(rest, ",") {
		entry = strings.TrimSpace(entry)
		layout, ruleSpec, _ := strings.Cut(entry, "/")

		name, bitRange, ok := strings.Cut(layout, "@")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: bad struct field %q in %q", ErrInvalidRule, entry, spec)
		}

		loText, widthText, ok := strings.Cut(bitRange, "+")
		if !ok {
			return nil, fmt.Errorf("%w: bad struct field %q in %q", ErrInvalidRule, entry, spec)
		}

		lo, errLo := strconv.Atoi(loText)
		width, errWidth := strconv.Atoi(widthText)

		if errLo != nil || errWidth != nil || lo < 0 || width <= 0 {
			return nil, fmt.Errorf("%w: bad struct field range %q in %q", ErrInvalidRule, bitRange, spec)
		}

		rule, err := ParseRule(ruleSpec)
		if err != nil {
			return nil, err
		}

		fields = append(fields, Field{Name: name, Lo: lo, Width: width, Rule: rule})
	}

	return Struct{Fields: fields}, nil
}
